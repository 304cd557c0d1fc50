// Package app provides service initialization.
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/service"
	"github.com/shopspring/decimal"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Machine service.CoffeeMaker
}

// InitializeServices builds the coffee machine from its seed configuration.
// Any invalid seed value fails startup with an error wrapping model.ErrSeedFailed.
func InitializeServices(cfg config.MachineConfig) (*ServiceComponents, error) {
	opts, err := machineOptions(cfg)
	if err != nil {
		return nil, err
	}

	machine, err := service.NewCoffeeMakerService(opts...)
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Machine: machine,
	}, nil
}

func machineOptions(cfg config.MachineConfig) ([]service.Option, error) {
	opts := []service.Option{
		service.WithInitialStock(model.NewStock(
			cfg.InitialCoffee, cfg.InitialMilk, cfg.InitialChocolate, cfg.InitialSugar,
		)),
	}

	if cfg.SeedRecipeName == "" {
		return opts, nil
	}

	spec, err := seedRecipeSpec(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSeedFailed, err)
	}
	return append(opts, service.WithSeedRecipe(spec)), nil
}

func seedRecipeSpec(cfg config.MachineConfig) (service.RecipeSpec, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(cfg.SeedRecipePrice))
	if err != nil {
		return service.RecipeSpec{}, fmt.Errorf("seed recipe price %q: %w", cfg.SeedRecipePrice, err)
	}

	amounts, err := parseAmounts(cfg.SeedRecipeAmounts)
	if err != nil {
		return service.RecipeSpec{}, err
	}

	return service.RecipeSpec{
		Name:      cfg.SeedRecipeName,
		Price:     price,
		Coffee:    amounts[model.Coffee],
		Milk:      amounts[model.Milk],
		Chocolate: amounts[model.Chocolate],
		Sugar:     amounts[model.Sugar],
	}, nil
}

// parseAmounts reads "coffee,milk,chocolate,sugar". Signs are kept so the
// recipe constructor reports negative amounts with the ingredient name.
func parseAmounts(s string) (model.Stock, error) {
	parts := strings.Split(s, ",")
	ingredients := model.Ingredients()
	if len(parts) != len(ingredients) {
		return nil, fmt.Errorf("seed recipe amounts %q: want %d comma-separated values", s, len(ingredients))
	}

	amounts := make(model.Stock, len(ingredients))
	for i, ing := range ingredients {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return nil, fmt.Errorf("seed recipe %s amount %q: %w", ing, parts[i], err)
		}
		amounts[ing] = n
	}
	return amounts, nil
}
