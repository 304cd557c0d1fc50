//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	t.Run("seeds the default machine", func(t *testing.T) {
		components, err := InitializeServices(defaultMachineConfig())
		require.NoError(t, err)
		require.NotNil(t, components.Machine)

		recipe, ok := components.Machine.FindRecipe("Cappuccino")
		require.True(t, ok)
		assert.Equal(t, "2.70", recipe.Price().StringFixed(model.PricePlaces))
		assert.Equal(t, model.NewStock(2, 3, 0, 1), recipe.Requirements())
		assert.Equal(t, model.NewStock(10, 10, 10, 10), components.Machine.InventorySnapshot())
	})

	t.Run("uses configured stock and recipe", func(t *testing.T) {
		cfg := config.MachineConfig{
			InitialCoffee:     5,
			InitialMilk:       0,
			InitialChocolate:  7,
			InitialSugar:      1,
			SeedRecipeName:    "Espresso",
			SeedRecipePrice:   "1.80",
			SeedRecipeAmounts: " 1, 0 ,0,0 ",
		}

		components, err := InitializeServices(cfg)
		require.NoError(t, err)

		assert.Equal(t, model.NewStock(5, 0, 7, 1), components.Machine.InventorySnapshot())
		_, ok := components.Machine.FindRecipe("Espresso")
		assert.True(t, ok)
		_, ok = components.Machine.FindRecipe("Cappuccino")
		assert.False(t, ok)
	})

	t.Run("empty seed name keeps the built-in recipe", func(t *testing.T) {
		cfg := defaultMachineConfig()
		cfg.SeedRecipeName = ""
		cfg.SeedRecipePrice = "not used"

		components, err := InitializeServices(cfg)
		require.NoError(t, err)
		_, ok := components.Machine.FindRecipe("Cappuccino")
		assert.True(t, ok)
	})
}

func TestInitializeServices_InvalidSeed(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.MachineConfig)
		wantErr error
	}{
		{
			name:   "unparseable price",
			mutate: func(c *config.MachineConfig) { c.SeedRecipePrice = "two" },
		},
		{
			name:    "negative price",
			mutate:  func(c *config.MachineConfig) { c.SeedRecipePrice = "-1" },
			wantErr: model.ErrInvalidPrice,
		},
		{
			name:   "too few amounts",
			mutate: func(c *config.MachineConfig) { c.SeedRecipeAmounts = "1,2,3" },
		},
		{
			name:   "non-numeric amount",
			mutate: func(c *config.MachineConfig) { c.SeedRecipeAmounts = "1,x,0,0" },
		},
		{
			name:    "negative amount",
			mutate:  func(c *config.MachineConfig) { c.SeedRecipeAmounts = "1,0,-2,0" },
			wantErr: model.ErrInvalidIngredientAmount,
		},
		{
			name:    "negative initial stock",
			mutate:  func(c *config.MachineConfig) { c.InitialSugar = -1 },
			wantErr: model.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultMachineConfig()
			tt.mutate(&cfg)

			components, err := InitializeServices(cfg)
			require.Error(t, err)
			assert.Nil(t, components)
			assert.ErrorIs(t, err, model.ErrSeedFailed)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
