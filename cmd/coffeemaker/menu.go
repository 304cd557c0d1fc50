package main

import (
	"encoding/json"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/app"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/spf13/cobra"
)

// menuOutput is what the menu command prints.
type menuOutput struct {
	Recipes []dto.RecipeResponse `json:"recipes"`
	Status  dto.StatusResponse   `json:"status"`
}

func newMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu a freshly seeded machine would serve",
		Long:  `Builds the machine from the current environment without starting the server and prints its menu and status as JSON. Useful to check seed configuration.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := app.InitializeServices(config.Load().Machine)
			if err != nil {
				return err
			}

			machine := services.Machine
			out := menuOutput{
				Recipes: dto.NewMenuResponse(machine.Menu()),
				Status:  dto.NewStatusResponse(machine.Status()),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
