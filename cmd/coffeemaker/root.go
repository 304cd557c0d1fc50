package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "coffeemaker",
		Short: "Coffee maker service",
		Long: `Runs a self-service coffee machine: a bounded recipe catalog, an ingredient
inventory and a JSON HTTP API for brewing and paid purchases.

Configuration is read from the environment (PORT, INITIAL_STOCK,
SEED_RECIPE_NAME, MONGODB_ENABLED, IDEMPOTENCY_BACKEND, LOG_LEVEL, ...).`,
		SilenceUsage: true,
	}

	serve := newServeCmd()
	root.AddCommand(serve, newMenuCmd(), newVersionCmd())

	// serve is the default command
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	return root
}
