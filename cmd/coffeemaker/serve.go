package main

import (
	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Server.Port = port
			}

			router, cleanup, err := app.InitializeApp(cfg)
			if err != nil {
				log.Error().Err(err).Msg("Failed to initialize application")
				return err
			}
			defer cleanup()

			if err := app.NewServer(router, cfg.Server).RunContext(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("Server error")
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("port", "", "Port to listen on (overrides PORT)")
	return cmd
}
