// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/http"
	"github.com/rs/zerolog/log"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup function flushes the event journal and releases
// background workers and connections; call it after the server has stopped.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	serviceComponents, err := InitializeServices(cfg.Machine)
	if err != nil {
		return nil, nil, err
	}

	dbComponents := InitializeDatabase(cfg.Database)
	idempotency := InitializeIdempotency(cfg.Idempotency, cfg.Database)

	routerComponents := InitializeRouter(serviceComponents, dbComponents, idempotency, cfg)
	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		routerComponents.Journal.Stop()
		if routerComponents.Config.RateLimiter != nil {
			routerComponents.Config.RateLimiter.Stop()
		}
		idempotency.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		dbComponents.Close(ctx)

		log.Info().Msg("Application resources released")
	}

	return router, cleanup, nil
}
