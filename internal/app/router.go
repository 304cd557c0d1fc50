// Package app provides router configuration.
package app

import (
	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/http"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
	"github.com/guttosm/coffeemaker-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        *http.RouterConfig
	Journal       *middleware.AsyncJournal
}

// InitializeRouter initializes HTTP handlers and router configuration.
// dbComponents and idempotency may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	idempotency *IdempotencyComponents,
	cfg config.Config,
) *RouterComponents {
	var eventService service.EventService
	if dbComponents != nil {
		eventService = dbComponents.EventService
	}
	journal := middleware.NewAsyncJournal(eventService, middleware.DefaultAsyncJournalConfig())

	handler := http.NewHandler(services.Machine, http.WithJournal(journal))
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.EventsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_events", dbComponents.EventsCircuitBreaker)
		}
	}
	if idempotency != nil && idempotency.Redis != nil {
		healthHandler.RegisterChecker("redis", http.HealthCheckFunc(idempotency.Ping))
		if idempotency.CircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("redis_idempotency", idempotency.CircuitBreaker)
		}
	}

	routerCfg := &http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: idempotency != nil,
		IdempotencyTTL:    cfg.Idempotency.TTL,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		Journal:           journal,
		EventService:      eventService,
	}
	if idempotency != nil {
		routerCfg.IdempotencyStore = idempotency.Store
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Journal:       journal,
	}
}
