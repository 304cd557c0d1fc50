package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/metrics"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
	"github.com/guttosm/coffeemaker-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	IdempotencyStore  middleware.IdempotencyStore
	IdempotencyTTL    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	Journal           *middleware.AsyncJournal
	EventService      service.EventService

	// RateLimiter is set by NewRouter when RateLimit > 0 so the caller can stop it.
	RateLimiter *middleware.ShardedRateLimiter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the coffee maker service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg *RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, cfg)
	registerInfrastructureRoutes(router, healthHandler, cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, cfg)

	groups := make([]PublicRouteGroup, 0, 2)
	if handler != nil {
		groups = append(groups, NewMachineRoutes(handler))
	}
	if cfg.EventService != nil {
		groups = append(groups, NewEventsRoutes(NewEventsHandler(cfg.EventService)))
	}
	for _, g := range groups {
		g.RegisterPublicRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "accept", "Cache-Control", "X-Requested-With", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-Idempotency-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.Journal),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		cfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(cfg.RateLimiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.EnableIdempotency {
		store := cfg.IdempotencyStore
		if store == nil {
			store = middleware.NewMemoryIdempotencyStore()
		}
		api.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Store:   store,
			TTL:     cfg.IdempotencyTTL,
			Enabled: true,
		}))
	}
}
