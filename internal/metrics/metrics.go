// Package metrics provides Prometheus metrics collection for the coffee maker service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Brew outcomes used as the status label of BrewsTotal.
const (
	BrewStatusBrewed              = "brewed"
	BrewStatusInsufficientStock   = "insufficient_stock"
	BrewStatusUnknownRecipe       = "unknown_recipe"
	BrewStatusInsufficientPayment = "insufficient_payment"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BrewsTotal counts brew attempts by outcome.
	BrewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffeemaker_brews_total",
			Help: "Total number of brew attempts",
		},
		[]string{"status"},
	)

	// BrewDuration tracks how long a brew attempt holds the machine.
	BrewDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "coffeemaker_brew_duration_seconds",
			Help:    "Brew duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// InventoryUnits reports the current stock of each ingredient.
	InventoryUnits = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coffeemaker_inventory_units",
			Help: "Units of each ingredient currently in stock",
		},
		[]string{"ingredient"},
	)

	// RecipesGauge reports the number of recipes in the catalog.
	RecipesGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coffeemaker_recipes",
			Help: "Number of recipes in the catalog",
		},
	)

	// CatalogOperationsTotal counts catalog mutations by operation and result.
	CatalogOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coffeemaker_catalog_operations_total",
			Help: "Total number of recipe catalog operations",
		},
		[]string{"operation", "result"},
	)

	// IdempotencyOperationsTotal tracks idempotency store lookups and writes.
	IdempotencyOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idempotency_operations_total",
			Help: "Total number of idempotency store operations",
		},
		[]string{"backend", "result"},
	)

	// CircuitBreakerState reports breaker state: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBrew records metrics for a brew attempt.
func RecordBrew(duration time.Duration, status string) {
	BrewDuration.Observe(duration.Seconds())
	BrewsTotal.WithLabelValues(status).Inc()
}

// UpdateInventoryLevels sets the inventory gauge for every ingredient.
func UpdateInventoryLevels(stock model.Stock) {
	for _, ing := range model.Ingredients() {
		InventoryUnits.WithLabelValues(ing.String()).Set(float64(stock[ing]))
	}
}

// UpdateRecipeCount sets the catalog size gauge.
func UpdateRecipeCount(n int) {
	RecipesGauge.Set(float64(n))
}

// RecordCatalogOperation records a catalog add, update, or remove.
func RecordCatalogOperation(operation, result string) {
	CatalogOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordIdempotencyOperation records an idempotency store hit, miss, store, or error.
func RecordIdempotencyOperation(backend, result string) {
	IdempotencyOperationsTotal.WithLabelValues(backend, result).Inc()
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
