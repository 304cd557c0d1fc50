// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/repository"
	"github.com/guttosm/coffeemaker-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the MongoDB-backed audit journal.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	EventService         service.EventService
	EventsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the event journal on top of it.
// Returns nil if the database is disabled or the connection fails; the machine
// keeps serving without a journal.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without event journal")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ttlDays := int(cfg.EventsTTL.Hours() / 24)
	if err := db.SetEventsTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set events TTL index")
	}

	eventsCB := repository.NewStoreCircuitBreaker(storeBreakerConfig(cfg, "mongodb-events"))
	eventsRepo := repository.NewEventsRepositoryWithCircuitBreaker(repository.NewEventsRepository(db), eventsCB)

	return &DatabaseComponents{
		DB:                   db,
		EventService:         service.NewEventService(eventsRepo),
		EventsCircuitBreaker: eventsCB,
	}
}

// Close disconnects from MongoDB. Safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

func storeBreakerConfig(cfg config.DatabaseConfig, name string) circuitbreaker.Config {
	cbCfg := circuitbreaker.DefaultConfig()
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	cbCfg.Name = name
	return cbCfg
}
