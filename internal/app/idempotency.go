// Package app provides idempotency store initialization.
package app

import (
	"context"
	"time"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
	"github.com/guttosm/coffeemaker-service/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// IdempotencyComponents holds the store backing the Idempotency-Key middleware.
type IdempotencyComponents struct {
	Store          middleware.IdempotencyStore
	Redis          *redis.Client
	CircuitBreaker *circuitbreaker.CircuitBreaker

	memory *middleware.MemoryIdempotencyStore
}

// InitializeIdempotency picks the idempotency backend. The redis backend falls
// back to the in-memory store when Redis cannot be reached at startup.
// Returns nil when idempotency is disabled.
func InitializeIdempotency(cfg config.IdempotencyConfig, dbCfg config.DatabaseConfig) *IdempotencyComponents {
	if !cfg.Enabled {
		return nil
	}

	if cfg.Backend == config.IdempotencyBackendRedis {
		if components := initializeRedisIdempotency(cfg, dbCfg); components != nil {
			return components
		}
	} else if cfg.Backend != config.IdempotencyBackendMemory {
		log.Warn().Str("backend", cfg.Backend).Msg("Unknown idempotency backend - using memory")
	}

	memory := middleware.NewMemoryIdempotencyStore()
	return &IdempotencyComponents{
		Store:  memory,
		memory: memory,
	}
}

func initializeRedisIdempotency(cfg config.IdempotencyConfig, dbCfg config.DatabaseConfig) *IdempotencyComponents {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := repository.NewRedisClient(ctx, repository.RedisConfig{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: 3 * time.Second,
	})
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis - using in-memory idempotency store")
		return nil
	}

	log.Info().Str("addr", cfg.RedisAddr).Msg("Connected to Redis")

	cb := repository.NewStoreCircuitBreaker(storeBreakerConfig(dbCfg, "redis-idempotency"))
	return &IdempotencyComponents{
		Store:          repository.NewRedisIdempotencyStore(client, cb),
		Redis:          client,
		CircuitBreaker: cb,
	}
}

// Ping checks the Redis connection. Requires the redis backend.
func (i *IdempotencyComponents) Ping(ctx context.Context) error {
	return i.Redis.Ping(ctx).Err()
}

// Close releases the store's resources. Safe on a nil receiver.
func (i *IdempotencyComponents) Close() {
	if i == nil {
		return
	}
	if i.memory != nil {
		i.memory.Stop()
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}
