package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	idempotencyKeyPrefix = "idemp:"
	redisBackend         = "redis"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// RedisIdempotencyStore keeps replayable HTTP responses in Redis so that
// retries are recognised across instances. Every call goes through the
// circuit breaker; when Redis is unavailable lookups report a miss and writes
// are dropped, so requests are processed rather than rejected.
type RedisIdempotencyStore struct {
	client         redis.Cmdable
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRedisIdempotencyStore creates a store on top of an existing client.
func NewRedisIdempotencyStore(client redis.Cmdable, cb *circuitbreaker.CircuitBreaker) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{
		client:         client,
		circuitBreaker: cb,
	}
}

// Get returns the stored value for key, if present.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) ([]byte, bool) {
	var value []byte
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		value, cbErr = s.client.Get(ctx, idempotencyKeyPrefix+key).Bytes()
		return cbErr
	})

	switch {
	case err == nil:
		metrics.RecordIdempotencyOperation(redisBackend, "hit")
		return value, true
	case errors.Is(err, redis.Nil):
		metrics.RecordIdempotencyOperation(redisBackend, "miss")
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		metrics.RecordIdempotencyOperation(redisBackend, "circuit_open")
	default:
		metrics.RecordIdempotencyOperation(redisBackend, "error")
		log.Warn().Err(err).Msg("Idempotency lookup failed")
	}
	return nil, false
}

// Set stores value under key for ttl.
func (s *RedisIdempotencyStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	err := s.circuitBreaker.Execute(ctx, func() error {
		return s.client.Set(ctx, idempotencyKeyPrefix+key, value, ttl).Err()
	})

	switch {
	case err == nil:
		metrics.RecordIdempotencyOperation(redisBackend, "stored")
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		metrics.RecordIdempotencyOperation(redisBackend, "circuit_open")
	default:
		metrics.RecordIdempotencyOperation(redisBackend, "error")
		log.Warn().Err(err).Msg("Idempotency store write failed")
	}
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *RedisIdempotencyStore) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}
