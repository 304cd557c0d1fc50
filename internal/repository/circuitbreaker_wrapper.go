package repository

import (
	"context"
	"errors"

	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/metrics"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewStoreCircuitBreaker creates a breaker for a backing store. Its state is
// published on the circuit_breaker_state gauge, and lookups that merely find
// nothing (mongo.ErrNoDocuments, redis.Nil) do not count as failures.
func NewStoreCircuitBreaker(cfg circuitbreaker.Config) *circuitbreaker.CircuitBreaker {
	cfg.OnStateChange = func(name string, _, to circuitbreaker.State) {
		metrics.SetCircuitBreakerState(name, to.Level())
	}
	cfg.IsSuccessful = func(err error) bool {
		return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, redis.Nil)
	}
	return circuitbreaker.New(cfg)
}

// EventsRepositoryWithCircuitBreaker wraps an events repository with circuit breaker protection.
type EventsRepositoryWithCircuitBreaker struct {
	repo           EventsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewEventsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewEventsRepositoryWithCircuitBreaker(repo EventsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *EventsRepositoryWithCircuitBreaker {
	return &EventsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an event with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) Create(ctx context.Context, event *model.Event) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, event)
	})
}

// CreateMany inserts events in bulk with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, events []*model.Event) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, events)
	})
}

// Query queries events with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) Query(ctx context.Context, q model.EventQuery) ([]*model.Event, error) {
	var result []*model.Event
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, q)
		return cbErr
	})
	return result, err
}

// Count counts events with circuit breaker protection.
func (r *EventsRepositoryWithCircuitBreaker) Count(ctx context.Context, q model.EventQuery) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, q)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *EventsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
