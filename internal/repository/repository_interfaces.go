package repository

import (
	"context"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
)

// EventsRepositoryInterface defines the interface for audit journal storage.
type EventsRepositoryInterface interface {
	Create(ctx context.Context, event *model.Event) error
	CreateMany(ctx context.Context, events []*model.Event) error
	Query(ctx context.Context, q model.EventQuery) ([]*model.Event, error)
	Count(ctx context.Context, q model.EventQuery) (int64, error)
}

var (
	_ EventsRepositoryInterface = (*EventsRepository)(nil)
	_ EventsRepositoryInterface = (*EventsRepositoryWithCircuitBreaker)(nil)
)
