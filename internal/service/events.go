package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/repository"
)

// DefaultEventsPageSize is used when a journal query does not set a limit.
const DefaultEventsPageSize = 50

// ErrInvalidEventQuery is returned for queries with negative paging or an inverted time range.
var ErrInvalidEventQuery = errors.New("invalid event query")

// EventService records and queries the machine's audit journal.
type EventService interface {
	// Record stores a single event.
	Record(ctx context.Context, event *model.Event) error

	// RecordBatch stores several events in one write.
	RecordBatch(ctx context.Context, events []*model.Event) error

	// Query returns a page of events matching q, newest first.
	Query(ctx context.Context, q model.EventQuery) (model.EventPage, error)
}

// EventServiceImpl implements EventService on top of an events repository.
type EventServiceImpl struct {
	repo repository.EventsRepositoryInterface
}

// NewEventService creates a new event service.
func NewEventService(repo repository.EventsRepositoryInterface) *EventServiceImpl {
	return &EventServiceImpl{repo: repo}
}

// Record stores a single event.
func (s *EventServiceImpl) Record(ctx context.Context, event *model.Event) error {
	if event == nil {
		return nil
	}
	return s.repo.Create(ctx, event)
}

// RecordBatch stores several events, skipping nil entries.
func (s *EventServiceImpl) RecordBatch(ctx context.Context, events []*model.Event) error {
	batch := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if e != nil {
			batch = append(batch, e)
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, batch)
}

// Query returns a page of events matching q.
func (s *EventServiceImpl) Query(ctx context.Context, q model.EventQuery) (model.EventPage, error) {
	if q.Limit < 0 || q.Skip < 0 {
		return model.EventPage{}, fmt.Errorf("%w: limit and skip must not be negative", ErrInvalidEventQuery)
	}
	if q.StartTime != nil && q.EndTime != nil && q.EndTime.Before(*q.StartTime) {
		return model.EventPage{}, fmt.Errorf("%w: end time is before start time", ErrInvalidEventQuery)
	}
	if q.Limit == 0 {
		q.Limit = DefaultEventsPageSize
	}
	if q.Limit > repository.MaxQueryLimit {
		q.Limit = repository.MaxQueryLimit
	}

	events, err := s.repo.Query(ctx, q)
	if err != nil {
		return model.EventPage{}, fmt.Errorf("query events: %w", err)
	}
	total, err := s.repo.Count(ctx, q)
	if err != nil {
		return model.EventPage{}, fmt.Errorf("count events: %w", err)
	}

	return model.EventPage{Events: events, Total: total, Limit: q.Limit, Skip: q.Skip}, nil
}
