package repository

import (
	"context"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxQueryLimit caps how many events a single query returns.
const MaxQueryLimit = 500

// EventsRepository stores audit journal entries in the events collection.
type EventsRepository struct {
	collection *mongo.Collection
}

// NewEventsRepository creates a new events repository.
func NewEventsRepository(db *MongoDB) *EventsRepository {
	return &EventsRepository{
		collection: db.Events,
	}
}

// Create inserts a single event, assigning its ID and timestamp if unset.
func (r *EventsRepository) Create(ctx context.Context, event *model.Event) error {
	stamp(event)
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// CreateMany inserts events in one unordered bulk write.
func (r *EventsRepository) CreateMany(ctx context.Context, events []*model.Event) error {
	if len(events) == 0 {
		return nil
	}

	docs := make([]any, len(events))
	for i, event := range events {
		stamp(event)
		docs[i] = event
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns events matching q, newest first.
func (r *EventsRepository) Query(ctx context.Context, q model.EventQuery) ([]*model.Event, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(clampLimit(q.Limit)))
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, eventFilter(q), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	events := make([]*model.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Count returns the number of events matching q, ignoring Limit and Skip.
func (r *EventsRepository) Count(ctx context.Context, q model.EventQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, eventFilter(q))
}

func stamp(event *model.Event) {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

func eventFilter(q model.EventQuery) bson.M {
	filter := bson.M{}

	if q.RequestID != "" {
		filter["request_id"] = q.RequestID
	}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Recipe != "" {
		filter["recipe"] = q.Recipe
	}
	if q.Level != "" {
		filter["level"] = q.Level
	}
	if q.StartTime != nil || q.EndTime != nil {
		timeFilter := bson.M{}
		if q.StartTime != nil {
			timeFilter["$gte"] = *q.StartTime
		}
		if q.EndTime != nil {
			timeFilter["$lte"] = *q.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}
