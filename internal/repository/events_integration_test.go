//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)
	require.NoError(t, db.SetEventsTTL(ctx, 30))

	repo := NewEventsRepository(db)

	t.Run("create event", func(t *testing.T) {
		event := (&model.Event{
			Level:      "info",
			Action:     model.ActionBrew,
			Message:    "Recipe brewed",
			Recipe:     "Cappuccino",
			RequestID:  "req-brew",
			Method:     "POST",
			Path:       "/api/brews",
			StatusCode: 200,
		}).WithStock(model.NewStock(8, 7, 10, 9))

		require.NoError(t, repo.Create(ctx, event))
		assert.False(t, event.ID.IsZero())
	})

	t.Run("create many events", func(t *testing.T) {
		events := []*model.Event{
			{Level: "info", Action: model.ActionRefill, Message: "Ingredients added", RequestID: "req-1"},
			{Level: "warn", Action: model.ActionBrew, Message: "Brew declined", Recipe: "Mocha", RequestID: "req-2"},
			{Level: "info", Action: model.ActionAddRecipe, Message: "Catalog changed", Recipe: "Mocha", RequestID: "req-3"},
		}
		require.NoError(t, repo.CreateMany(ctx, events))
		require.NoError(t, repo.CreateMany(ctx, nil))
	})

	t.Run("query by request ID", func(t *testing.T) {
		events, err := repo.Query(ctx, model.EventQuery{RequestID: "req-brew"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Cappuccino", events[0].Recipe)
		assert.Contains(t, events[0].Fields, "stock")
	})

	t.Run("query by action and recipe", func(t *testing.T) {
		events, err := repo.Query(ctx, model.EventQuery{Action: model.ActionBrew, Recipe: "Mocha"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "warn", events[0].Level)
	})

	t.Run("query newest first with limit", func(t *testing.T) {
		events, err := repo.Query(ctx, model.EventQuery{Limit: 2})
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.False(t, events[0].Timestamp.Before(events[1].Timestamp))
	})

	t.Run("query time range", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		events, err := repo.Query(ctx, model.EventQuery{StartTime: &future})
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, model.EventQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = repo.Count(ctx, model.EventQuery{Action: model.ActionBrew})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestEventsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := newTestDB(t)

	cb := NewStoreCircuitBreaker(circuitbreaker.DefaultConfig())
	wrapped := NewEventsRepositoryWithCircuitBreaker(NewEventsRepository(db), cb)

	require.NoError(t, wrapped.Create(ctx, &model.Event{Level: "info", Action: model.ActionBrew, Message: "ok"}))

	count, err := wrapped.Count(ctx, model.EventQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}
