//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/coffeemaker-service/config"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	t.Parallel()
	uri := testutil.GetSharedContainerURI()

	newConfig := func(t *testing.T) config.DatabaseConfig {
		return config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			EventsTTL:                      30 * 24 * time.Hour,
			Enabled:                        true,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}
	}

	t.Run("builds the event journal", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		components := InitializeDatabase(newConfig(t))
		require.NotNil(t, components)
		defer components.Close(ctx)

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.EventService)
		require.NotNil(t, components.EventsCircuitBreaker)
		assert.Equal(t, "mongodb-events", components.EventsCircuitBreaker.Name())

		err := components.EventService.Record(ctx, &model.Event{
			Level:   "info",
			Action:  model.ActionBrew,
			Recipe:  "Cappuccino",
			Message: "brewed",
		})
		require.NoError(t, err)

		page, err := components.EventService.Query(ctx, model.EventQuery{Recipe: "Cappuccino"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Events, 1)
		assert.Equal(t, model.ActionBrew, page.Events[0].Action)
	})

	t.Run("unreachable database returns nil", func(t *testing.T) {
		t.Parallel()
		cfg := newConfig(t)
		cfg.URI = "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200"

		assert.Nil(t, InitializeDatabase(cfg))
	})

	t.Run("application journals brews to MongoDB", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()

		cfg := testConfig()
		cfg.Database = newConfig(t)

		router, cleanup, err := InitializeApp(cfg)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/brews", strings.NewReader(`{"recipe":"Cappuccino"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// flushes the journal before disconnecting
		cleanup()

		components := InitializeDatabase(cfg.Database)
		require.NotNil(t, components)
		defer components.Close(ctx)

		page, err := components.EventService.Query(ctx, model.EventQuery{Action: model.ActionBrew})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.Total)
		assert.Equal(t, "Cappuccino", page.Events[0].Recipe)
	})
}
