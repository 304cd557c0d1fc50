//go:build integration

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/middleware"
	"github.com/guttosm/coffeemaker-service/internal/repository"
	"github.com/guttosm/coffeemaker-service/internal/service"
	"github.com/guttosm/coffeemaker-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrewJournal_Integration(t *testing.T) {
	ctx := context.Background()

	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	events := service.NewEventService(repository.NewEventsRepository(db))
	journal := middleware.NewAsyncJournal(events, middleware.AsyncJournalConfig{
		NumWorkers:    1,
		FlushInterval: 20 * time.Millisecond,
	})
	defer journal.Stop()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Journal = journal
	cfg.EventService = events
	router := NewRouter(NewHandler(newTestMachine(t), WithJournal(journal)), NewHealthHandler(), &cfg)

	w := performRequest(router, http.MethodPost, "/api/brews", `{"recipe":"Cappuccino","paid":"5.00"}`,
		middleware.RequestIDHeader, "integration-brew")
	require.Equal(t, http.StatusOK, w.Code)

	var page dto.EventsResponse
	require.Eventually(t, func() bool {
		w := performRequest(router, http.MethodGet, "/api/events?request_id=integration-brew", "")
		if w.Code != http.StatusOK {
			return false
		}
		decodeData(t, w, &page)
		return page.Total == 2
	}, 5*time.Second, 50*time.Millisecond)

	actions := []string{page.Events[0].Action, page.Events[1].Action}
	assert.ElementsMatch(t, []string{model.ActionPurchase, model.ActionHTTPRequest}, actions)

	w = performRequest(router, http.MethodGet, "/api/events?action=purchase&recipe=Cappuccino", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &page)
	require.Len(t, page.Events, 1)
	assert.Equal(t, "2.30", page.Events[0].Fields["change"])
}
