package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/circuitbreaker"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/service"
)

// EventsHandler serves the audit journal.
type EventsHandler struct {
	events service.EventService
}

// NewEventsHandler creates a new EventsHandler instance.
func NewEventsHandler(events service.EventService) *EventsHandler {
	return &EventsHandler{events: events}
}

// ListEvents handles GET /api/events requests.
//
// @Summary      Query audit journal
// @Description  Returns journal entries newest first. Only available when MongoDB is enabled.
// @Tags         Events
// @Produce      json
// @Param        request_id query string false "Filter by request ID"
// @Param        action query string false "Filter by action (brew, purchase, refill, add_recipe, update_recipe, remove_recipe, http_request)"
// @Param        recipe query string false "Filter by recipe name"
// @Param        level query string false "Filter by level"
// @Param        from query string false "Earliest timestamp (RFC 3339)"
// @Param        to query string false "Latest timestamp (RFC 3339)"
// @Param        limit query int false "Page size (default 50, max 500)"
// @Param        skip query int false "Entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.EventsResponse} "Journal page"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      503 {object} dto.ErrorResponse "Journal store unavailable"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/events [get]
func (h *EventsHandler) ListEvents(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.EventsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid query: "+err.Error(), err)
		return
	}

	q, err := query.ToModel()
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	page, err := h.events.Query(c.Request.Context(), q)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidEventQuery):
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		builder.Error(http.StatusServiceUnavailable, "Event journal is temporarily unavailable", err)
		return
	default:
		builder.Error(http.StatusInternalServerError, "Failed to query events", err)
		return
	}

	builder.SuccessOK(dto.EventsResponse{
		Events: page.Events,
		Total:  page.Total,
		Limit:  page.Limit,
		Skip:   page.Skip,
	})
}
