package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
)

// NewAuditEvent builds a journal event stamped with the request's metadata.
func NewAuditEvent(c *gin.Context, level, action, message string) *model.Event {
	return &model.Event{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Action:    action,
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// AuditLog journals a machine action that changed state, such as a brew,
// a refill or a catalog edit.
func AuditLog(journal *AsyncJournal, c *gin.Context, action, recipe, message string, fields map[string]any) {
	if journal == nil {
		return
	}
	event := NewAuditEvent(c, "info", action, message)
	event.Recipe = recipe
	event.Fields = fields
	journal.Record(event)
}

// AuditLogError journals a machine action that was refused.
func AuditLogError(journal *AsyncJournal, c *gin.Context, action, recipe, message string, err error, fields map[string]any) {
	if journal == nil {
		return
	}
	event := NewAuditEvent(c, "warn", action, message)
	event.Recipe = recipe
	event.Fields = fields
	if err != nil {
		event.Error = err.Error()
	}
	journal.Record(event)
}
