package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/logger"
)

// RequestLogger returns a middleware that logs every HTTP request with its
// request ID, method, path, status code, latency, IP, and user agent.
// When a journal is given the request is also recorded there.
func RequestLogger(journal *AsyncJournal) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		level := getLogLevel(statusCode)

		log := logger.WithRequestID(GetRequestID(c)).With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if journal != nil {
			event := NewAuditEvent(c, level, model.ActionHTTPRequest, "HTTP request")
			event.StatusCode = statusCode
			event.Duration = latency.Milliseconds()
			journal.Record(event)
		}
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
