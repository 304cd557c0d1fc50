package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffeemaker-service/internal/domain/dto"
	"github.com/guttosm/coffeemaker-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Handlers attach unexpected errors with c.Error; this logs the last one and,
// if nothing was written yet, answers with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.WithRequestID(requestID)
		log.Error().
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			errorResp := dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
