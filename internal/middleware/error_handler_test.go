package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "no errors passes through",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			},
			wantStatus: http.StatusOK,
			wantBody:   `"ok":true`,
		},
		{
			name: "unwritten error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boiler offline"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal_error",
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("late failure"))
				c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
			},
			wantStatus: http.StatusConflict,
			wantBody:   "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			router.GET("/test", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
