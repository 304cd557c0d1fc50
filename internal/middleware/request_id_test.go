package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name        string
		headerValue string
		keep        bool
	}{
		{name: "generates ID when header missing", headerValue: "", keep: false},
		{name: "keeps client ID", headerValue: "custom-request-id-123", keep: true},
		{name: "replaces overlong ID", headerValue: strings.Repeat("a", maxRequestIDLength+1), keep: false},
		{name: "replaces ID with spaces", headerValue: "has space", keep: false},
		{name: "replaces ID with control characters", headerValue: "bad\x01id", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			id := w.Body.String()
			assert.Equal(t, id, w.Header().Get(RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.headerValue, id)
				return
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))

	c.Set(string(RequestIDKey), 42)
	assert.Empty(t, GetRequestID(c))
}
