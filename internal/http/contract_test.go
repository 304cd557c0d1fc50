//go:build contract

package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPI_ContractCompliance checks that every endpoint answers with the documented envelope.
func TestAPI_ContractCompliance(t *testing.T) {
	router := setupRouter(t, newTestMachine(t))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{"list recipes", http.MethodGet, "/api/recipes", "", http.StatusOK, nil},
		{"get recipe", http.MethodGet, "/api/recipes/Cappuccino", "", http.StatusOK, []string{"name", "price", "coffee", "milk", "chocolate", "sugar"}},
		{"availability", http.MethodGet, "/api/recipes/Cappuccino/availability", "", http.StatusOK, []string{"recipe", "available"}},
		{"inventory", http.MethodGet, "/api/inventory", "", http.StatusOK, []string{"coffee", "milk", "chocolate", "sugar"}},
		{"status", http.MethodGet, "/api/status", "", http.StatusOK, []string{"recipes", "max_recipes", "can_brew_any", "can_add_recipe", "can_edit_recipes", "can_remove_recipes", "inventory"}},
		{"brew", http.MethodPost, "/api/brews", `{"recipe":"Cappuccino","paid":"3"}`, http.StatusOK, []string{"recipe", "brewed", "paid", "change", "inventory"}},
		{"add recipe", http.MethodPost, "/api/recipes", `{"name":"Mocha","price":"3.10","coffee":3,"milk":1,"chocolate":2,"sugar":1}`, http.StatusCreated, []string{"name", "price"}},
		{"not found", http.MethodGet, "/api/recipes/Nope", "", http.StatusNotFound, nil},
		{"bad request", http.MethodPost, "/api/brews", `{}`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, tt.method, tt.path, tt.body)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			assert.NotEmpty(t, envelope["request_id"], "request_id is required")

			ts, ok := envelope["timestamp"].(string)
			require.True(t, ok, "timestamp is required")
			_, err := time.Parse(time.RFC3339Nano, ts)
			assert.NoError(t, err)

			if w.Code >= 400 {
				assert.NotEmpty(t, envelope["error"], "error code is required")
				assert.NotEmpty(t, envelope["message"])
				return
			}

			require.Contains(t, envelope, "data")
			if len(tt.wantFields) > 0 {
				data, ok := envelope["data"].(map[string]any)
				require.True(t, ok)
				for _, f := range tt.wantFields {
					assert.Contains(t, data, f)
				}
				if price, ok := data["price"]; ok {
					_, isString := price.(string)
					assert.True(t, isString, "prices travel as decimal strings")
				}
			}
		})
	}
}
