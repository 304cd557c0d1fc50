package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Builders(t *testing.T) {
	base := NewError(ErrCodeInternal, "test error")
	withID := base.WithRequestID("test-id")
	withDetail := withID.WithDetail("field", "price")

	assert.Empty(t, base.RequestID)
	assert.Equal(t, "test-id", withID.RequestID)
	assert.Equal(t, ErrCodeInternal, withID.Error)
	assert.Equal(t, "test error", withID.Message)
	assert.Nil(t, withID.Details)
	assert.Equal(t, map[string]string{"field": "price"}, withDetail.Details)
	assert.False(t, withDetail.Timestamp.IsZero())
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusPaymentRequired, ErrCodeInsufficientPayment},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewRecipeResponse(t *testing.T) {
	resp := NewRecipeResponse(model.MustRecipe("Cappuccino", "2.7", 2, 3, 0, 1))

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cappuccino","price":"2.70","coffee":2,"milk":3,"chocolate":0,"sugar":1}`, string(data))
}

func TestNewMenuResponse(t *testing.T) {
	items := []model.MenuItem{
		{Recipe: model.MustRecipe("Cappuccino", "2.70", 2, 3, 0, 1), Available: true},
		{Recipe: model.MustRecipe("Mocha", "3.10", 3, 1, 2, 1), Available: false},
	}

	menu := NewMenuResponse(items)
	require.Len(t, menu, 2)
	require.NotNil(t, menu[0].Available)
	require.NotNil(t, menu[1].Available)
	assert.True(t, *menu[0].Available)
	assert.False(t, *menu[1].Available)
	assert.Equal(t, "Mocha", menu[1].Name)
}

func TestNewPurchaseResponse(t *testing.T) {
	recipe := model.MustRecipe("Cappuccino", "2.70", 2, 3, 0, 1)
	stock := model.NewStock(8, 7, 10, 9)

	brewed := NewPurchaseResponse(model.Purchase{
		Recipe: recipe,
		Paid:   decimal.RequireFromString("5"),
		Brewed: true,
		Change: decimal.RequireFromString("2.3"),
	}, stock)
	assert.True(t, brewed.Brewed)
	assert.Equal(t, "5.00", brewed.Paid)
	assert.Equal(t, "2.30", brewed.Change)
	assert.Empty(t, brewed.Refund)
	assert.Equal(t, InventoryResponse{Coffee: 8, Milk: 7, Chocolate: 10, Sugar: 9}, brewed.Inventory)

	refunded := NewPurchaseResponse(model.Purchase{
		Recipe: recipe,
		Paid:   decimal.RequireFromString("3"),
		Refund: decimal.RequireFromString("3"),
	}, stock)
	assert.False(t, refunded.Brewed)
	assert.Empty(t, refunded.Change)
	assert.Equal(t, "3.00", refunded.Refund)
}

func TestNewStatusResponse(t *testing.T) {
	resp := NewStatusResponse(model.Status{
		Recipes:          4,
		MaxRecipes:       4,
		CanBrewAny:       true,
		CanAddRecipe:     false,
		CanEditRecipes:   true,
		CanRemoveRecipes: true,
		Stock:            model.NewStock(1, 2, 3, 4),
	})

	assert.Equal(t, 4, resp.Recipes)
	assert.False(t, resp.CanAddRecipe)
	assert.Equal(t, 4, resp.Inventory.Sugar)
}
