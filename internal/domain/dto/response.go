package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeCatalogFull indicates the recipe catalog has no free slot.
	ErrCodeCatalogFull = "catalog_full"
	// ErrCodeInsufficientStock indicates the inventory cannot cover a recipe.
	ErrCodeInsufficientStock = "insufficient_stock"
	// ErrCodeInsufficientPayment indicates the payment is below the recipe price.
	ErrCodeInsufficientPayment = "insufficient_payment"
	// ErrCodeUnavailable indicates a backing store is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data any `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string            `json:"error" example:"invalid_request"`
	Message   string            `json:"message,omitempty" example:"price must not be negative, got -1"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetail adds one entry to Details.
func (e ErrorResponse) WithDetail(key, value string) ErrorResponse {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusPaymentRequired:
		return ErrCodeInsufficientPayment
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// RecipeResponse is the wire form of a recipe. Available is only set on menu listings.
// @Description Recipe with price and ingredient units
type RecipeResponse struct {
	Name      string `json:"name" example:"Cappuccino"`
	Price     string `json:"price" example:"2.70"`
	Coffee    int    `json:"coffee" example:"2"`
	Milk      int    `json:"milk" example:"3"`
	Chocolate int    `json:"chocolate" example:"0"`
	Sugar     int    `json:"sugar" example:"1"`
	Available *bool  `json:"available,omitempty" example:"true"`
} // @name RecipeResponse

// NewRecipeResponse converts a domain recipe.
func NewRecipeResponse(r model.Recipe) RecipeResponse {
	return RecipeResponse{
		Name:      r.Name(),
		Price:     r.Price().StringFixed(model.PricePlaces),
		Coffee:    r.AmountCoffee(),
		Milk:      r.AmountMilk(),
		Chocolate: r.AmountChocolate(),
		Sugar:     r.AmountSugar(),
	}
}

// NewMenuResponse converts menu items, keeping catalog order.
func NewMenuResponse(items []model.MenuItem) []RecipeResponse {
	out := make([]RecipeResponse, len(items))
	for i, item := range items {
		out[i] = NewRecipeResponse(item.Recipe)
		available := item.Available
		out[i].Available = &available
	}
	return out
}

// AvailabilityResponse reports whether a recipe can be brewed right now.
// @Description Recipe availability
type AvailabilityResponse struct {
	Recipe    string `json:"recipe" example:"Cappuccino"`
	Available bool   `json:"available" example:"true"`
} // @name AvailabilityResponse

// InventoryResponse is the stock of every ingredient.
// @Description Current ingredient stock
type InventoryResponse struct {
	Coffee    int `json:"coffee" example:"10"`
	Milk      int `json:"milk" example:"10"`
	Chocolate int `json:"chocolate" example:"10"`
	Sugar     int `json:"sugar" example:"10"`
} // @name InventoryResponse

// NewInventoryResponse converts a stock snapshot.
func NewInventoryResponse(stock model.Stock) InventoryResponse {
	return InventoryResponse{
		Coffee:    stock[model.Coffee],
		Milk:      stock[model.Milk],
		Chocolate: stock[model.Chocolate],
		Sugar:     stock[model.Sugar],
	}
}

// BrewResponse is the outcome of a brew or purchase.
// Paid, Change and Refund are only present for purchases.
// @Description Brew outcome with remaining inventory
type BrewResponse struct {
	Recipe    string            `json:"recipe" example:"Cappuccino"`
	Brewed    bool              `json:"brewed" example:"true"`
	Paid      string            `json:"paid,omitempty" example:"5.00"`
	Change    string            `json:"change,omitempty" example:"2.30"`
	Refund    string            `json:"refund,omitempty" example:""`
	Inventory InventoryResponse `json:"inventory"`
} // @name BrewResponse

// NewPurchaseResponse converts a purchase outcome.
func NewPurchaseResponse(p model.Purchase, stock model.Stock) BrewResponse {
	resp := BrewResponse{
		Recipe:    p.Recipe.Name(),
		Brewed:    p.Brewed,
		Paid:      p.Paid.StringFixed(model.PricePlaces),
		Inventory: NewInventoryResponse(stock),
	}
	if p.Brewed {
		resp.Change = p.Change.StringFixed(model.PricePlaces)
	} else {
		resp.Refund = p.Refund.StringFixed(model.PricePlaces)
	}
	return resp
}

// StatusResponse summarizes what the machine can do right now.
// @Description Machine status
type StatusResponse struct {
	Recipes          int               `json:"recipes" example:"1"`
	MaxRecipes       int               `json:"max_recipes" example:"4"`
	CanBrewAny       bool              `json:"can_brew_any" example:"true"`
	CanAddRecipe     bool              `json:"can_add_recipe" example:"true"`
	CanEditRecipes   bool              `json:"can_edit_recipes" example:"true"`
	CanRemoveRecipes bool              `json:"can_remove_recipes" example:"true"`
	Inventory        InventoryResponse `json:"inventory"`
} // @name StatusResponse

// NewStatusResponse converts a machine status.
func NewStatusResponse(s model.Status) StatusResponse {
	return StatusResponse{
		Recipes:          s.Recipes,
		MaxRecipes:       s.MaxRecipes,
		CanBrewAny:       s.CanBrewAny,
		CanAddRecipe:     s.CanAddRecipe,
		CanEditRecipes:   s.CanEditRecipes,
		CanRemoveRecipes: s.CanRemoveRecipes,
		Inventory:        NewInventoryResponse(s.Stock),
	}
}

// EventsResponse is one page of the audit journal.
// @Description Audit journal page
type EventsResponse struct {
	Events []*model.Event `json:"events"`
	Total  int64          `json:"total" example:"42"`
	Limit  int            `json:"limit" example:"50"`
	Skip   int            `json:"skip" example:"0"`
} // @name EventsResponse
