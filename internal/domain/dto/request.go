// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Requests are bound with
// gin's binding tags, then converted into domain values whose constructors do
// the real validation.
package dto

import (
	"strings"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// RecipeRequest is the body for adding a recipe.
// Price accepts a JSON number or a decimal string. Omitted amounts are zero.
//
// @Description Recipe definition
type RecipeRequest struct {
	Name      string           `json:"name" binding:"required" example:"Mocha"`
	Price     *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"3.10"`
	Coffee    int              `json:"coffee" example:"3"`
	Milk      int              `json:"milk" example:"1"`
	Chocolate int              `json:"chocolate" example:"2"`
	Sugar     int              `json:"sugar" example:"1"`
} // @name RecipeRequest

// ToRecipe validates the request into a domain recipe.
func (r *RecipeRequest) ToRecipe() (model.Recipe, error) {
	return model.NewRecipe(r.Name, priceOrZero(r.Price), r.Coffee, r.Milk, r.Chocolate, r.Sugar)
}

// UpdateRecipeRequest is the body for replacing a recipe; the name comes from the path.
//
// @Description Replacement price and ingredient amounts for an existing recipe
type UpdateRecipeRequest struct {
	Price     *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"2.90"`
	Coffee    int              `json:"coffee" example:"2"`
	Milk      int              `json:"milk" example:"3"`
	Chocolate int              `json:"chocolate" example:"0"`
	Sugar     int              `json:"sugar" example:"1"`
} // @name UpdateRecipeRequest

// ToRecipe validates the request into a domain recipe named name.
func (r *UpdateRecipeRequest) ToRecipe(name string) (model.Recipe, error) {
	return model.NewRecipe(name, priceOrZero(r.Price), r.Coffee, r.Milk, r.Chocolate, r.Sugar)
}

// InventoryRequest is the body for refilling the machine. Omitted amounts are zero.
//
// @Description Units to add per ingredient
type InventoryRequest struct {
	Coffee    int `json:"coffee" example:"5"`
	Milk      int `json:"milk" example:"5"`
	Chocolate int `json:"chocolate" example:"0"`
	Sugar     int `json:"sugar" example:"2"`
} // @name InventoryRequest

// BrewRequest asks the machine to brew a recipe. When Paid is set the brew is
// a purchase and the response carries change or a refund.
//
// @Description Brew or purchase request
type BrewRequest struct {
	Recipe string           `json:"recipe" binding:"required" example:"Cappuccino"`
	Paid   *decimal.Decimal `json:"paid,omitempty" swaggertype:"string" example:"5.00"`
} // @name BrewRequest

// EventsQuery holds the query string of the journal endpoint.
type EventsQuery struct {
	RequestID string `form:"request_id"`
	Action    string `form:"action"`
	Recipe    string `form:"recipe"`
	Level     string `form:"level"`
	From      string `form:"from"`
	To        string `form:"to"`
	Limit     int    `form:"limit"`
	Skip      int    `form:"skip"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ToModel parses the time bounds (RFC 3339) and returns the domain query.
func (q *EventsQuery) ToModel() (model.EventQuery, error) {
	out := model.EventQuery{
		RequestID: strings.TrimSpace(q.RequestID),
		Action:    strings.TrimSpace(q.Action),
		Recipe:    strings.TrimSpace(q.Recipe),
		Level:     strings.TrimSpace(q.Level),
		Limit:     q.Limit,
		Skip:      q.Skip,
	}

	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return model.EventQuery{}, &ValidationError{Field: "from", Message: "must be an RFC 3339 timestamp"}
		}
		out.StartTime = &from
	}
	if q.To != "" {
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return model.EventQuery{}, &ValidationError{Field: "to", Message: "must be an RFC 3339 timestamp"}
		}
		out.EndTime = &to
	}
	return out, nil
}

func priceOrZero(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}
