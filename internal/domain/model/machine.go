package model

import "github.com/shopspring/decimal"

// MenuItem is a catalog entry together with whether it can be brewed right now.
type MenuItem struct {
	Recipe    Recipe
	Available bool
}

// Purchase is the outcome of paying for a recipe.
// Exactly one of Change (when Brewed) or Refund (when not) is meaningful.
type Purchase struct {
	Recipe Recipe
	Paid   decimal.Decimal
	Brewed bool
	Change decimal.Decimal
	Refund decimal.Decimal
}

// Status summarizes which machine operations are currently possible.
type Status struct {
	Recipes          int
	MaxRecipes       int
	CanBrewAny       bool
	CanAddRecipe     bool
	CanEditRecipes   bool
	CanRemoveRecipes bool
	Stock            Stock
}
