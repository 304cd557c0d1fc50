package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PricePlaces is the number of decimal places a price or payment may carry.
const PricePlaces = 2

// WholeCents reports whether d has no digits beyond PricePlaces.
// Trailing zeros do not count: 2.700 is whole cents, 2.705 is not.
func WholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(PricePlaces))
}

// Recipe is a named, priced product and the units of each ingredient it needs.
// A Recipe is immutable: editing one means building a new value with the same name.
// Two recipes with the same name are the same catalog entry; see Is.
type Recipe struct {
	name            string
	price           decimal.Decimal
	amountCoffee    int
	amountMilk      int
	amountChocolate int
	amountSugar     int
}

// NewRecipe validates its arguments and returns a Recipe.
// Validation order is name, price, then coffee, milk, chocolate and sugar.
func NewRecipe(name string, price decimal.Decimal, coffee, milk, chocolate, sugar int) (Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, ErrInvalidName
	}
	if price.IsNegative() {
		return Recipe{}, &InvalidPriceError{Price: price.String(), Reason: "must not be negative"}
	}
	if !WholeCents(price) {
		return Recipe{}, &InvalidPriceError{Price: price.String(), Reason: "must not have more than 2 decimal places"}
	}

	amounts := NewStock(coffee, milk, chocolate, sugar)
	for _, ing := range Ingredients() {
		if amounts[ing] < 0 {
			return Recipe{}, &InvalidIngredientAmountError{Ingredient: ing, Amount: amounts[ing]}
		}
	}

	return Recipe{
		name:            name,
		price:           price,
		amountCoffee:    coffee,
		amountMilk:      milk,
		amountChocolate: chocolate,
		amountSugar:     sugar,
	}, nil
}

// MustRecipe is like NewRecipe but panics on invalid input. Use it only for literals in tests.
func MustRecipe(name string, price string, coffee, milk, chocolate, sugar int) Recipe {
	r, err := NewRecipe(name, decimal.RequireFromString(price), coffee, milk, chocolate, sugar)
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the recipe name, which is its catalog key.
func (r Recipe) Name() string { return r.name }

// Price returns the price exactly as given at construction. It is always whole cents.
func (r Recipe) Price() decimal.Decimal { return r.price }

// AmountCoffee returns the required units of coffee.
func (r Recipe) AmountCoffee() int { return r.amountCoffee }

// AmountMilk returns the required units of milk.
func (r Recipe) AmountMilk() int { return r.amountMilk }

// AmountChocolate returns the required units of chocolate.
func (r Recipe) AmountChocolate() int { return r.amountChocolate }

// AmountSugar returns the required units of sugar.
func (r Recipe) AmountSugar() int { return r.amountSugar }

// Amount returns the required units of the given ingredient.
func (r Recipe) Amount(ing Ingredient) int {
	switch ing {
	case Coffee:
		return r.amountCoffee
	case Milk:
		return r.amountMilk
	case Chocolate:
		return r.amountChocolate
	case Sugar:
		return r.amountSugar
	default:
		return 0
	}
}

// Requirements returns the four required amounts keyed by ingredient.
func (r Recipe) Requirements() Stock {
	return NewStock(r.amountCoffee, r.amountMilk, r.amountChocolate, r.amountSugar)
}

// Is reports whether r and other are the same catalog entry.
// Only the name is compared; price and amounts are ignored.
func (r Recipe) Is(other Recipe) bool {
	return r.name == other.name
}

// IsZero reports whether r is the zero value rather than a constructed recipe.
func (r Recipe) IsZero() bool {
	return r.name == ""
}
