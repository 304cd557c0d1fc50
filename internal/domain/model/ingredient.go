// Package model defines the core domain entities for the coffee maker service.
package model

import (
	"fmt"
	"strings"
)

// Ingredient is one of the stock-tracked components of a recipe.
type Ingredient int

const (
	// Coffee is ground coffee, measured in units.
	Coffee Ingredient = iota
	// Milk is measured in units.
	Milk
	// Chocolate is measured in units.
	Chocolate
	// Sugar is measured in units.
	Sugar
)

// ingredientNames holds the canonical wire names, indexed by Ingredient.
var ingredientNames = [...]string{"coffee", "milk", "chocolate", "sugar"}

// Ingredients returns every ingredient kind in its fixed order.
func Ingredients() []Ingredient {
	return []Ingredient{Coffee, Milk, Chocolate, Sugar}
}

// Valid reports whether i is one of the known ingredient kinds.
func (i Ingredient) Valid() bool {
	return i >= Coffee && i <= Sugar
}

// String returns the canonical lower-case name.
func (i Ingredient) String() string {
	if !i.Valid() {
		return fmt.Sprintf("ingredient(%d)", int(i))
	}
	return ingredientNames[i]
}

// MarshalText encodes the ingredient by name so it can be used as a JSON map key.
func (i Ingredient) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIngredient, int(i))
	}
	return []byte(i.String()), nil
}

// UnmarshalText decodes an ingredient from its name.
func (i *Ingredient) UnmarshalText(text []byte) error {
	parsed, err := ParseIngredient(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// ParseIngredient resolves a case-insensitive ingredient name.
func ParseIngredient(name string) (Ingredient, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for idx, candidate := range ingredientNames {
		if candidate == n {
			return Ingredient(idx), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIngredient, name)
}

// Stock maps each ingredient to a quantity of units.
// It is used both for inventory levels and for recipe requirements.
type Stock map[Ingredient]int

// NewStock builds a Stock from the four amounts in canonical order.
func NewStock(coffee, milk, chocolate, sugar int) Stock {
	return Stock{
		Coffee:    coffee,
		Milk:      milk,
		Chocolate: chocolate,
		Sugar:     sugar,
	}
}

// Covers reports whether s holds at least the required amount of every ingredient.
func (s Stock) Covers(required Stock) bool {
	for _, ing := range Ingredients() {
		if s[ing] < required[ing] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s Stock) Clone() Stock {
	out := make(Stock, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
