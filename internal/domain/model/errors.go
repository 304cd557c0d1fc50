package model

import (
	"errors"
	"fmt"
)

// Sentinel errors used across layers.
var (
	// ErrInvalidName is returned when a recipe name is empty.
	ErrInvalidName = errors.New("recipe name must not be empty")
	// ErrInvalidPrice is matched by every InvalidPriceError.
	ErrInvalidPrice = errors.New("invalid recipe price")
	// ErrInvalidIngredientAmount is matched by every InvalidIngredientAmountError.
	ErrInvalidIngredientAmount = errors.New("invalid recipe ingredient amount")
	// ErrUnknownIngredient is returned for names or values outside the ingredient set.
	ErrUnknownIngredient = errors.New("unknown ingredient")
	// ErrNegativeAmount is returned when adding a negative amount to the inventory.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrRecipeExists is returned when a recipe name is already in the catalog.
	ErrRecipeExists = errors.New("recipe already exists")
	// ErrCatalogFull is returned when the catalog has no free slot.
	ErrCatalogFull = errors.New("recipe catalog is full")
	// ErrRecipeNotFound is returned when an operation needs a recipe that is not in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrInvalidPayment is returned for a negative payment or one with fractions of a cent.
	ErrInvalidPayment = errors.New("payment must be a non-negative amount in whole cents")
	// ErrInsufficientPayment is returned when the payment does not cover the price.
	ErrInsufficientPayment = errors.New("payment does not cover the price")
	// ErrSeedFailed is returned when the machine cannot be seeded with its built-in state.
	ErrSeedFailed = errors.New("coffee maker could not be seeded")
)

// InvalidPriceError reports a recipe price that is negative or has fractions of a cent.
type InvalidPriceError struct {
	Price  string
	Reason string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("price %s, got %s", e.Reason, e.Price)
}

// Is lets errors.Is match ErrInvalidPrice.
func (e *InvalidPriceError) Is(target error) bool {
	return target == ErrInvalidPrice
}

// InvalidIngredientAmountError reports which ingredient had a negative amount.
type InvalidIngredientAmountError struct {
	Ingredient Ingredient
	Amount     int
}

func (e *InvalidIngredientAmountError) Error() string {
	return fmt.Sprintf("units of %s must not be negative, got %d", e.Ingredient, e.Amount)
}

// Is lets errors.Is match ErrInvalidIngredientAmount.
func (e *InvalidIngredientAmountError) Is(target error) bool {
	return target == ErrInvalidIngredientAmount
}
