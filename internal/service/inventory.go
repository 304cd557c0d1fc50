package service

import (
	"fmt"
	"sync"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
)

// Inventory tracks the stock level of every ingredient. Safe for concurrent use.
// Levels never drop below zero: removals that would do so are refused.
type Inventory struct {
	mu    sync.Mutex
	stock model.Stock
}

// NewInventory creates an inventory with the given starting levels.
func NewInventory(coffee, milk, chocolate, sugar int) (*Inventory, error) {
	stock := model.NewStock(coffee, milk, chocolate, sugar)
	for _, ing := range model.Ingredients() {
		if stock[ing] < 0 {
			return nil, fmt.Errorf("initial %s: %w", ing, model.ErrNegativeAmount)
		}
	}
	return &Inventory{stock: stock}, nil
}

// Get returns the current level of an ingredient.
func (inv *Inventory) Get(ing model.Ingredient) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.stock[ing]
}

// Add increments an ingredient's level. Negative amounts are rejected.
func (inv *Inventory) Add(ing model.Ingredient, amount int) error {
	if !ing.Valid() {
		return fmt.Errorf("%w: %d", model.ErrUnknownIngredient, int(ing))
	}
	if amount < 0 {
		return fmt.Errorf("%s %d: %w", ing, amount, model.ErrNegativeAmount)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.stock[ing] += amount
	return nil
}

// Remove decrements an ingredient's level if enough is in stock.
// It reports whether the amount was removed; on false nothing changed.
func (inv *Inventory) Remove(ing model.Ingredient, amount int) bool {
	if !ing.Valid() || amount < 0 {
		return false
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	if inv.stock[ing] < amount {
		return false
	}
	inv.stock[ing] -= amount
	return true
}

// Has reports whether every required amount is currently in stock.
func (inv *Inventory) Has(required model.Stock) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.stock.Covers(required)
}

// Take removes all required amounts in one step, or none of them.
func (inv *Inventory) Take(required model.Stock) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.stock.Covers(required) {
		return false
	}
	for _, ing := range model.Ingredients() {
		if required[ing] < 0 {
			return false
		}
	}
	for _, ing := range model.Ingredients() {
		inv.stock[ing] -= required[ing]
	}
	return true
}

// Snapshot returns a copy of all levels read under a single lock.
func (inv *Inventory) Snapshot() model.Stock {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.stock.Clone()
}
