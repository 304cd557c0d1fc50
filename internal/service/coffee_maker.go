// Package service contains the business logic for the coffee maker service.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/guttosm/coffeemaker-service/internal/metrics"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RecipeSpec is an unvalidated recipe definition, as read from configuration.
type RecipeSpec struct {
	Name      string
	Price     decimal.Decimal
	Coffee    int
	Milk      int
	Chocolate int
	Sugar     int
}

// Build validates the definition and returns the recipe.
func (s RecipeSpec) Build() (model.Recipe, error) {
	return model.NewRecipe(s.Name, s.Price, s.Coffee, s.Milk, s.Chocolate, s.Sugar)
}

var (
	// DefaultInitialStock is the stock a fresh machine starts with.
	DefaultInitialStock = model.NewStock(10, 10, 10, 10)

	// DefaultSeedRecipe is the built-in recipe every machine starts with.
	DefaultSeedRecipe = RecipeSpec{
		Name:      "Cappuccino",
		Price:     decimal.RequireFromString("2.70"),
		Coffee:    2,
		Milk:      3,
		Chocolate: 0,
		Sugar:     1,
	}
)

// CoffeeMaker defines the operations of a coffee machine.
type CoffeeMaker interface {
	AddRecipe(r model.Recipe) bool
	// InsertRecipe is AddRecipe reporting why a recipe was declined.
	InsertRecipe(r model.Recipe) error
	RemoveRecipe(name string) bool
	UpdateRecipe(r model.Recipe) bool
	FindRecipe(name string) (model.Recipe, bool)
	ListRecipes() []model.Recipe
	AddIngredients(coffee, milk, chocolate, sugar int) error
	CanFulfill(name string) bool
	Fulfill(name string) bool
	// Purchase takes payment for a recipe and brews it, returning change or a refund.
	Purchase(name string, paid decimal.Decimal) (model.Purchase, error)
	InventorySnapshot() model.Stock
	Menu() []model.MenuItem
	Status() model.Status
}

// Option configures a CoffeeMakerService before it is seeded.
type Option func(*CoffeeMakerService)

// WithInitialStock overrides the starting inventory levels.
func WithInitialStock(stock model.Stock) Option {
	return func(s *CoffeeMakerService) {
		s.initialStock = stock.Clone()
	}
}

// WithSeedRecipe overrides the built-in recipe.
func WithSeedRecipe(spec RecipeSpec) Option {
	return func(s *CoffeeMakerService) {
		s.seed = spec
	}
}

// CoffeeMakerService implements CoffeeMaker over one Inventory and one RecipeBook.
//
// A single RWMutex covers both: every mutation holds the write lock for its
// whole duration, so a brew's check and its four deductions form one critical
// section. Queries share the read lock and see a consistent snapshot.
type CoffeeMakerService struct {
	mu        sync.RWMutex
	inventory *Inventory
	catalog   *RecipeBook

	initialStock model.Stock
	seed         RecipeSpec
}

// NewCoffeeMakerService creates a machine seeded with its initial stock and built-in recipe.
// It returns an error wrapping model.ErrSeedFailed if the seed itself is invalid;
// no partially seeded machine is ever returned.
func NewCoffeeMakerService(opts ...Option) (*CoffeeMakerService, error) {
	s := &CoffeeMakerService{
		initialStock: DefaultInitialStock.Clone(),
		seed:         DefaultSeedRecipe,
	}
	for _, opt := range opts {
		opt(s)
	}

	st := s.initialStock
	inventory, err := NewInventory(st[model.Coffee], st[model.Milk], st[model.Chocolate], st[model.Sugar])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrSeedFailed, err)
	}

	recipe, err := s.seed.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: built-in recipe %q: %w", model.ErrSeedFailed, s.seed.Name, err)
	}

	catalog := NewRecipeBook()
	if !catalog.Add(recipe) {
		return nil, fmt.Errorf("%w: built-in recipe %q rejected by catalog", model.ErrSeedFailed, recipe.Name())
	}

	s.inventory = inventory
	s.catalog = catalog

	metrics.UpdateInventoryLevels(inventory.Snapshot())
	metrics.UpdateRecipeCount(catalog.Len())

	return s, nil
}

// AddRecipe adds a recipe unless its name is taken or the catalog is full.
func (s *CoffeeMakerService) AddRecipe(r model.Recipe) bool {
	return s.InsertRecipe(r) == nil
}

// InsertRecipe adds a recipe. The decline reason, model.ErrRecipeExists or
// model.ErrCatalogFull, is decided under the same lock as the insert.
func (s *CoffeeMakerService) InsertRecipe(r model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.catalog.Insert(r)
	s.recordCatalogChange("add", r.Name(), err == nil)
	return err
}

// RemoveRecipe removes a recipe by name.
func (s *CoffeeMakerService) RemoveRecipe(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.catalog.Remove(name)
	s.recordCatalogChange("remove", name, ok)
	return ok
}

// UpdateRecipe replaces the recipe that has the same name as r.
func (s *CoffeeMakerService) UpdateRecipe(r model.Recipe) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := s.catalog.Update(r)
	s.recordCatalogChange("update", r.Name(), ok)
	return ok
}

// FindRecipe looks a recipe up by name.
func (s *CoffeeMakerService) FindRecipe(name string) (model.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Find(name)
}

// ListRecipes returns a copy of the catalog in insertion order.
func (s *CoffeeMakerService) ListRecipes() []model.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.List()
}

// AddIngredients refills the inventory. All four amounts are checked before
// any is applied, so a rejected refill leaves the stock untouched.
func (s *CoffeeMakerService) AddIngredients(coffee, milk, chocolate, sugar int) error {
	amounts := model.NewStock(coffee, milk, chocolate, sugar)
	for _, ing := range model.Ingredients() {
		if amounts[ing] < 0 {
			return fmt.Errorf("%s %d: %w", ing, amounts[ing], model.ErrNegativeAmount)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ing := range model.Ingredients() {
		if err := s.inventory.Add(ing, amounts[ing]); err != nil {
			return err
		}
	}

	stock := s.inventory.Snapshot()
	metrics.UpdateInventoryLevels(stock)
	log.Info().
		Int("coffee", coffee).
		Int("milk", milk).
		Int("chocolate", chocolate).
		Int("sugar", sugar).
		Msg("Ingredients added")
	return nil
}

// CanFulfill reports whether the named recipe exists and every ingredient it needs is in stock.
func (s *CoffeeMakerService) CanFulfill(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canFulfillLocked(name)
}

// Fulfill brews the named recipe, deducting its ingredients.
// On false the inventory is left exactly as it was.
func (s *CoffeeMakerService) Fulfill(name string) bool {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.fulfillLocked(name)
	metrics.RecordBrew(time.Since(start), status)
	return status == metrics.BrewStatusBrewed
}

// Purchase brews the named recipe if paid covers its price. The payment must be
// whole cents, so price, change and refund always add up as displayed.
// A payment below the price is refused before any stock is checked. If the
// recipe cannot be brewed, the whole payment is returned as Refund.
func (s *CoffeeMakerService) Purchase(name string, paid decimal.Decimal) (model.Purchase, error) {
	if paid.IsNegative() || !model.WholeCents(paid) {
		return model.Purchase{}, fmt.Errorf("paid %s: %w", paid, model.ErrInvalidPayment)
	}

	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	recipe, ok := s.catalog.Find(name)
	if !ok {
		metrics.RecordBrew(time.Since(start), metrics.BrewStatusUnknownRecipe)
		return model.Purchase{}, fmt.Errorf("%q: %w", name, model.ErrRecipeNotFound)
	}
	if paid.LessThan(recipe.Price()) {
		metrics.RecordBrew(time.Since(start), metrics.BrewStatusInsufficientPayment)
		return model.Purchase{}, fmt.Errorf("paid %s for %s at %s: %w",
			paid.StringFixed(model.PricePlaces), recipe.Name(), recipe.Price().StringFixed(model.PricePlaces),
			model.ErrInsufficientPayment)
	}

	status := s.fulfillLocked(name)
	metrics.RecordBrew(time.Since(start), status)

	result := model.Purchase{Recipe: recipe, Paid: paid}
	if status == metrics.BrewStatusBrewed {
		result.Brewed = true
		result.Change = paid.Sub(recipe.Price())
	} else {
		result.Refund = paid
	}
	return result, nil
}

// InventorySnapshot returns the current stock of every ingredient.
func (s *CoffeeMakerService) InventorySnapshot() model.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory.Snapshot()
}

// Menu returns every recipe with its current availability, in catalog order.
func (s *CoffeeMakerService) Menu() []model.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock := s.inventory.Snapshot()
	recipes := s.catalog.List()
	items := make([]model.MenuItem, len(recipes))
	for i, r := range recipes {
		items[i] = model.MenuItem{Recipe: r, Available: stock.Covers(r.Requirements())}
	}
	return items
}

// Status reports which machine operations are currently possible.
func (s *CoffeeMakerService) Status() model.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock := s.inventory.Snapshot()
	canBrewAny := false
	for _, r := range s.catalog.List() {
		if stock.Covers(r.Requirements()) {
			canBrewAny = true
			break
		}
	}

	n := s.catalog.Len()
	return model.Status{
		Recipes:          n,
		MaxRecipes:       MaxRecipes,
		CanBrewAny:       canBrewAny,
		CanAddRecipe:     !s.catalog.Full(),
		CanEditRecipes:   n > 0,
		CanRemoveRecipes: n > 0,
		Stock:            stock,
	}
}

// canFulfillLocked requires s.mu to be held.
func (s *CoffeeMakerService) canFulfillLocked(name string) bool {
	recipe, ok := s.catalog.Find(name)
	if !ok {
		return false
	}
	return s.inventory.Has(recipe.Requirements())
}

// fulfillLocked requires the write lock. It returns a metrics.BrewStatus* value.
func (s *CoffeeMakerService) fulfillLocked(name string) string {
	recipe, ok := s.catalog.Find(name)
	if !ok {
		log.Debug().Str("recipe", name).Msg("Brew declined: unknown recipe")
		return metrics.BrewStatusUnknownRecipe
	}
	if !s.canFulfillLocked(name) || !s.inventory.Take(recipe.Requirements()) {
		log.Debug().Str("recipe", name).Msg("Brew declined: insufficient stock")
		return metrics.BrewStatusInsufficientStock
	}

	stock := s.inventory.Snapshot()
	metrics.UpdateInventoryLevels(stock)
	log.Info().
		Str("recipe", name).
		Int("coffee", stock[model.Coffee]).
		Int("milk", stock[model.Milk]).
		Int("chocolate", stock[model.Chocolate]).
		Int("sugar", stock[model.Sugar]).
		Msg("Recipe brewed")
	return metrics.BrewStatusBrewed
}

// recordCatalogChange requires s.mu to be held.
func (s *CoffeeMakerService) recordCatalogChange(operation, name string, ok bool) {
	result := "declined"
	if ok {
		result = "ok"
		metrics.UpdateRecipeCount(s.catalog.Len())
		log.Info().Str("recipe", name).Str("operation", operation).Msg("Catalog changed")
	} else {
		log.Debug().Str("recipe", name).Str("operation", operation).Msg("Catalog change declined")
	}
	metrics.RecordCatalogOperation(operation, result)
}
