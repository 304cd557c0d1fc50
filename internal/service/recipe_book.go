package service

import (
	"fmt"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
)

// MaxRecipes is the capacity of a RecipeBook.
const MaxRecipes = 4

// RecipeBook is the bounded, name-keyed catalog of recipes a machine can sell.
// Entries keep their insertion order; no two entries share a name.
//
// RecipeBook is not safe for concurrent use on its own. CoffeeMakerService
// serializes access to it together with the inventory.
type RecipeBook struct {
	recipes []model.Recipe
	index   map[string]int
}

// NewRecipeBook creates an empty catalog.
func NewRecipeBook() *RecipeBook {
	return &RecipeBook{
		recipes: make([]model.Recipe, 0, MaxRecipes),
		index:   make(map[string]int, MaxRecipes),
	}
}

// Add appends a recipe. It returns false if the name is taken or the book is full.
func (b *RecipeBook) Add(r model.Recipe) bool {
	return b.Insert(r) == nil
}

// Insert appends a recipe, reporting model.ErrRecipeExists or
// model.ErrCatalogFull when it declines. A taken name wins over a full book.
func (b *RecipeBook) Insert(r model.Recipe) error {
	if r.IsZero() {
		return model.ErrInvalidName
	}
	if _, exists := b.index[r.Name()]; exists {
		return fmt.Errorf("%q: %w", r.Name(), model.ErrRecipeExists)
	}
	if len(b.recipes) >= MaxRecipes {
		return fmt.Errorf("%d recipes: %w", MaxRecipes, model.ErrCatalogFull)
	}
	b.index[r.Name()] = len(b.recipes)
	b.recipes = append(b.recipes, r)
	return nil
}

// Remove deletes the recipe with the given name, keeping the order of the rest.
func (b *RecipeBook) Remove(name string) bool {
	pos, ok := b.index[name]
	if !ok {
		return false
	}

	b.recipes = append(b.recipes[:pos], b.recipes[pos+1:]...)
	delete(b.index, name)
	for i := pos; i < len(b.recipes); i++ {
		b.index[b.recipes[i].Name()] = i
	}
	return true
}

// Update replaces the entry whose name matches r, in place. It never inserts.
func (b *RecipeBook) Update(r model.Recipe) bool {
	pos, ok := b.index[r.Name()]
	if !ok {
		return false
	}
	b.recipes[pos] = r
	return true
}

// Find looks a recipe up by name.
func (b *RecipeBook) Find(name string) (model.Recipe, bool) {
	pos, ok := b.index[name]
	if !ok {
		return model.Recipe{}, false
	}
	return b.recipes[pos], true
}

// List returns a copy of the catalog in insertion order.
func (b *RecipeBook) List() []model.Recipe {
	out := make([]model.Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Len returns the number of recipes.
func (b *RecipeBook) Len() int {
	return len(b.recipes)
}

// Full reports whether the book is at capacity.
func (b *RecipeBook) Full() bool {
	return len(b.recipes) >= MaxRecipes
}
