package service

import (
	"fmt"
	"testing"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(recipes []model.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name()
	}
	return out
}

func TestRecipeBook_Add(t *testing.T) {
	book := NewRecipeBook()

	assert.True(t, book.Add(model.MustRecipe("Cappuccino", "2.70", 2, 3, 0, 1)))
	assert.False(t, book.Add(model.MustRecipe("Cappuccino", "9.99", 1, 1, 1, 1)), "duplicate name")
	assert.False(t, book.Add(model.Recipe{}), "zero recipe")
	assert.Equal(t, []string{"Cappuccino"}, names(book.List()))

	for i := 1; i < MaxRecipes; i++ {
		require.True(t, book.Add(model.MustRecipe(fmt.Sprintf("R%d", i), "1", 1, 0, 0, 0)))
	}
	assert.True(t, book.Full())
	assert.False(t, book.Add(model.MustRecipe("Overflow", "1", 0, 0, 0, 0)))
	assert.Equal(t, MaxRecipes, book.Len())
	assert.Equal(t, []string{"Cappuccino", "R1", "R2", "R3"}, names(book.List()))

	r, ok := book.Find("Cappuccino")
	require.True(t, ok)
	assert.Equal(t, "2.70", r.Price().StringFixed(2))
}

func TestRecipeBook_Insert(t *testing.T) {
	book := NewRecipeBook()

	require.NoError(t, book.Insert(model.MustRecipe("Cappuccino", "2.70", 2, 3, 0, 1)))
	assert.ErrorIs(t, book.Insert(model.MustRecipe("Cappuccino", "1", 0, 0, 0, 0)), model.ErrRecipeExists)
	assert.ErrorIs(t, book.Insert(model.Recipe{}), model.ErrInvalidName)

	for _, n := range []string{"A", "B", "C"} {
		require.NoError(t, book.Insert(model.MustRecipe(n, "1", 0, 0, 0, 0)))
	}
	assert.ErrorIs(t, book.Insert(model.MustRecipe("D", "1", 0, 0, 0, 0)), model.ErrCatalogFull)
	assert.ErrorIs(t, book.Insert(model.MustRecipe("A", "1", 0, 0, 0, 0)), model.ErrRecipeExists)
	assert.Equal(t, []string{"Cappuccino", "A", "B", "C"}, names(book.List()))
}

func TestRecipeBook_RemoveKeepsOrder(t *testing.T) {
	book := NewRecipeBook()
	for _, n := range []string{"A", "B", "C", "D"} {
		require.True(t, book.Add(model.MustRecipe(n, "1", 0, 0, 0, 0)))
	}

	assert.True(t, book.Remove("B"))
	assert.Equal(t, []string{"A", "C", "D"}, names(book.List()))
	assert.False(t, book.Remove("B"))
	assert.Equal(t, []string{"A", "C", "D"}, names(book.List()))

	_, ok := book.Find("B")
	assert.False(t, ok)
	d, ok := book.Find("D")
	require.True(t, ok)
	assert.Equal(t, "D", d.Name())

	assert.True(t, book.Add(model.MustRecipe("E", "1", 0, 0, 0, 0)))
	assert.Equal(t, []string{"A", "C", "D", "E"}, names(book.List()))
}

func TestRecipeBook_Update(t *testing.T) {
	book := NewRecipeBook()
	require.True(t, book.Add(model.MustRecipe("A", "1", 0, 0, 0, 0)))
	require.True(t, book.Add(model.MustRecipe("B", "1", 0, 0, 0, 0)))

	assert.True(t, book.Update(model.MustRecipe("A", "3.10", 4, 0, 0, 0)))
	assert.False(t, book.Update(model.MustRecipe("Z", "1", 0, 0, 0, 0)), "update never inserts")

	assert.Equal(t, []string{"A", "B"}, names(book.List()))
	a, _ := book.Find("A")
	assert.Equal(t, 4, a.AmountCoffee())
	assert.Equal(t, 2, book.Len())
}

func TestRecipeBook_ListIsCopy(t *testing.T) {
	book := NewRecipeBook()
	require.True(t, book.Add(model.MustRecipe("A", "1", 0, 0, 0, 0)))

	list := book.List()
	list[0] = model.MustRecipe("Hacked", "0", 0, 0, 0, 0)

	assert.Equal(t, []string{"A"}, names(book.List()))
}
