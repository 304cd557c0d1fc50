package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMaker(t *testing.T, opts ...Option) *CoffeeMakerService {
	t.Helper()
	svc, err := NewCoffeeMakerService(opts...)
	require.NoError(t, err)
	return svc
}

// TestNewCoffeeMakerService tests the constructor and options.
func TestNewCoffeeMakerService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		wantErr  bool
		validate func(*testing.T, *CoffeeMakerService)
	}{
		{
			name: "seeds default stock and cappuccino",
			validate: func(t *testing.T, svc *CoffeeMakerService) {
				assert.Equal(t, model.NewStock(10, 10, 10, 10), svc.InventorySnapshot())
				recipes := svc.ListRecipes()
				require.Len(t, recipes, 1)
				assert.Equal(t, "Cappuccino", recipes[0].Name())
				assert.Equal(t, "2.70", recipes[0].Price().StringFixed(2))
				assert.Equal(t, model.NewStock(2, 3, 0, 1), recipes[0].Requirements())
			},
		},
		{
			name:    "custom initial stock",
			options: []Option{WithInitialStock(model.NewStock(1, 2, 3, 4))},
			validate: func(t *testing.T, svc *CoffeeMakerService) {
				assert.Equal(t, model.NewStock(1, 2, 3, 4), svc.InventorySnapshot())
			},
		},
		{
			name: "custom seed recipe",
			options: []Option{WithSeedRecipe(RecipeSpec{
				Name: "Espresso", Price: decimal.RequireFromString("1.80"), Coffee: 1,
			})},
			validate: func(t *testing.T, svc *CoffeeMakerService) {
				_, ok := svc.FindRecipe("Espresso")
				assert.True(t, ok)
				_, ok = svc.FindRecipe("Cappuccino")
				assert.False(t, ok)
			},
		},
		{
			name:    "negative initial stock fails",
			options: []Option{WithInitialStock(model.NewStock(10, -1, 10, 10))},
			wantErr: true,
		},
		{
			name: "invalid seed price fails",
			options: []Option{WithSeedRecipe(RecipeSpec{
				Name: "Broken", Price: decimal.NewFromInt(-1),
			})},
			wantErr: true,
		},
		{
			name:    "blank seed name fails",
			options: []Option{WithSeedRecipe(RecipeSpec{Name: " ", Price: decimal.NewFromInt(1)})},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewCoffeeMakerService(tt.options...)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrSeedFailed)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

func TestCoffeeMakerService_FulfillDeductsStock(t *testing.T) {
	svc := newTestMaker(t)

	assert.True(t, svc.CanFulfill("Cappuccino"))
	assert.True(t, svc.Fulfill("Cappuccino"))
	assert.Equal(t, model.NewStock(8, 7, 10, 9), svc.InventorySnapshot())
}

func TestCoffeeMakerService_FulfillUntilMilkRunsOut(t *testing.T) {
	svc := newTestMaker(t)

	for i := 0; i < 3; i++ {
		require.True(t, svc.Fulfill("Cappuccino"), "brew %d", i+1)
	}
	before := svc.InventorySnapshot()
	assert.Equal(t, 1, before[model.Milk])

	assert.False(t, svc.CanFulfill("Cappuccino"))
	assert.False(t, svc.Fulfill("Cappuccino"))
	assert.Equal(t, before, svc.InventorySnapshot())
}

func TestCoffeeMakerService_FulfillUnknownRecipe(t *testing.T) {
	svc := newTestMaker(t)

	assert.False(t, svc.CanFulfill("Latte"))
	assert.False(t, svc.Fulfill("Latte"))
	assert.Equal(t, model.NewStock(10, 10, 10, 10), svc.InventorySnapshot())
}

func TestCoffeeMakerService_RecipeCatalog(t *testing.T) {
	svc := newTestMaker(t)

	assert.False(t, svc.AddRecipe(model.MustRecipe("Cappuccino", "1.00", 1, 1, 1, 1)))
	assert.Equal(t, []string{"Cappuccino"}, names(svc.ListRecipes()))
	original, ok := svc.FindRecipe("Cappuccino")
	require.True(t, ok)
	assert.Equal(t, "2.70", original.Price().StringFixed(2))

	for i := 1; i < MaxRecipes; i++ {
		require.True(t, svc.AddRecipe(model.MustRecipe(fmt.Sprintf("Blend %d", i), "2", 1, 0, 0, 0)))
	}
	full := []string{"Cappuccino", "Blend 1", "Blend 2", "Blend 3"}

	assert.False(t, svc.AddRecipe(model.MustRecipe("Extra", "2", 0, 0, 0, 0)))
	assert.Equal(t, full, names(svc.ListRecipes()))
	assert.False(t, svc.Status().CanAddRecipe)

	assert.True(t, svc.UpdateRecipe(model.MustRecipe("Cappuccino", "3.00", 1, 1, 0, 0)))
	r, ok := svc.FindRecipe("Cappuccino")
	require.True(t, ok)
	assert.Equal(t, "3.00", r.Price().StringFixed(2))
	assert.Equal(t, full, names(svc.ListRecipes()))

	assert.False(t, svc.UpdateRecipe(model.MustRecipe("Extra", "2", 0, 0, 0, 0)))
	assert.Equal(t, full, names(svc.ListRecipes()))

	assert.True(t, svc.RemoveRecipe("Blend 1"))
	after := []string{"Cappuccino", "Blend 2", "Blend 3"}
	assert.Equal(t, after, names(svc.ListRecipes()))
	assert.False(t, svc.RemoveRecipe("Blend 1"))
	assert.Equal(t, after, names(svc.ListRecipes()))
}

func TestCoffeeMakerService_InsertRecipeReportsReason(t *testing.T) {
	svc := newTestMaker(t)

	err := svc.InsertRecipe(model.MustRecipe("Cappuccino", "1.00", 1, 1, 1, 1))
	assert.ErrorIs(t, err, model.ErrRecipeExists)

	for i := 1; i < MaxRecipes; i++ {
		require.NoError(t, svc.InsertRecipe(model.MustRecipe(fmt.Sprintf("Blend %d", i), "2", 1, 0, 0, 0)))
	}

	err = svc.InsertRecipe(model.MustRecipe("Extra", "2", 0, 0, 0, 0))
	assert.ErrorIs(t, err, model.ErrCatalogFull)
	err = svc.InsertRecipe(model.MustRecipe("Blend 2", "2", 0, 0, 0, 0))
	assert.ErrorIs(t, err, model.ErrRecipeExists, "a taken name is reported even when the catalog is full")
}

func TestCoffeeMakerService_AddIngredients(t *testing.T) {
	tests := []struct {
		name     string
		amounts  [4]int
		wantErr  bool
		expected model.Stock
	}{
		{name: "adds all four", amounts: [4]int{1, 2, 3, 4}, expected: model.NewStock(11, 12, 13, 14)},
		{name: "zeros are no-op", amounts: [4]int{0, 0, 0, 0}, expected: model.NewStock(10, 10, 10, 10)},
		{name: "negative rejects all", amounts: [4]int{5, 5, -1, 5}, wantErr: true, expected: model.NewStock(10, 10, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestMaker(t)
			a := tt.amounts
			err := svc.AddIngredients(a[0], a[1], a[2], a[3])
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrNegativeAmount)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, svc.InventorySnapshot())
		})
	}
}

func TestCoffeeMakerService_Purchase(t *testing.T) {
	tests := []struct {
		name       string
		stock      model.Stock
		recipe     string
		paid       string
		wantErr    error
		wantBrewed bool
		wantChange string
		wantRefund string
	}{
		{name: "exact change", recipe: "Cappuccino", paid: "5.00", wantBrewed: true, wantChange: "2.30", wantRefund: "0.00"},
		{name: "exact price", recipe: "Cappuccino", paid: "2.70", wantBrewed: true, wantChange: "0.00", wantRefund: "0.00"},
		{name: "out of stock refunds", stock: model.NewStock(0, 0, 0, 0), recipe: "Cappuccino", paid: "3", wantChange: "0.00", wantRefund: "3.00"},
		{name: "underpaid", recipe: "Cappuccino", paid: "2.69", wantErr: model.ErrInsufficientPayment},
		{name: "negative payment", recipe: "Cappuccino", paid: "-1", wantErr: model.ErrInvalidPayment},
		{name: "fraction of a cent", recipe: "Cappuccino", paid: "5.005", wantErr: model.ErrInvalidPayment},
		{name: "trailing zeros are whole cents", recipe: "Cappuccino", paid: "5.000", wantBrewed: true, wantChange: "2.30", wantRefund: "0.00"},
		{name: "unknown recipe", recipe: "Latte", paid: "10", wantErr: model.ErrRecipeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.stock != nil {
				opts = append(opts, WithInitialStock(tt.stock))
			}
			svc := newTestMaker(t, opts...)
			before := svc.InventorySnapshot()

			result, err := svc.Purchase(tt.recipe, decimal.RequireFromString(tt.paid))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, svc.InventorySnapshot())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBrewed, result.Brewed)
			assert.Equal(t, tt.wantChange, result.Change.StringFixed(2))
			assert.Equal(t, tt.wantRefund, result.Refund.StringFixed(2))
			assert.Equal(t, tt.recipe, result.Recipe.Name())
		})
	}
}

func TestCoffeeMakerService_MenuAndStatus(t *testing.T) {
	svc := newTestMaker(t, WithInitialStock(model.NewStock(2, 3, 0, 1)))
	require.True(t, svc.AddRecipe(model.MustRecipe("Mocha", "3.10", 1, 1, 1, 0)))

	menu := svc.Menu()
	require.Len(t, menu, 2)
	assert.Equal(t, "Cappuccino", menu[0].Recipe.Name())
	assert.True(t, menu[0].Available)
	assert.Equal(t, "Mocha", menu[1].Recipe.Name())
	assert.False(t, menu[1].Available)

	status := svc.Status()
	assert.Equal(t, 2, status.Recipes)
	assert.Equal(t, MaxRecipes, status.MaxRecipes)
	assert.True(t, status.CanBrewAny)
	assert.True(t, status.CanAddRecipe)
	assert.True(t, status.CanEditRecipes)
	assert.True(t, status.CanRemoveRecipes)

	require.True(t, svc.Fulfill("Cappuccino"))
	status = svc.Status()
	assert.False(t, status.CanBrewAny)
	assert.Equal(t, model.NewStock(0, 0, 0, 0), status.Stock)

	require.True(t, svc.RemoveRecipe("Cappuccino"))
	require.True(t, svc.RemoveRecipe("Mocha"))
	status = svc.Status()
	assert.False(t, status.CanEditRecipes)
	assert.False(t, status.CanRemoveRecipes)
	assert.Empty(t, svc.Menu())
}

func TestCoffeeMakerService_ConcurrentFulfill(t *testing.T) {
	svc := newTestMaker(t, WithInitialStock(model.NewStock(20, 30, 0, 10)))

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		brewed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if svc.Fulfill("Cappuccino") {
				mu.Lock()
				brewed++
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Status()
			_ = svc.Menu()
		}()
	}
	wg.Wait()

	// 10 brews exhaust both coffee (20/2) and milk (30/3).
	assert.Equal(t, 10, brewed)
	stock := svc.InventorySnapshot()
	assert.Equal(t, model.NewStock(0, 0, 0, 0), stock)
}
