// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockCoffeeMaker struct {
	mock.Mock
}

func (m *MockCoffeeMaker) AddRecipe(r model.Recipe) bool {
	args := m.Called(r)
	return args.Bool(0)
}

func (m *MockCoffeeMaker) InsertRecipe(r model.Recipe) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockCoffeeMaker) RemoveRecipe(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockCoffeeMaker) UpdateRecipe(r model.Recipe) bool {
	args := m.Called(r)
	return args.Bool(0)
}

func (m *MockCoffeeMaker) FindRecipe(name string) (model.Recipe, bool) {
	args := m.Called(name)
	return args.Get(0).(model.Recipe), args.Bool(1)
}

func (m *MockCoffeeMaker) ListRecipes() []model.Recipe {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Recipe)
}

func (m *MockCoffeeMaker) AddIngredients(coffee, milk, chocolate, sugar int) error {
	args := m.Called(coffee, milk, chocolate, sugar)
	return args.Error(0)
}

func (m *MockCoffeeMaker) CanFulfill(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockCoffeeMaker) Fulfill(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockCoffeeMaker) Purchase(name string, paid decimal.Decimal) (model.Purchase, error) {
	args := m.Called(name, paid)
	return args.Get(0).(model.Purchase), args.Error(1)
}

func (m *MockCoffeeMaker) InventorySnapshot() model.Stock {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(model.Stock)
}

func (m *MockCoffeeMaker) Menu() []model.MenuItem {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.MenuItem)
}

func (m *MockCoffeeMaker) Status() model.Status {
	args := m.Called()
	return args.Get(0).(model.Status)
}
