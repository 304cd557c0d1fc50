// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockEventsRepository struct {
	mock.Mock
}

func (m *MockEventsRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventsRepository) CreateMany(ctx context.Context, events []*model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventsRepository) Query(ctx context.Context, q model.EventQuery) ([]*model.Event, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *MockEventsRepository) Count(ctx context.Context, q model.EventQuery) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}
