// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/coffeemaker-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) Record(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventService) RecordBatch(ctx context.Context, events []*model.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventService) Query(ctx context.Context, q model.EventQuery) (model.EventPage, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(model.EventPage), args.Error(1)
}
