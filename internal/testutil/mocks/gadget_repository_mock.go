package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/gadgetquiz/internal/models"
)

// MockGadgetRepository is a mock implementation of repository.GadgetRepository
type MockGadgetRepository struct {
	mock.Mock
}

func (m *MockGadgetRepository) List(ctx context.Context) ([]models.Gadget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gadget), args.Error(1)
}

func (m *MockGadgetRepository) Get(ctx context.Context, id int64) (*models.Gadget, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gadget), args.Error(1)
}
