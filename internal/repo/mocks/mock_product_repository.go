package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByProductID(ctx context.Context, productID string) (models.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProductRepository) GetMany(ctx context.Context, productIDs []string) (map[string]models.Product, error) {
	args := m.Called(ctx, productIDs)
	if res := args.Get(0); res != nil {
		return res.(map[string]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
