package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

type MockScanRepository struct {
	mock.Mock
}

func (m *MockScanRepository) Create(ctx context.Context, s models.ScannedData) (models.ScannedData, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(models.ScannedData), args.Error(1)
}

func (m *MockScanRepository) GetByID(ctx context.Context, id int) (models.ScannedData, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ScannedData), args.Error(1)
}

func (m *MockScanRepository) GetByQrID(ctx context.Context, qrID string) (models.ScannedData, error) {
	args := m.Called(ctx, qrID)
	return args.Get(0).(models.ScannedData), args.Error(1)
}

func (m *MockScanRepository) GetAll(ctx context.Context) ([]models.ScannedData, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.ScannedData), args.Error(1)
	}
	return nil, args.Error(1)
}
