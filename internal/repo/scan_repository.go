package repo

import (
	"context"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

// ScanRepository defines the interface for the scan event log.
type ScanRepository interface {
	// Create stores the event. A zero ScannedAt is replaced with the current time.
	Create(ctx context.Context, scan models.ScannedData) (models.ScannedData, error)
	GetByID(ctx context.Context, id int) (models.ScannedData, error)
	// GetByQrID returns the earliest stored event for qrID.
	GetByQrID(ctx context.Context, qrID string) (models.ScannedData, error)
	GetAll(ctx context.Context) ([]models.ScannedData, error)
}
