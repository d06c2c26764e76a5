package repo

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

// InMemoryScanRepository keeps scan events in insertion order for the life of the process.
type InMemoryScanRepository struct {
	mu    sync.RWMutex
	scans []models.ScannedData
	now   func() time.Time
}

func NewInMemoryScanRepository() *InMemoryScanRepository {
	return &InMemoryScanRepository{
		scans: []models.ScannedData{},
		now:   time.Now,
	}
}

// Create appends a scan event, assigning the next id.
func (r *InMemoryScanRepository) Create(_ context.Context, scan models.ScannedData) (models.ScannedData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scan.ID = len(r.scans) + 1
	if scan.ScannedAt.IsZero() {
		scan.ScannedAt = r.now()
	}
	scan.ScannedAt = scan.ScannedAt.UTC()
	r.scans = append(r.scans, scan)
	return scan, nil
}

func (r *InMemoryScanRepository) GetByID(_ context.Context, id int) (models.ScannedData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id < 1 || id > len(r.scans) {
		return models.ScannedData{}, ErrScanNotFound
	}
	return r.scans[id-1], nil
}

func (r *InMemoryScanRepository) GetByQrID(_ context.Context, qrID string) (models.ScannedData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.scans {
		if s.QrID == qrID {
			return s, nil
		}
	}
	return models.ScannedData{}, ErrScanNotFound
}

func (r *InMemoryScanRepository) GetAll(_ context.Context) ([]models.ScannedData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ScannedData, len(r.scans))
	copy(out, r.scans)
	return out, nil
}

// Clear drops every scan event.
func (r *InMemoryScanRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.scans = []models.ScannedData{}
}
