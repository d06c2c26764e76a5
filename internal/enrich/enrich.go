// Package enrich attaches catalog products to scan events.
package enrich

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

// DefaultBatchSize bounds how many product keys go into one GetMany call.
const DefaultBatchSize = 100

// ProductNotFoundError reports a scan whose qrId matches no catalog entry.
// It matches repo.ErrProductNotFound and repo.ErrNotFound under errors.Is.
type ProductNotFoundError struct {
	QrID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product not found for qrId %q", e.QrID)
}

func (e *ProductNotFoundError) Unwrap() error {
	return repo.ErrProductNotFound
}

// Service resolves scan events against the product catalog.
type Service struct {
	products  repo.ProductRepository
	batchSize int
}

func NewService(products repo.ProductRepository, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{products: products, batchSize: batchSize}
}

// EnrichOne pairs scan with the product whose productId equals scan.QrID.
func (s *Service) EnrichOne(ctx context.Context, scan models.ScannedData) (models.ScannedDataWithProduct, error) {
	product, err := s.products.GetByProductID(ctx, scan.QrID)
	if errors.Is(err, repo.ErrProductNotFound) {
		return models.ScannedDataWithProduct{}, &ProductNotFoundError{QrID: scan.QrID}
	}
	if err != nil {
		return models.ScannedDataWithProduct{}, fmt.Errorf("failed to fetch product %q: %w", scan.QrID, err)
	}
	return models.ScannedDataWithProduct{ScannedData: scan, Product: product}, nil
}

// EnrichAll enriches every scan and returns the views in input order.
// Product keys are deduplicated and fetched in concurrent batches. If any scan has
// no product, the first such scan in input order fails the whole call.
func (s *Service) EnrichAll(ctx context.Context, scans []models.ScannedData) ([]models.ScannedDataWithProduct, error) {
	out := make([]models.ScannedDataWithProduct, 0, len(scans))
	if len(scans) == 0 {
		return out, nil
	}

	products, err := s.fetch(ctx, uniqueQrIDs(scans))
	if err != nil {
		return nil, err
	}

	for _, scan := range scans {
		p, ok := products[scan.QrID]
		if !ok {
			return nil, &ProductNotFoundError{QrID: scan.QrID}
		}
		out = append(out, models.ScannedDataWithProduct{ScannedData: scan, Product: p})
	}
	return out, nil
}

// fetch resolves keys batch by batch in parallel. The first store error cancels the rest.
func (s *Service) fetch(ctx context.Context, keys []string) (map[string]models.Product, error) {
	var (
		mu    sync.Mutex
		found = make(map[string]models.Product, len(keys))
	)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(keys); start += s.batchSize {
		batch := keys[start:min(start+s.batchSize, len(keys))]
		g.Go(func() error {
			got, err := s.products.GetMany(gctx, batch)
			if err != nil {
				return fmt.Errorf("failed to fetch products: %w", err)
			}
			mu.Lock()
			for k, p := range got {
				found[k] = p
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return found, nil
}

func uniqueQrIDs(scans []models.ScannedData) []string {
	seen := make(map[string]struct{}, len(scans))
	keys := make([]string, 0, len(scans))
	for _, s := range scans {
		if _, ok := seen[s.QrID]; ok {
			continue
		}
		seen[s.QrID] = struct{}{}
		keys = append(keys, s.QrID)
	}
	return keys
}
