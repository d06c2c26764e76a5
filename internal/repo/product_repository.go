package repo

import (
	"context"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

// ProductRepository defines the interface for product catalog operations.
// The catalog is append-only: there is no update or delete.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetByProductID(ctx context.Context, productID string) (models.Product, error)
	// GetMany resolves several business keys at once. Keys with no product are
	// absent from the returned map; that is not an error.
	GetMany(ctx context.Context, productIDs []string) (map[string]models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
}
