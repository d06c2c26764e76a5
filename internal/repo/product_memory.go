package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// Its contents live as long as the process.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(_ context.Context, product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ProductID == product.ProductID {
			return models.Product{}, ErrDuplicatedValueUnique
		}
	}

	product.ID = r.nextID
	product.Specs = copySpecs(product.Specs)
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetByProductID retrieves a product by its business key.
func (r *InMemoryProductRepository) GetByProductID(_ context.Context, productID string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// GetMany retrieves every product whose business key is in productIDs.
func (r *InMemoryProductRepository) GetMany(_ context.Context, productIDs []string) (map[string]models.Product, error) {
	wanted := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]models.Product, len(wanted))
	for _, p := range r.products {
		if _, ok := wanted[p.ProductID]; ok {
			found[p.ProductID] = p
		}
	}
	return found, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Clear drops every product and restarts id assignment.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = []models.Product{}
	r.nextID = 1
}

func copySpecs(s models.Specs) models.Specs {
	out := make(models.Specs, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
