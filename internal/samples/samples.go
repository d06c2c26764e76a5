// Package samples holds the demo catalog that the sample-QR gallery prints.
package samples

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
	"github.com/rogerio-castellano/qr-tracker/internal/repo"
)

// Products returns a fresh copy of the demo catalog.
func Products() []models.Product {
	return []models.Product{
		{
			ProductID: "MS-PRODUCT-001",
			Name:      "Surface Laptop 4",
			Category:  "Computers",
			Price:     99999,
			ImageURL:  "https://placehold.co/400x300?text=Surface+Laptop+4",
			Specs: models.Specs{
				"processor": "AMD Ryzen 5",
				"ram":       "8GB",
				"storage":   "256GB SSD",
			},
		},
		{
			ProductID: "MS-PRODUCT-002",
			Name:      "Xbox Series X",
			Category:  "Gaming",
			Price:     49999,
			ImageURL:  "https://placehold.co/400x300?text=Xbox+Series+X",
			Specs: models.Specs{
				"storage":    "1TB SSD",
				"resolution": "4K",
				"features":   []any{"Ray Tracing", "Quick Resume"},
			},
		},
		{
			ProductID: "MS-PRODUCT-003",
			Name:      "Microsoft 365",
			Category:  "Software",
			Price:     6999,
			ImageURL:  "https://placehold.co/400x300?text=Microsoft+365",
			Specs: models.Specs{
				"subscription": map[string]any{
					"type":     "Annual",
					"includes": []any{"Word", "Excel", "PowerPoint", "Teams"},
				},
			},
		},
	}
}

// Seed stores every sample product that is not already in the catalog and returns
// how many were created.
func Seed(ctx context.Context, products repo.ProductRepository) (int, error) {
	created := 0
	for _, p := range Products() {
		_, err := products.Create(ctx, p)
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed %s: %w", p.ProductID, err)
		}
		created++
	}
	return created, nil
}
