package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

const productColumns = `id, product_id, name, category, price, image_url, specs`

type PostgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresProductRepository(db *sql.DB, timeout time.Duration) *PostgresProductRepository {
	return &PostgresProductRepository{db: db, timeout: timeout}
}

func (r *PostgresProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	query := `INSERT INTO products (product_id, name, category, price, image_url, specs) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	if p.Specs == nil {
		p.Specs = models.Specs{}
	}
	err := r.db.QueryRowContext(ctx, query, p.ProductID, p.Name, p.Category, p.Price, p.ImageURL, p.Specs).Scan(&p.ID)
	if isUniqueViolation(err) {
		return models.Product{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresProductRepository) GetByProductID(ctx context.Context, productID string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) GetMany(ctx context.Context, productIDs []string) (map[string]models.Product, error) {
	found := make(map[string]models.Product, len(productIDs))
	if len(productIDs) == 0 {
		return found, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1)`
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		found[p.ProductID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return found, nil
}

func (r *PostgresProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.ProductID, &p.Name, &p.Category, &p.Price, &p.ImageURL, &p.Specs)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, err
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to scan product: %w", err)
	}
	return p, nil
}
