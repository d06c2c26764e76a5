package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PostgresMetricsRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresMetricsRepository(db *sql.DB, timeout time.Duration) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db, timeout: timeout}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM scanned_data),
			(SELECT COUNT(*) FROM scanned_data s
				WHERE NOT EXISTS (SELECT 1 FROM products p WHERE p.product_id = s.qr_id))
	`).Scan(&m.TotalProducts, &m.TotalScans, &m.UnmatchedScans)
	if err != nil {
		return m, fmt.Errorf("failed to count records: %w", err)
	}

	var top MostScannedProduct
	err = r.db.QueryRowContext(ctx, `
		SELECT p.product_id, p.name, COUNT(*) AS cnt
		FROM scanned_data s
		JOIN products p ON s.qr_id = p.product_id
		GROUP BY p.id, p.product_id, p.name
		ORDER BY cnt DESC, p.id ASC
		LIMIT 1
	`).Scan(&top.ProductID, &top.Name, &top.ScanCount)
	if errors.Is(err, sql.ErrNoRows) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("failed to rank products: %w", err)
	}
	m.MostScannedProduct = &top
	return m, nil
}
