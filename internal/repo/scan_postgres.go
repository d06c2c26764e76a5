package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/qr-tracker/internal/models"
)

type PostgresScanRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresScanRepository(db *sql.DB, timeout time.Duration) *PostgresScanRepository {
	return &PostgresScanRepository{db: db, timeout: timeout}
}

// Create inserts a scan event. The database supplies scanned_at when the caller did not.
func (r *PostgresScanRepository) Create(ctx context.Context, s models.ScannedData) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	var row *sql.Row
	if s.ScannedAt.IsZero() {
		row = r.db.QueryRowContext(ctx, `INSERT INTO scanned_data (qr_id) VALUES ($1) RETURNING id, scanned_at`, s.QrID)
	} else {
		row = r.db.QueryRowContext(ctx, `INSERT INTO scanned_data (qr_id, scanned_at) VALUES ($1, $2) RETURNING id, scanned_at`, s.QrID, s.ScannedAt.UTC())
	}
	if err := row.Scan(&s.ID, &s.ScannedAt); err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to insert scanned data: %w", err)
	}
	s.ScannedAt = s.ScannedAt.UTC()
	return s, nil
}

func (r *PostgresScanRepository) GetByID(ctx context.Context, id int) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	s, err := scanScannedData(r.db.QueryRowContext(ctx, `SELECT id, qr_id, scanned_at FROM scanned_data WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScannedData{}, ErrScanNotFound
	}
	return s, err
}

// GetByQrID returns the lowest-id row, i.e. the first scan inserted for qrID.
func (r *PostgresScanRepository) GetByQrID(ctx context.Context, qrID string) (models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, qr_id, scanned_at FROM scanned_data WHERE qr_id = $1 ORDER BY id LIMIT 1`
	s, err := scanScannedData(r.db.QueryRowContext(ctx, query, qrID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScannedData{}, ErrScanNotFound
	}
	return s, err
}

func (r *PostgresScanRepository) GetAll(ctx context.Context) ([]models.ScannedData, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, qr_id, scanned_at FROM scanned_data ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scanned data: %w", err)
	}
	defer rows.Close()

	scans := []models.ScannedData{}
	for rows.Next() {
		s, err := scanScannedData(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scanned data: %w", err)
	}
	return scans, nil
}

func scanScannedData(row rowScanner) (models.ScannedData, error) {
	var s models.ScannedData
	err := row.Scan(&s.ID, &s.QrID, &s.ScannedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScannedData{}, err
	}
	if err != nil {
		return models.ScannedData{}, fmt.Errorf("failed to scan scanned data: %w", err)
	}
	s.ScannedAt = s.ScannedAt.UTC()
	return s, nil
}
