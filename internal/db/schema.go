package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the products and scanned_data tables.
// Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
    id SERIAL PRIMARY KEY,
    product_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    price INTEGER NOT NULL,
    image_url TEXT NOT NULL,
    specs JSONB NOT NULL DEFAULT '{}'::jsonb
);

-- qr_id is matched against products.product_id at read time; no foreign key.
CREATE TABLE IF NOT EXISTS scanned_data (
    id SERIAL PRIMARY KEY,
    qr_id TEXT NOT NULL,
    scanned_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_scanned_data_qr_id ON scanned_data(qr_id);
`
