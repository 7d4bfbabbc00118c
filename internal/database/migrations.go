package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the catalog schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			brand TEXT NOT NULL,
			color TEXT NOT NULL,
			size TEXT NOT NULL,
			price REAL NOT NULL DEFAULT 0,
			in_stock BOOLEAN NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// One index per facet column keeps GROUP BY counts cheap
	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand)`,
		`CREATE INDEX IF NOT EXISTS idx_products_color ON products(color)`,
		`CREATE INDEX IF NOT EXISTS idx_products_size ON products(size)`,
		`CREATE INDEX IF NOT EXISTS idx_products_in_stock ON products(in_stock)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
