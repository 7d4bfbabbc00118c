package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/facetview/internal/models"
)

// ProductRepo reads and writes the products table
type ProductRepo struct {
	db *sql.DB
}

// ============================================================================
// Facet Operations
// ============================================================================

// FacetOptions returns the options of a facet field with their result counts.
// Counts honour the text query and every active filter except field's own, so
// the listed alternatives show what switching the selection would yield.
// Options are ordered by count descending, then value.
// The option equal to filters[field] is marked selected; if no product carries
// it any more it is still returned, with a zero count, so the facet stays in
// selected mode while its filter is active.
func (r *ProductRepo) FacetOptions(ctx context.Context, field, query string, filters models.Filters) ([]models.Option, error) {
	col, err := columnFor(field)
	if err != nil {
		return nil, err
	}

	where, args, err := searchClause(query, filters, field)
	if err != nil {
		return nil, err
	}

	var selected any
	current, hasSelection := filters[field]
	if hasSelection {
		if selected, err = toSQLValue(field, current); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %[1]s, COUNT(*) FROM products%[2]s GROUP BY %[1]s ORDER BY COUNT(*) DESC, %[1]s ASC`, col, where),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s facet: %w", field, err)
	}
	defer rows.Close()

	var options []models.Option
	found := false
	for rows.Next() {
		var opt models.Option
		var key any
		if field == models.FieldInStock {
			var n int64
			if err := rows.Scan(&n, &opt.Count); err != nil {
				return nil, err
			}
			opt.Value = n != 0
			key = int(n)
		} else {
			var s string
			if err := rows.Scan(&s, &opt.Count); err != nil {
				return nil, err
			}
			opt.Value = s
			key = s
		}
		if hasSelection && key == selected {
			opt.Selected = true
			found = true
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if hasSelection && !found {
		value := current
		if field == models.FieldInStock {
			value = selected == 1
		}
		options = append([]models.Option{{Value: value, Count: 0, Selected: true}}, options...)
	}

	return options, nil
}

// ============================================================================
// Search Operations
// ============================================================================

// Search returns the products matching the query and every filter, ordered by name
func (r *ProductRepo) Search(ctx context.Context, query string, filters models.Filters) ([]*models.Product, error) {
	where, args, err := searchClause(query, filters, "")
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, brand, color, size, price, in_stock FROM products`+where+` ORDER BY name, id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		p := &models.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Color, &p.Size, &p.Price, &p.InStock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// CountProducts returns how many products match the query and every filter
func (r *ProductRepo) CountProducts(ctx context.Context, query string, filters models.Filters) (int, error) {
	where, args, err := searchClause(query, filters, "")
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// searchClause combines the filter conditions with a case-insensitive name match
func searchClause(query string, filters models.Filters, skip string) (string, []any, error) {
	where, args, err := whereClause(filters, skip)
	if err != nil {
		return "", nil, err
	}
	if query == "" {
		return where, args, nil
	}
	if where == "" {
		where = " WHERE "
	} else {
		where += " AND "
	}
	return where + "name LIKE ?", append(args, "%"+query+"%"), nil
}

// ============================================================================
// Write Operations
// ============================================================================

// CreateProduct inserts a product and returns it with its assigned ID
func (r *ProductRepo) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO products (name, brand, color, size, price, in_stock) VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.Brand, p.Color, p.Size, p.Price, p.InStock,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = int(id)
	return &created, nil
}

// Seed inserts the demo catalog when the products table is empty.
// It returns the number of products inserted, zero if the catalog already had data.
func (r *ProductRepo) Seed(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := SeedProducts()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO products (name, brand, color, size, price, in_stock) VALUES (?, ?, ?, ?, ?, ?)`,
		)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, p := range products {
			if _, err := stmt.ExecContext(ctx, p.Name, p.Brand, p.Color, p.Size, p.Price, p.InStock); err != nil {
				return fmt.Errorf("failed to seed %q: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(products), nil
}
