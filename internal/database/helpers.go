package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/thenoetrevino/facetview/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// facetColumns maps facet fields to their product columns.
// Only these names are ever interpolated into SQL.
var facetColumns = map[string]string{
	models.FieldBrand:   "brand",
	models.FieldColor:   "color",
	models.FieldSize:    "size",
	models.FieldInStock: "in_stock",
}

func columnFor(field string) (string, error) {
	col, ok := facetColumns[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownField, field)
	}
	return col, nil
}

// toSQLValue normalises a filter value for comparison against field's column.
// Boolean fields accept bools and their common string spellings.
func toSQLValue(field string, value models.FieldValue) (any, error) {
	if field != models.FieldInStock {
		switch v := value.(type) {
		case string:
			return v, nil
		default:
			return fmt.Sprint(v), nil
		}
	}

	switch v := value.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", models.ErrInvalidOption, v)
		}
		return toSQLValue(field, b)
	case int:
		return toSQLValue(field, v != 0)
	default:
		return nil, fmt.Errorf("%w: %v is not a boolean", models.ErrInvalidOption, v)
	}
}

// whereClause builds an AND-joined condition for every filter except skip
func whereClause(filters models.Filters, skip string) (string, []any, error) {
	var conds []string
	var args []any
	for _, field := range filters.Fields() {
		if field == skip {
			continue
		}
		col, err := columnFor(field)
		if err != nil {
			return "", nil, err
		}
		v, err := toSQLValue(field, filters[field])
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, col+" = ?")
		args = append(args, v)
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}
