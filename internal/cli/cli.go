package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/facetview/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	Repo *database.Repository
	db   *sql.DB
	ctx  context.Context
}

// NewCLI opens the catalog at dbPath; an empty path uses the default location
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		Repo: database.NewRepository(db),
		db:   db,
		ctx:  ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.db.Close()
}
