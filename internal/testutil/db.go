package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/facetview/internal/database"
	"github.com/thenoetrevino/facetview/internal/models"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory catalog with full schema and no products
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupSeededRepo creates an in-memory catalog filled with the demo products
func SetupSeededRepo(t *testing.T) *database.Repository {
	t.Helper()
	repo := database.NewRepository(SetupTestDB(t))
	if _, err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return repo
}

// CreateTestProduct inserts a product and returns its ID
func CreateTestProduct(t *testing.T, db *sql.DB, p models.Product) int {
	t.Helper()
	created, err := database.NewRepository(db).CreateProduct(context.Background(), &p)
	if err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return created.ID
}

// SeededDBPath creates a seeded catalog file in a temp dir and returns its path.
// Use it for commands that open the catalog themselves.
func SeededDBPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	defer db.Close()
	if _, err := database.NewRepository(db).Seed(context.Background()); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return path
}
