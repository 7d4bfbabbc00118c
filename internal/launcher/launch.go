package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/facetview/internal/config"
	"github.com/thenoetrevino/facetview/internal/database"
	"github.com/thenoetrevino/facetview/internal/tui"
)

// Options configures a browser launch
type Options struct {
	// DatabasePath overrides the configured catalog path when set
	DatabasePath string

	// ProgramOptions are passed through to the bubbletea program
	ProgramOptions []tea.ProgramOption
}

// Launch opens the catalog, seeds it on first use and runs the browser
// until it quits or ctx is cancelled.
func Launch(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}

	dbPath := opts.DatabasePath
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	repo := database.NewRepository(db)
	if inserted, err := repo.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	} else if inserted > 0 {
		slog.Info("seeded demo catalog", "products", inserted)
	}

	model := tui.InitialModel(ctx, repo, cfg)
	programOpts := append([]tea.ProgramOption{tea.WithContext(ctx)}, opts.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give the program a moment to restore the terminal
		select {
		case <-errChan:
		case <-time.After(time.Second):
		}
	}

	return nil
}
