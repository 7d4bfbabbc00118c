package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/cli"
	"github.com/thenoetrevino/facetview/internal/cli/handler"
	"github.com/thenoetrevino/facetview/internal/cli/styles"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the catalog with demo products",
		Long: `Insert the demo product catalog. Does nothing if the catalog already has products.

Examples:
  facetview seed
  facetview seed --db ./catalog.db --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runSeed)),
	}

	cmd.Flags().String("db", "", "Catalog database path")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (inserted count only)")

	return cmd
}

// SeedResult reports how many products were inserted and how many exist
type SeedResult struct {
	Inserted int `json:"inserted"`
	Total    int `json:"total"`
}

// GetID returns the inserted count for quiet mode
func (r *SeedResult) GetID() int {
	return r.Inserted
}

// Human summarises the seed run
func (r *SeedResult) Human() string {
	if r.Inserted == 0 {
		return styles.SubtitleStyle.Render(fmt.Sprintf("Catalog already has %d products, nothing to seed", r.Total))
	}
	return styles.SuccessStyle.Render(fmt.Sprintf("✓ Seeded %d products", r.Inserted))
}

func runSeed(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.NewCLI(ctx, args.GetString("db", ""))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	inserted, err := cliInstance.Repo.Seed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed catalog: %w", err)
	}
	total, err := cliInstance.Repo.CountProducts(ctx, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	slog.Info("Catalog seeded", "inserted", inserted, "total", total)
	return &SeedResult{Inserted: inserted, Total: total}, nil
}
