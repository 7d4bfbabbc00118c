package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/cli/browse"
	"github.com/thenoetrevino/facetview/internal/cli/catalog"
	"github.com/thenoetrevino/facetview/internal/cli/facets"
	"github.com/thenoetrevino/facetview/internal/cli/render"
	"github.com/thenoetrevino/facetview/internal/cli/styles"
	"github.com/thenoetrevino/facetview/internal/config"
)

// NewRootCmd builds the facetview command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "facetview",
		Short: "Facetview - single-choice search facets in the terminal",
		Long: `Facetview renders single-choice search facets and browses a product
catalog with them. Run without a subcommand to open the browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				slog.Warn("Failed to load config, using default styles", "error", err)
				return
			}
			styles.Init(cfg.ColorScheme)
		},
	}

	rootCmd.AddCommand(render.RenderCmd())
	rootCmd.AddCommand(facets.FacetsCmd())
	rootCmd.AddCommand(browse.BrowseCmd())
	rootCmd.AddCommand(catalog.SeedCmd())

	// The browser is the default action
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		browseCmd, _, err := cmd.Find([]string{"browse"})
		if err != nil {
			return err
		}
		browseCmd.SetContext(cmd.Context())
		return browseCmd.RunE(browseCmd, args)
	}

	return rootCmd
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
