package browse

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/launcher"
)

// BrowseCmd returns the browse command, which launches the TUI
func BrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog with interactive facets",
		Long: `Open the terminal browser. Each facet lists its values with counts;
select a value to filter the results and use Remove to clear it.

The demo catalog is seeded on first launch.`,
		RunE: runBrowse,
	}

	cmd.Flags().String("db", "", "Catalog database path (overrides database_path in config)")

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	return launcher.Launch(cmd.Context(), launcher.Options{DatabasePath: dbPath})
}
