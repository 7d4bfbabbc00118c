package facets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/cli"
	"github.com/thenoetrevino/facetview/internal/cli/handler"
	"github.com/thenoetrevino/facetview/internal/cli/styles"
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/viewhelpers"
)

// FacetsCmd returns the facets command
func FacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the options of a catalog facet",
		Long: `List the options of one catalog facet with their result counts.

Counts honour every filter except the one on the listed field, so they
show what each option would yield if it were selected.

Examples:
  # Brand options across the whole catalog
  facetview facets --field brand

  # Color options among in-stock Nike products
  facetview facets --field color --filter brand=Nike --filter in_stock=true

  # JSON output for agents
  facetview facets --field size --json

  # Quiet mode (one value per line)
  facetview facets --field brand --quiet
`,
		RunE: handler.Command(handler.HandlerFunc(runFacets), validateFlags),
	}

	cmd.Flags().String("field", "", "Facet field: brand, color, size, in_stock (required)")
	cmd.Flags().StringArray("filter", nil, "Active filter as field=value (repeatable)")
	cmd.Flags().String("query", "", "Product name substring")
	cmd.Flags().String("db", "", "Catalog database path")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (values only)")

	return cmd
}

func validateFlags(cmd *cobra.Command) error {
	jsonOutput, quietMode, err := handler.NewFlagParser(cmd).OutputFormats()
	if err != nil {
		return err
	}
	if jsonOutput && quietMode {
		return cli.WithExitCode(cli.ExitUsage, fmt.Errorf("--json and --quiet cannot be combined"))
	}
	return nil
}

// Result lists the options of one facet
type Result struct {
	Field   string
	Label   string
	Filters models.Filters
	Options []models.Option
}

// QuietLines returns the option values, one per line
func (r *Result) QuietLines() []string {
	lines := make([]string, len(r.Options))
	for i, opt := range r.Options {
		lines[i] = viewhelpers.FilterValueDisplay(opt.Value)
	}
	return lines
}

// Human prints a table of values and counts, marking the selected value
func (r *Result) Human() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(r.Label))
	b.WriteString("\n")
	if len(r.Options) == 0 {
		b.WriteString(styles.SubtitleStyle.Render("  No values"))
		return b.String()
	}

	width := 0
	for _, line := range r.QuietLines() {
		width = max(width, len(line))
	}

	for i, opt := range r.Options {
		marker, valueStyle := "  ", styles.ValueStyle
		if opt.Selected {
			marker, valueStyle = "* ", styles.SelectedStyle
		}
		display := viewhelpers.FilterValueDisplay(opt.Value)
		fmt.Fprintf(&b, "%s%s %s", marker,
			valueStyle.Render(fmt.Sprintf("%-*s", width, display)),
			styles.CountStyle.Render(fmt.Sprintf("%d", opt.Count)))
		if i < len(r.Options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// MarshalJSON shapes the JSON output like the other commands' maps
func (r *Result) MarshalJSON() ([]byte, error) {
	options := make([]map[string]any, len(r.Options))
	for i, opt := range r.Options {
		options[i] = map[string]any{
			"value":    opt.Value,
			"display":  viewhelpers.FilterValueDisplay(opt.Value),
			"count":    opt.Count,
			"selected": opt.Selected,
		}
	}
	return json.Marshal(map[string]any{
		"field":   r.Field,
		"label":   r.Label,
		"filters": map[string]models.FieldValue(r.Filters),
		"options": options,
	})
}

func runFacets(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())

	field, err := parser.ParseField("field")
	if err != nil {
		return nil, err
	}
	filters, err := parser.ParseFilters("filter")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.NewCLI(ctx, args.GetString("db", ""))
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	options, err := cliInstance.Repo.FacetOptions(ctx, field, args.GetString("query", ""), filters)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s options: %w", field, err)
	}

	return &Result{
		Field:   field,
		Label:   models.FacetLabels[field],
		Filters: filters,
		Options: options,
	}, nil
}
