package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/facetview/internal/cli"
	"github.com/thenoetrevino/facetview/internal/cli/handler"
	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/markup"
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/tui/components"
	"github.com/thenoetrevino/facetview/internal/viewhelpers"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

// RenderCmd returns the render command
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single-choice facet from flags",
		Long: `Render one single-choice facet from options given on the command line.

Options use the form value=count, with a :selected suffix marking the
current selection. The first selected option collapses the facet into
its selected form; otherwise every option is listed.

Examples:
  # List mode
  facetview render --label Brand --option Nike=5 --option Puma=2

  # Selected mode as HTML
  facetview render --label Brand --option Nike=5:selected --format html

  # Activate the first link and report which callback fired
  facetview render --label Brand --option Nike=5 --activate 1 --json
`,
		RunE: handler.Command(handler.HandlerFunc(runRender), validateFlags),
	}

	cmd.Flags().String("label", "", "Facet title (required)")
	cmd.Flags().String("class", "", "Extra class name for the root container")
	cmd.Flags().StringArray("option", nil, "Option as value=count[:selected] (repeatable)")
	cmd.Flags().String("format", FormatText, "Output format: text or html")
	cmd.Flags().Int("activate", 0, "Activate the Nth link (1-based) after rendering")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func validateFlags(cmd *cobra.Command) error {
	activate, err := handler.NewFlagParser(cmd).ParseIntOptional("activate")
	if err != nil {
		return err
	}
	if activate < 0 {
		return cli.WithExitCode(cli.ExitUsage, fmt.Errorf("activate must not be negative"))
	}
	return nil
}

// Activation records one activation of a rendered link
type Activation struct {
	Index            int
	Link             string
	Callback         string
	Value            models.FieldValue
	DefaultPrevented bool
}

// Result is the outcome of the render command
type Result struct {
	Format     string
	Markup     string
	Mode       facet.Mode
	Activation *Activation
}

// Human prints the rendered facet followed by the activation, if any
func (r *Result) Human() string {
	if r.Activation == nil {
		return r.Markup
	}
	a := r.Activation
	return fmt.Sprintf("%s\n\nactivated #%d %q: %s(%s), default prevented: %t",
		r.Markup, a.Index, a.Link, a.Callback,
		viewhelpers.FilterValueDisplay(a.Value), a.DefaultPrevented)
}

// MarshalJSON shapes the JSON output like the other commands' maps
func (r *Result) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"format": r.Format,
		"markup": ansi.Strip(r.Markup),
		"mode":   r.Mode.Kind.String(),
	}
	if r.Mode.Kind == facet.ModeSelected {
		out["selected"] = r.Mode.Value
	}
	if a := r.Activation; a != nil {
		out["activation"] = map[string]any{
			"index":             a.Index,
			"link":              a.Link,
			"callback":          a.Callback,
			"value":             a.Value,
			"default_prevented": a.DefaultPrevented,
		}
	}
	return json.Marshal(out)
}

func runRender(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())

	label, err := parser.ParseString("label")
	if err != nil {
		return nil, err
	}
	options, err := parser.ParseOptions("option")
	if err != nil {
		return nil, err
	}
	format, err := parser.ParseChoice("format", FormatText, FormatHTML)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Format: format,
		Mode:   facet.ComputeMode(options),
	}

	var fired *Activation
	record := func(name string) func(models.FieldValue) {
		return func(v models.FieldValue) {
			if fired != nil {
				fired.Callback = name
				fired.Value = v
			}
		}
	}

	tree := facet.SingleLinks(facet.Props{
		ClassName: args.GetString("class", ""),
		Label:     label,
		Options:   options,
		OnSelect:  record("select"),
		OnRemove:  record("remove"),
	})

	result.Markup, err = Markup(tree, format)
	if err != nil {
		return nil, err
	}

	if n := args.GetInt("activate", 0); n > 0 {
		affordances := tree.Affordances()
		if n > len(affordances) {
			return nil, cli.WithExitCode(cli.ExitNotFound,
				fmt.Errorf("no link #%d (facet has %d)", n, len(affordances)))
		}
		link := affordances[n-1]
		fired = &Activation{Index: n, Link: link.TextContent()}

		ev := markup.NewEvent()
		if err := link.Activate(ev); err != nil {
			return nil, err
		}
		fired.DefaultPrevented = ev.DefaultPrevented()
		result.Activation = fired
	}

	return result, nil
}

// Markup serialises a facet tree in the given format
func Markup(tree *markup.Node, format string) (string, error) {
	switch format {
	case FormatHTML:
		var buf bytes.Buffer
		if err := markup.RenderHTML(&buf, tree); err != nil {
			return "", fmt.Errorf("failed to render html: %w", err)
		}
		return buf.String(), nil
	default:
		return strings.TrimRight(components.RenderFacetBody(components.FacetProps{Tree: tree}), "\n"), nil
	}
}
