package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/facetview/internal/models"
	"github.com/thenoetrevino/facetview/internal/tui/state"
	"github.com/thenoetrevino/facetview/internal/tui/theme"
	"github.com/thenoetrevino/facetview/internal/viewhelpers"
)

type StatusBarProps struct {
	Width        int
	ResultCount  int
	Filters      models.Filters
	Notification *state.Notification
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: result count and active filters
// Right side: latest notification, or "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := fmt.Sprintf("%d results", props.ResultCount)
	if summary := FilterSummary(props.Filters); summary != "" {
		leftText += " · " + summary
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	leftRendered := style.Render(leftText)

	rightRendered := style.Render("press ? for help")
	if n := props.Notification; n != nil {
		fg, bg := theme.InfoFg, theme.InfoBg
		if n.Level == state.LevelError {
			fg, bg = theme.ErrorFg, theme.ErrorBg
		}
		rightRendered = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)).
			Background(lipgloss.Color(bg)).
			Padding(0, 1).
			Render(n.Message)
	}

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}

// FilterSummary renders active filters as "Brand: Nike, Color: Red"
func FilterSummary(filters models.Filters) string {
	parts := make([]string, 0, len(filters))
	for _, field := range filters.Fields() {
		label := models.FacetLabels[field]
		if label == "" {
			label = field
		}
		parts = append(parts, label+": "+viewhelpers.FilterValueDisplay(filters[field]))
	}
	return strings.Join(parts, ", ")
}
