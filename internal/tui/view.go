package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/facetview/internal/tui/components"
	"github.com/thenoetrevino/facetview/internal/tui/layers"
	"github.com/thenoetrevino/facetview/internal/tui/state"
	"github.com/thenoetrevino/facetview/internal/tui/theme"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true                                   // Use alternate screen buffer
	view.BackgroundColor = lipgloss.Color(theme.Background) // Set root background color

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.viewBrowser()),
	}
	if m.UiState.Mode() == state.HelpMode {
		help := components.RenderHelp(m.Config.KeyMappings, min(m.UiState.Width()-4, 72))
		if helpLayer := layers.CreateCenteredLayer(help, m.UiState.Width(), m.UiState.Height()); helpLayer != nil {
			layerStack = append(layerStack, helpLayer)
		}
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBrowser lays out the query line, the facet panels, the results pane
// and the status bar.
func (m Model) viewBrowser() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewQuery(),
		m.viewFacets(),
		m.ResultsViewport.View(),
		m.viewStatusBar(),
	)
}

func (m Model) viewQuery() string {
	if m.UiState.Mode() == state.SearchMode {
		return m.QueryInput.View()
	}
	if q := m.FacetState.Query(); q != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).Render("/ " + q)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(m.QueryInput.Placeholder)
}

func (m Model) viewFacets() string {
	panels := m.FacetState.Panels()
	if len(panels) == 0 {
		return ""
	}

	focused := m.FacetState.FocusedAffordance()
	panelWidth := layers.PanelWidth(m.UiState.Width(), len(panels))

	rendered := make([]string, 0, len(panels))
	for i, panel := range panels {
		active := i == m.FacetState.PanelCursor()
		props := components.FacetProps{
			Tree:   panel.Tree,
			Active: active,
			Width:  panelWidth,
		}
		if active {
			props.Focused = focused
		}
		rendered = append(rendered, components.RenderFacet(props))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{
		Width:       m.UiState.Width(),
		ResultCount: m.ResultCount,
		Filters:     m.FacetState.Filters(),
	}
	if n, ok := m.NotificationState.Latest(); ok {
		props.Notification = &n
	}
	return strings.TrimRight(components.RenderStatusBar(props), "\n")
}
