package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/markup"
	"github.com/thenoetrevino/facetview/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.Keys.EditQuery):
		m.UiState.SetMode(state.SearchMode)
		m.QueryInput.SetValue(m.FacetState.Query())
		return m, m.QueryInput.Focus()
	case key.Matches(msg, m.Keys.NextOption):
		m.FacetState.MoveDown()
	case key.Matches(msg, m.Keys.PrevOption):
		m.FacetState.MoveUp()
	case key.Matches(msg, m.Keys.NextFacet):
		m.FacetState.NextPanel()
	case key.Matches(msg, m.Keys.PrevFacet):
		m.FacetState.PrevPanel()
	case key.Matches(msg, m.Keys.Activate):
		m.activate(m.FacetState.FocusedAffordance())
	case key.Matches(msg, m.Keys.ClearFacet):
		m.clearFocusedFacet()
	case key.Matches(msg, m.Keys.ClearAll):
		m.clearAll()
	case key.Matches(msg, m.Keys.ScrollResultsDown):
		m.ResultsViewport.PageDown()
	case key.Matches(msg, m.Keys.ScrollResultsUp):
		m.ResultsViewport.PageUp()
	}

	return m, nil
}

// activate fires an affordance of the current render pass and re-renders.
// The widget's handler suppresses the default action and invokes the
// facet callback, which updates FacetState.
func (m *Model) activate(node *markup.Node) {
	if node == nil {
		return
	}

	ev := markup.NewEvent()
	if err := node.Activate(ev); err != nil {
		slog.Error("Failed to activate facet affordance", "error", err)
		return
	}
	if !ev.DefaultPrevented() {
		slog.Warn("Facet affordance did not suppress its default action")
	}

	m.Reload()
}

// clearFocusedFacet clears the focused facet through its Remove affordance.
// A facet in list mode has nothing to clear.
func (m *Model) clearFocusedFacet() {
	panel, ok := m.FacetState.FocusedPanel()
	if !ok || panel.Mode.Kind != facet.ModeSelected {
		return
	}
	removes := panel.Tree.FindByClass(facet.ClassRemove)
	if len(removes) == 0 {
		return
	}
	if affordances := removes[0].Affordances(); len(affordances) > 0 {
		m.activate(affordances[0])
	}
}

// clearAll drops every filter and the query
func (m *Model) clearAll() {
	if len(m.FacetState.Filters()) == 0 && m.FacetState.Query() == "" {
		return
	}
	m.FacetState.SetFilters(nil)
	m.FacetState.SetQuery("")
	m.NotificationState.Add(state.LevelInfo, "Cleared all filters")
	slog.Info("All filters cleared")
	m.Reload()
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ShowHelp), msg.String() == "esc", msg.String() == "enter", msg.String() == m.Config.KeyMappings.Quit:
		m.UiState.SetMode(state.NormalMode)
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
