package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/facetview/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// handleSearchMode edits the query; enter applies it, esc discards the edit.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.FacetState.SetQuery(m.QueryInput.Value())
		m.QueryInput.Blur()
		m.UiState.SetMode(state.NormalMode)
		slog.Info("Search query applied", "query", m.FacetState.Query())
		m.Reload()
		return m, nil
	case "esc":
		m.QueryInput.SetValue(m.FacetState.Query())
		m.QueryInput.Blur()
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.QueryInput, cmd = m.QueryInput.Update(msg)
	return m, cmd
}
