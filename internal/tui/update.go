package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/facetview/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWindowSize(msg.Width, msg.Height)
		m.layoutResults()
		return m, nil

	case tea.KeyPressMsg:
		switch m.UiState.Mode() {
		case state.SearchMode:
			return m.handleSearchMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Non-key messages (cursor blink etc.) still reach the query input while editing
	if m.UiState.Mode() == state.SearchMode {
		var cmd tea.Cmd
		m.QueryInput, cmd = m.QueryInput.Update(msg)
		return m, cmd
	}

	return m, nil
}
