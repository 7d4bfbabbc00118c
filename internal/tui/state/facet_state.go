package state

import (
	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/markup"
	"github.com/thenoetrevino/facetview/internal/models"
)

// FacetPanel is one rendered facet widget of the browser.
// Tree is replaced wholesale on every render pass; handlers inside it keep
// the values captured when it was rendered.
type FacetPanel struct {
	Field string
	Label string
	Mode  facet.Mode
	Tree  *markup.Node
}

// Affordances returns the activatable nodes of the panel in display order.
func (p FacetPanel) Affordances() []*markup.Node {
	if p.Tree == nil {
		return nil
	}
	return p.Tree.Affordances()
}

// FacetState owns the selection state the facet widgets render from,
// together with the focus cursor over their affordances.
type FacetState struct {
	// filters is the single selected value per facet field
	filters models.Filters

	// query is the free-text product name filter
	query string

	// panels are the facet widgets of the latest render pass
	panels []FacetPanel

	// panelCursor is the index of the focused panel
	panelCursor int

	// cursor is the index of the focused affordance within the focused panel
	cursor int
}

// NewFacetState creates a FacetState with no filters.
func NewFacetState() *FacetState {
	return &FacetState{
		filters: models.Filters{},
	}
}

// Filters returns the active filters.
func (s *FacetState) Filters() models.Filters {
	return s.filters
}

// SetFilters replaces the active filters.
func (s *FacetState) SetFilters(filters models.Filters) {
	if filters == nil {
		filters = models.Filters{}
	}
	s.filters = filters
}

// Query returns the free-text query.
func (s *FacetState) Query() string {
	return s.query
}

// SetQuery updates the free-text query.
func (s *FacetState) SetQuery(query string) {
	s.query = query
}

// Panels returns the rendered facet panels.
func (s *FacetState) Panels() []FacetPanel {
	return s.panels
}

// SetPanels installs a fresh render pass and keeps the cursor in bounds.
func (s *FacetState) SetPanels(panels []FacetPanel) {
	s.panels = panels
	s.clamp()
}

// PanelCursor returns the index of the focused panel.
func (s *FacetState) PanelCursor() int {
	return s.panelCursor
}

// Cursor returns the index of the focused affordance within the focused panel.
func (s *FacetState) Cursor() int {
	return s.cursor
}

// FocusedPanel returns the focused panel.
// Returns false if there are no panels.
func (s *FacetState) FocusedPanel() (FacetPanel, bool) {
	if len(s.panels) == 0 {
		return FacetPanel{}, false
	}
	return s.panels[s.panelCursor], true
}

// FocusedAffordance returns the focused affordance.
// Returns nil if the focused panel has none.
func (s *FacetState) FocusedAffordance() *markup.Node {
	panel, ok := s.FocusedPanel()
	if !ok {
		return nil
	}
	affordances := panel.Affordances()
	if s.cursor < 0 || s.cursor >= len(affordances) {
		return nil
	}
	return affordances[s.cursor]
}

// MoveDown moves the cursor to the next affordance if possible.
func (s *FacetState) MoveDown() {
	panel, ok := s.FocusedPanel()
	if !ok {
		return
	}
	if s.cursor < len(panel.Affordances())-1 {
		s.cursor++
	}
}

// MoveUp moves the cursor to the previous affordance if possible.
func (s *FacetState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// NextPanel focuses the next panel, wrapping around.
func (s *FacetState) NextPanel() {
	if len(s.panels) == 0 {
		return
	}
	s.panelCursor = (s.panelCursor + 1) % len(s.panels)
	s.cursor = 0
}

// PrevPanel focuses the previous panel, wrapping around.
func (s *FacetState) PrevPanel() {
	if len(s.panels) == 0 {
		return
	}
	s.panelCursor = (s.panelCursor - 1 + len(s.panels)) % len(s.panels)
	s.cursor = 0
}

func (s *FacetState) clamp() {
	if len(s.panels) == 0 {
		s.panelCursor, s.cursor = 0, 0
		return
	}
	if s.panelCursor >= len(s.panels) {
		s.panelCursor = len(s.panels) - 1
	}
	n := len(s.panels[s.panelCursor].Affordances())
	if s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}
