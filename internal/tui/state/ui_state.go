package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Navigating facet affordances
	SearchMode             // Editing the free-text query
	HelpMode               // Displaying help screen
)

// UIState manages terminal dimensions and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize updates the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
