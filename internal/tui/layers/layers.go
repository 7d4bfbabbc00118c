package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer places content in the middle of the screen.
// Returns nil for empty content.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// PanelWidth splits the screen width across count side-by-side panels.
// Border and padding take four columns per panel.
func PanelWidth(screenWidth, count int) int {
	if count <= 0 {
		return 0
	}
	width := screenWidth/count - 4
	return max(width, 12)
}
