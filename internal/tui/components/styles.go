package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/facetview/internal/tui/theme"
)

// Styles are built on demand so a theme.Init after startup takes effect

func panelStyle(active bool, width int) lipgloss.Style {
	border := theme.PanelBorder
	if active {
		border = theme.FocusedBorder
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	return style
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title))
}

func normalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
}

func subtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
}

func focusedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(theme.FocusedBg))
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Selected))
}

func removeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color(theme.Remove))
}
