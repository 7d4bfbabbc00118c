package theme

import "github.com/thenoetrevino/facetview/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Background    string
	PanelBg       string
	PanelBorder   string
	FocusedBorder string
	FocusedBg     string
	Title         string
	Subtle        string
	Normal        string
	Selected      string
	Remove        string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	PanelBg = colors.PanelBackground
	PanelBorder = colors.PanelBorder
	FocusedBorder = colors.FocusedBorder
	FocusedBg = colors.FocusedBg
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	Selected = colors.Selected
	Remove = colors.Remove
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
