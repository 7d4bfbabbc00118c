package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for the focused affordance and titles)
	Accent string `yaml:"accent"`

	// Background colors
	Background      string `yaml:"background"`
	PanelBackground string `yaml:"panel_background"`

	// UI element colors
	PanelBorder   string `yaml:"panel_border"`
	FocusedBorder string `yaml:"focused_border"`
	FocusedBg     string `yaml:"focused_bg"`

	// Text colors
	Title    string `yaml:"title"`
	Subtle   string `yaml:"subtle"` // Counts, placeholder text
	Normal   string `yaml:"normal"`
	Selected string `yaml:"selected"` // The active value of a facet
	Remove   string `yaml:"remove"`   // The Remove affordance

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Preset, preset.Preset)
	fill(&c.Accent, preset.Accent)
	fill(&c.Background, preset.Background)
	fill(&c.PanelBackground, preset.PanelBackground)
	fill(&c.PanelBorder, preset.PanelBorder)
	fill(&c.FocusedBorder, preset.FocusedBorder)
	fill(&c.FocusedBg, preset.FocusedBg)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Selected, preset.Selected)
	fill(&c.Remove, preset.Remove)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Background, other.Background)
	merge(&c.PanelBackground, other.PanelBackground)
	merge(&c.PanelBorder, other.PanelBorder)
	merge(&c.FocusedBorder, other.FocusedBorder)
	merge(&c.FocusedBg, other.FocusedBg)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.Selected, other.Selected)
	merge(&c.Remove, other.Remove)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.InfoBg, other.InfoBg)
	merge(&c.ErrorFg, other.ErrorFg)
	merge(&c.ErrorBg, other.ErrorBg)
}
