package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		// Primary
		Accent: "#FFFFFF",

		// Background
		Background:      "#121212",
		PanelBackground: "#1C1C1C",

		// UI elements
		PanelBorder:   "#585858",
		FocusedBorder: "#FFFFFF",
		FocusedBg:     "#3A3A3A",

		// Text
		Title:    "#FFFFFF",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Selected: "#FFFFFF",
		Remove:   "#D0D0D0",

		// Notifications
		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}
