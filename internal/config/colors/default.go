package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Background
		Background:      "#1C1C1C",
		PanelBackground: "#262626",

		// UI elements
		PanelBorder:   "#5F87D7",
		FocusedBorder: "#D75FD7",
		FocusedBg:     "#3A3A3A",

		// Text
		Title:    "#D75FD7",
		Subtle:   "#585858",
		Normal:   "#D0D0D0",
		Selected: "#5FD75F",
		Remove:   "#FF5F5F",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
