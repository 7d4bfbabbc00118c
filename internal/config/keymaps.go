package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	NextOption string `yaml:"next_option"`
	PrevOption string `yaml:"prev_option"`
	NextFacet  string `yaml:"next_facet"`
	PrevFacet  string `yaml:"prev_facet"`

	// Facet actions
	Activate   string `yaml:"activate"`
	ClearFacet string `yaml:"clear_facet"`
	ClearAll   string `yaml:"clear_all"`

	// Search
	EditQuery string `yaml:"edit_query"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Navigation
		NextOption: "j",
		PrevOption: "k",
		NextFacet:  "l",
		PrevFacet:  "h",

		// Facet actions
		Activate:   "enter",
		ClearFacet: "x",
		ClearAll:   "X",

		// Search
		EditQuery: "/",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&k.NextOption, defaults.NextOption)
	fill(&k.PrevOption, defaults.PrevOption)
	fill(&k.NextFacet, defaults.NextFacet)
	fill(&k.PrevFacet, defaults.PrevFacet)
	fill(&k.Activate, defaults.Activate)
	fill(&k.ClearFacet, defaults.ClearFacet)
	fill(&k.ClearAll, defaults.ClearAll)
	fill(&k.EditQuery, defaults.EditQuery)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
