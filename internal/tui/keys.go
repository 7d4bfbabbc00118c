package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/facetview/internal/config"
)

// KeyMap holds the key bindings of normal mode, built from the configured mappings
type KeyMap struct {
	NextOption key.Binding
	PrevOption key.Binding
	NextFacet  key.Binding
	PrevFacet  key.Binding
	Activate   key.Binding
	ClearFacet key.Binding
	ClearAll   key.Binding
	EditQuery  key.Binding
	ShowHelp   key.Binding
	Quit       key.Binding

	ScrollResultsDown key.Binding
	ScrollResultsUp   key.Binding
}

// NewKeyMap builds bindings from km, keeping arrow keys and tab as fixed aliases
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		NextOption: key.NewBinding(key.WithKeys(km.NextOption, "down"), key.WithHelp(km.NextOption, "next value")),
		PrevOption: key.NewBinding(key.WithKeys(km.PrevOption, "up"), key.WithHelp(km.PrevOption, "previous value")),
		NextFacet:  key.NewBinding(key.WithKeys(km.NextFacet, "right", "tab"), key.WithHelp(km.NextFacet, "next facet")),
		PrevFacet:  key.NewBinding(key.WithKeys(km.PrevFacet, "left", "shift+tab"), key.WithHelp(km.PrevFacet, "previous facet")),
		Activate:   key.NewBinding(key.WithKeys(km.Activate, "space"), key.WithHelp(km.Activate, "select / remove")),
		ClearFacet: key.NewBinding(key.WithKeys(km.ClearFacet), key.WithHelp(km.ClearFacet, "clear facet")),
		ClearAll:   key.NewBinding(key.WithKeys(km.ClearAll), key.WithHelp(km.ClearAll, "clear all")),
		EditQuery:  key.NewBinding(key.WithKeys(km.EditQuery), key.WithHelp(km.EditQuery, "search")),
		ShowHelp:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:       key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		ScrollResultsDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdown", "scroll results")),
		ScrollResultsUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll results")),
	}
}
