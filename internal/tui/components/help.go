package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/facetview/internal/config"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// HelpMarkdown returns the help text for the configured key mappings
func HelpMarkdown(km config.KeyMappings) string {
	var b strings.Builder
	b.WriteString("# Facet browser\n\n")
	b.WriteString("Each panel is a single-choice facet. Picking a value narrows the results; ")
	b.WriteString("a facet with a value picked shows only that value and a **Remove** link.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")

	rows := []struct{ key, action string }{
		{km.NextOption + " / down", "next value"},
		{km.PrevOption + " / up", "previous value"},
		{km.NextFacet + " / tab", "next facet"},
		{km.PrevFacet + " / shift+tab", "previous facet"},
		{km.Activate + " / space", "select value or Remove"},
		{km.ClearFacet, "clear focused facet"},
		{km.ClearAll, "clear all facets"},
		{km.EditQuery, "edit search query"},
		{"pgdown / pgup", "scroll results"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "| `%s` | %s |\n", r.key, r.action)
	}
	return b.String()
}

// RenderHelp renders the help markdown, falling back to the wrapped raw text
func RenderHelp(km config.KeyMappings, width int) string {
	md := HelpMarkdown(km)
	renderer, err := getRenderer(width)
	if err != nil {
		return wordwrap.String(md, width)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return wordwrap.String(md, width)
	}
	return strings.TrimSpace(rendered)
}
