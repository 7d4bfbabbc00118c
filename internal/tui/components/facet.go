package components

import (
	"strings"

	"github.com/thenoetrevino/facetview/internal/facet"
	"github.com/thenoetrevino/facetview/internal/markup"
)

// FacetProps configures the terminal drawing of one rendered facet tree
type FacetProps struct {
	Tree *markup.Node
	// Focused is the affordance under the cursor, nil if none in this facet
	Focused *markup.Node
	// Active draws the panel border in the focus color
	Active bool
	// Width of the panel content; zero lets the content decide
	Width int
}

// RenderFacet draws a facet markup tree as a bordered terminal panel.
// List entries read "value (count)", the selected entry reads "value (Remove)".
func RenderFacet(props FacetProps) string {
	return panelStyle(props.Active, props.Width).Render(RenderFacetBody(props))
}

// RenderFacetBody draws the facet without its panel border
func RenderFacetBody(props FacetProps) string {
	if props.Tree == nil {
		return ""
	}

	var lines []string
	for _, title := range props.Tree.FindByClass(facet.ClassTitle) {
		lines = append(lines, titleStyle().Render(title.TextContent()))
	}

	for _, list := range props.Tree.FindByClass(facet.ClassList) {
		if len(list.Children) == 0 {
			lines = append(lines, subtleStyle().Italic(true).Render("  No values"))
			continue
		}
		for _, entry := range list.Children {
			switch {
			case entry.HasClass(facet.ClassSelected):
				lines = append(lines, renderSelectedEntry(entry, props.Focused))
			case entry.HasClass(facet.ClassItem):
				lines = append(lines, renderOptionEntry(entry, props.Focused))
			}
		}
	}

	return strings.Join(lines, "\n")
}

func cursorPrefix(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

func renderOptionEntry(entry *markup.Node, focusedNode *markup.Node) string {
	var link *markup.Node
	if links := entry.FindByClass(facet.ClassLink); len(links) > 0 {
		link = links[0]
	}
	count := ""
	if counts := entry.FindByClass(facet.ClassCount); len(counts) > 0 {
		count = counts[0].TextContent()
	}

	focused := link != nil && link == focusedNode
	label := entry.TextContent()
	if link != nil {
		label = link.TextContent()
	}

	valueStyle := normalStyle()
	if focused {
		valueStyle = focusedStyle()
	}
	return cursorPrefix(focused) + valueStyle.Render(label) + " " + subtleStyle().Render("("+count+")")
}

func renderSelectedEntry(entry *markup.Node, focusedNode *markup.Node) string {
	// The selected value is the text preceding the remove span
	var value strings.Builder
	for _, c := range entry.Children {
		if !c.IsText() {
			break
		}
		value.WriteString(c.Text)
	}

	var remove *markup.Node
	if affordances := entry.Affordances(); len(affordances) > 0 {
		remove = affordances[0]
	}
	focused := remove != nil && remove == focusedNode

	caption := facet.RemoveText
	if remove != nil {
		caption = remove.TextContent()
	}
	captionStyle := removeStyle()
	if focused {
		captionStyle = focusedStyle()
	}

	return cursorPrefix(focused) +
		selectedStyle().Render(strings.TrimSpace(value.String())) + " " +
		subtleStyle().Render("(") + captionStyle.Render(caption) + subtleStyle().Render(")")
}
