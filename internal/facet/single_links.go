package facet

import (
	"strconv"

	"github.com/thenoetrevino/facetview/internal/markup"
	"github.com/thenoetrevino/facetview/internal/models"
)

// SingleLinks renders a single-choice facet.
//
//	div.sui-facet [className]
//	  div
//	    div.sui-facet__title          label
//	    ul.sui-single-option-facet    selected entry | option entries
func SingleLinks(props Props) *markup.Node {
	format := props.formatValue()

	var list *markup.Node
	mode := ComputeMode(props.Options)
	if mode.Kind == ModeSelected {
		list = markup.Element("ul", ClassList, selectedEntry(mode.Value, format, props.OnRemove))
	} else {
		list = markup.Element("ul", ClassList)
		for _, o := range props.Options {
			list.Children = append(list.Children, optionEntry(o, format, props.OnSelect))
		}
	}

	return markup.Element("div", props.rootClassName(),
		markup.Element("div", "",
			markup.Element("div", ClassTitle, markup.TextNode(props.Label)),
			list,
		),
	)
}

func selectedEntry(value models.FieldValue, format func(models.FieldValue) string, onRemove func(models.FieldValue)) *markup.Node {
	remove := markup.Element("a", "", markup.TextNode(RemoveText))
	remove.Href = "/"
	remove.OnActivate = activation(value, onRemove)

	return markup.Element("li", ClassSelected,
		markup.TextNode(format(value)),
		markup.TextNode(" "),
		markup.Element("span", ClassRemove,
			markup.TextNode("("),
			remove,
			markup.TextNode(")"),
		),
	)
}

func optionEntry(o models.Option, format func(models.FieldValue) string, onSelect func(models.FieldValue)) *markup.Node {
	display := format(o.Value)

	link := markup.Element("a", ClassLink, markup.TextNode(display))
	link.Href = "/"
	link.OnActivate = activation(o.Value, onSelect)

	item := markup.Element("li", ClassItem,
		link,
		markup.TextNode(" "),
		markup.Element("span", ClassCount, markup.TextNode(strconv.Itoa(o.Count))),
	)
	item.Key = display
	return item
}

// activation binds value as captured at render time; a later render with
// different options does not change what an existing handler reports.
func activation(value models.FieldValue, callback func(models.FieldValue)) markup.Handler {
	return func(ev *markup.Event) {
		ev.PreventDefault()
		if callback != nil {
			callback(value)
		}
	}
}
