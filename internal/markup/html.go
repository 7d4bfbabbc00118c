package markup

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML serialises the tree rooted at n as HTML
func RenderHTML(w io.Writer, n *Node) error {
	return html.Render(w, toHTML(n))
}

func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	if n.Href != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "href", Val: n.Href})
	}
	if n.Key != "" {
		out.Attr = append(out.Attr, html.Attribute{Key: "data-key", Val: n.Key})
	}

	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}
