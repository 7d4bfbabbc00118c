package markup

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(onActivate Handler) *Node {
	link := Element("a", "link", TextNode("Nike"))
	link.Href = "/"
	link.OnActivate = onActivate

	item := Element("li", "item first", link, TextNode(" "), Element("span", "count", TextNode("5")))
	item.Key = "Nike"

	return Element("div", "root",
		Element("div", "title", TextNode("Brand")),
		Element("ul", "list", item),
	)
}

func TestHasClass(t *testing.T) {
	n := Element("li", "item  first")
	assert.True(t, n.HasClass("item"))
	assert.True(t, n.HasClass("first"))
	assert.False(t, n.HasClass("ite"))
	assert.False(t, n.HasClass(""))
}

func TestFindByClass_DocumentOrder(t *testing.T) {
	root := Element("ul", "",
		Element("li", "item", TextNode("a")),
		Element("li", "other", TextNode("b")),
		Element("li", "item", TextNode("c")),
	)

	found := root.FindByClass("item")
	require.Len(t, found, 2)
	assert.Equal(t, "a", found[0].TextContent())
	assert.Equal(t, "c", found[1].TextContent())
}

func TestTextContent(t *testing.T) {
	assert.Equal(t, "BrandNike 5", sampleTree(nil).TextContent())
}

func TestAffordances(t *testing.T) {
	root := sampleTree(func(ev *Event) {})
	affordances := root.Affordances()
	require.Len(t, affordances, 1)
	assert.Equal(t, "a", affordances[0].Tag)

	assert.Empty(t, sampleTree(nil).Affordances())
}

func TestActivate_PassesEvent(t *testing.T) {
	var got *Event
	root := sampleTree(func(ev *Event) {
		ev.PreventDefault()
		got = ev
	})

	ev := NewEvent()
	require.NoError(t, root.Affordances()[0].Activate(ev))
	assert.Same(t, ev, got)
	assert.True(t, ev.DefaultPrevented())
}

func TestActivate_NilEvent(t *testing.T) {
	called := false
	n := &Node{Tag: "a", OnActivate: func(ev *Event) {
		called = ev != nil
	}}
	require.NoError(t, n.Activate(nil))
	assert.True(t, called)
}

func TestActivate_NotActivatable(t *testing.T) {
	n := Element("div", "root")
	assert.True(t, errors.Is(n.Activate(NewEvent()), ErrNotActivatable))

	var nilNode *Node
	assert.ErrorIs(t, nilNode.Activate(nil), ErrNotActivatable)
}

func TestEvent_DefaultNotPrevented(t *testing.T) {
	assert.False(t, NewEvent().DefaultPrevented())
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, sampleTree(nil)))

	want := `<div class="root"><div class="title">Brand</div><ul class="list">` +
		`<li class="item first" data-key="Nike"><a class="link" href="/">Nike</a> <span class="count">5</span></li>` +
		`</ul></div>`
	assert.Equal(t, want, buf.String())
}

func TestRenderHTML_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	root := Element("div", "title", TextNode(`<b>"Tom & Jerry"</b>`))
	require.NoError(t, RenderHTML(&buf, root))
	assert.Equal(t, `<div class="title">&lt;b&gt;&#34;Tom &amp; Jerry&#34;&lt;/b&gt;</div>`, buf.String())
}
