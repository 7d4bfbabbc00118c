// Package markup provides the small declarative node tree facet views render into.
//
// A tree is built fresh on every render and never mutated afterwards. Element
// nodes may carry an activation handler, which makes them user-activatable
// affordances; every activation receives an Event whose default action the
// handler suppresses before doing anything else.
package markup

import (
	"errors"
	"strings"
)

// ErrNotActivatable is returned when activating a node that has no handler
var ErrNotActivatable = errors.New("node is not activatable")

// Handler reacts to the activation of an affordance
type Handler func(ev *Event)

// Node is an element or text node of a rendered view tree.
// A node with an empty Tag is a text node and only Text is meaningful.
type Node struct {
	Tag        string
	Class      string
	Href       string
	Key        string
	Text       string
	Children   []*Node
	OnActivate Handler
}

// Element creates an element node with the given tag, class and children
func Element(tag, class string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Children: children}
}

// TextNode creates a text node
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// IsText reports whether n is a text node
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Activatable reports whether n has an activation handler
func (n *Node) Activatable() bool {
	return n.OnActivate != nil
}

// HasClass reports whether class is one of n's space-separated class tokens
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// Activate runs n's handler with ev. A nil ev is replaced by a fresh event.
func (n *Node) Activate(ev *Event) error {
	if n == nil || n.OnActivate == nil {
		return ErrNotActivatable
	}
	if ev == nil {
		ev = NewEvent()
	}
	n.OnActivate(ev)
	return nil
}

// Walk visits n and its descendants in document order
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// FindByClass returns every node in document order carrying class
func (n *Node) FindByClass(class string) []*Node {
	var found []*Node
	n.Walk(func(node *Node) {
		if !node.IsText() && node.HasClass(class) {
			found = append(found, node)
		}
	})
	return found
}

// Affordances returns every activatable node in document order
func (n *Node) Affordances() []*Node {
	var found []*Node
	n.Walk(func(node *Node) {
		if node.Activatable() {
			found = append(found, node)
		}
	})
	return found
}

// TextContent concatenates all text beneath n
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node) {
		if node.IsText() {
			b.WriteString(node.Text)
		}
	})
	return b.String()
}
