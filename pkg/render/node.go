package render

import "github.com/vango-dev/attrs/pkg/attr"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <input>, etc.
	KindText                // Escaped text
	KindRaw                 // Unescaped HTML (trusted input only)
)

// Node is a minimal element tree used to exercise attribute rendering.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []attr.Attr
	Children []*Node
	Text     string
}

// El creates an element node. Attribute values may be any value accepted
// by attr.From.
func El(tag string, attrs []attr.Attr, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Attrs: attrs, Children: children}
}

// Text creates an escaped text node.
func Text(s string) *Node {
	return &Node{Kind: KindText, Text: s}
}

// Raw creates a node whose text is written without escaping.
func Raw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// A is shorthand for building an attribute declaration.
func A(name string, value any) attr.Attr {
	return attr.Attr{Name: name, Value: value}
}
