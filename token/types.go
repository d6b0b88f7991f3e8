package token

import "strings"

type NodeType int

const (
	ElementNode NodeType = iota
	CommentNode
	TextNode
)

func (t NodeType) String() string {
	return map[NodeType]string{
		ElementNode: "element",
		CommentNode: "comment",
		TextNode:    "text",
	}[t]
}

type Attr struct {
	Name  string
	Value string
	Pos   *Pos
}

// Node is an element, comment or run of character data. Adjacent
// character data (including CDATA sections) is merged into one text node.
type Node struct {
	Type NodeType
	Pos  *Pos

	// element
	Name     string
	Attrs    []Attr
	Children []*Node

	// comment and text
	Text string
}

// Attr returns the attribute named name, or nil.
func (n *Node) Attr(name string) *Attr {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return &n.Attrs[i]
		}
	}
	return nil
}

// IsBlank reports whether n is whitespace-only character data.
func (n *Node) IsBlank() bool {
	return n.Type == TextNode && strings.TrimSpace(n.Text) == ""
}

// Describe names the node for error messages.
func (n *Node) Describe() string {
	switch n.Type {
	case ElementNode:
		return "<" + n.Name + ">"
	case CommentNode:
		return "comment"
	default:
		return "character data"
	}
}

type Document struct {
	// Prolog holds the comments preceding the root element.
	Prolog []*Node
	Root   *Node
	// Epilog holds the comments following the root element.
	Epilog []*Node
}
