package parse

import (
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/token"
)

func (p *parser) propertyGroup(n *token.Node) (*ir.PropertyGroup, error) {
	attrs, err := p.attrs(n, nil, "Condition", "Label")
	if err != nil {
		return nil, err
	}
	g := &ir.PropertyGroup{Condition: attrs["Condition"], Label: attrs["Label"]}
	err = p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			g.Append(ir.NewComment(c.Text))
			return nil
		}
		prop, err := p.property(c)
		if err != nil {
			return err
		}
		g.Append(prop)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (p *parser) property(n *token.Node) (*ir.Property, error) {
	attrs, err := p.attrs(n, nil, "Condition")
	if err != nil {
		return nil, err
	}
	v, err := p.text(n)
	if err != nil {
		return nil, err
	}
	return &ir.Property{Name: n.Name, Value: &v, Condition: attrs["Condition"]}, nil
}

// text returns the character data of a value element such as a property
// or a metadata element. Whitespace is part of the value.
func (p *parser) text(n *token.Node) (string, error) {
	var v string
	for _, c := range n.Children {
		switch c.Type {
		case token.TextNode:
			v += c.Text
		case token.CommentNode:
			if p.opts.comments {
				return "", malformed(n.Name, c, "comments are not supported inside values")
			}
		default:
			return "", malformed(n.Name, c, "values cannot contain elements")
		}
	}
	return v, nil
}

func (p *parser) itemGroup(n *token.Node) (*ir.ItemGroup, error) {
	attrs, err := p.attrs(n, nil, "Condition", "Label")
	if err != nil {
		return nil, err
	}
	g := &ir.ItemGroup{Condition: attrs["Condition"], Label: attrs["Label"]}
	err = p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			g.Append(ir.NewComment(c.Text))
			return nil
		}
		it, err := p.item(c)
		if err != nil {
			return err
		}
		g.Append(it)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// item parses an item element. Metadata goes to AttrMetadata or Metadata
// purely by where it is written.
func (p *parser) item(n *token.Node) (*ir.Item, error) {
	rest := map[string]string{}
	attrs, err := p.attrs(n, rest, "Include", "Remove", "Update", "Exclude", "Condition")
	if err != nil {
		return nil, err
	}
	it := &ir.Item{
		Type:      n.Name,
		Exclude:   attrs["Exclude"],
		Condition: attrs["Condition"],
	}
	nOps := 0
	for _, op := range ir.Operations() {
		v, ok := attrs[op.String()]
		if !ok {
			continue
		}
		nOps++
		it.Op = op
		it.Spec = v
	}
	switch {
	case nOps == 0:
		return nil, malformed("", n, "one of Include, Remove or Update is required")
	case nOps > 1:
		return nil, malformed("", n, "only one of Include, Remove or Update is allowed")
	case it.Spec == "":
		return nil, malformed("", n, "empty %s", it.Op)
	}
	if len(rest) != 0 {
		it.AttrMetadata = rest
	}
	err = p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			return malformed(n.Name, c, "comments are not supported inside items")
		}
		if _, err := p.attrs(c, nil); err != nil {
			return err
		}
		if _, dup := it.Metadata[c.Name]; dup {
			return malformed(n.Name, c, "duplicate metadata")
		}
		v, err := p.text(c)
		if err != nil {
			return err
		}
		it.SetMetadata(c.Name, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return it, nil
}
