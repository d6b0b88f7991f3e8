package parse

import (
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/token"
)

func (p *parser) choose(n *token.Node) (*ir.Choose, error) {
	if _, err := p.attrs(n, nil); err != nil {
		return nil, err
	}
	ch := &ir.Choose{}
	var pending []*ir.Comment
	err := p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			pending = append(pending, ir.NewComment(c.Text))
			return nil
		}
		if ch.Otherwise != nil {
			return malformed(n.Name, c, "<Otherwise> must be the last clause")
		}
		switch c.Name {
		case "When":
			w, err := p.when(c)
			if err != nil {
				return err
			}
			w.Leading = pending
			ch.Whens = append(ch.Whens, w)
		case "Otherwise":
			if len(ch.Whens) == 0 {
				return malformed(n.Name, c, "<Otherwise> must follow a <When>")
			}
			o, err := p.otherwise(c)
			if err != nil {
				return err
			}
			o.Leading = pending
			ch.Otherwise = o
		default:
			return unsupported(n.Name, c)
		}
		pending = nil
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(ch.Whens) == 0 {
		return nil, malformed("", n, "at least one <When> is required")
	}
	ch.Trailing = pending
	return ch, nil
}

func (p *parser) when(n *token.Node) (*ir.When, error) {
	attrs, err := p.attrs(n, nil, "Condition")
	if err != nil {
		return nil, err
	}
	cond, err := required(n, attrs, "Condition")
	if err != nil {
		return nil, err
	}
	w := &ir.When{Condition: cond}
	if err := p.clause(n, &w.Clause); err != nil {
		return nil, err
	}
	return w, nil
}

func (p *parser) otherwise(n *token.Node) (*ir.Otherwise, error) {
	if _, err := p.attrs(n, nil); err != nil {
		return nil, err
	}
	o := &ir.Otherwise{}
	if err := p.clause(n, &o.Clause); err != nil {
		return nil, err
	}
	return o, nil
}

func (p *parser) clause(n *token.Node, cl *ir.Clause) error {
	return p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			cl.Append(ir.NewComment(c.Text))
			return nil
		}
		switch c.Name {
		case "PropertyGroup":
			g, err := p.propertyGroup(c)
			if err != nil {
				return err
			}
			cl.Append(g)
		case "ItemGroup":
			g, err := p.itemGroup(c)
			if err != nil {
				return err
			}
			cl.Append(g)
		case "Choose":
			ch, err := p.choose(c)
			if err != nil {
				return err
			}
			cl.Append(ch)
		default:
			return unsupported(n.Name, c)
		}
		return nil
	})
}
