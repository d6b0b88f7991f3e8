package parse

import (
	"errors"

	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Project, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	doc, err := token.Read(d, pOpts.ReadOpts()...)
	if err != nil {
		fe := &FormatError{Err: err}
		var re *token.ReadErr
		if errors.As(err, &re) {
			fe.Pos = &re.Pos
		}
		return nil, fe
	}
	p := &parser{opts: pOpts}
	return p.project(doc)
}

func ParseString(s string, opts ...ParseOption) (*ir.Project, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	opts *parseOpts
}

// attrs checks the attributes of n against the vocabulary allowed and
// returns their values. If rest is non-nil, attributes outside allowed are
// stored there instead of being rejected.
func (p *parser) attrs(n *token.Node, rest map[string]string, allowed ...string) (map[string]string, error) {
	res := make(map[string]string, len(n.Attrs))
	seen := make(map[string]bool, len(n.Attrs))
	for _, a := range n.Attrs {
		if seen[a.Name] {
			return nil, &FormatError{Context: n.Name, Construct: "attribute " + a.Name, Reason: "duplicate attribute", Pos: a.Pos}
		}
		seen[a.Name] = true
		known := false
		for _, name := range allowed {
			if a.Name == name {
				known = true
				break
			}
		}
		switch {
		case known:
			res[a.Name] = a.Value
		case rest != nil:
			rest[a.Name] = a.Value
		default:
			return nil, &FormatError{Context: n.Name, Construct: "attribute " + a.Name, Pos: a.Pos}
		}
	}
	return res, nil
}

// required reads attribute name of n, which must be present and non-empty.
func required(n *token.Node, attrs map[string]string, name string) (string, error) {
	v := attrs[name]
	if v == "" {
		return "", malformed("", n, "missing required attribute %s", name)
	}
	return v, nil
}

// children calls f for each child of n that is an element or, when
// comments are kept, a comment. Blank character data is skipped and any
// other character data is rejected.
func (p *parser) children(n *token.Node, f func(c *token.Node) error) error {
	for _, c := range n.Children {
		switch c.Type {
		case token.TextNode:
			if c.IsBlank() {
				continue
			}
			return unsupported(n.Name, c)
		case token.CommentNode:
			if !p.opts.comments {
				continue
			}
		}
		if err := f(c); err != nil {
			return err
		}
	}
	return nil
}

// empty checks that n has no content apart from whitespace and, when
// they are dropped, comments.
func (p *parser) empty(n *token.Node) error {
	return p.children(n, func(c *token.Node) error {
		return unsupported(n.Name, c)
	})
}

func (p *parser) comments(nodes []*token.Node) []*ir.Comment {
	if !p.opts.comments {
		return nil
	}
	var res []*ir.Comment
	for _, n := range nodes {
		res = append(res, ir.NewComment(n.Text))
	}
	return res
}

func (p *parser) project(doc *token.Document) (*ir.Project, error) {
	root := doc.Root
	if root.Name != "Project" {
		return nil, malformed("", root, "root element must be <Project>")
	}
	attrs, err := p.attrs(root, nil,
		"Sdk", "DefaultTargets", "InitialTargets", "ToolsVersion",
		"TreatAsLocalProperty", "xmlns", "Label")
	if err != nil {
		return nil, err
	}
	res := &ir.Project{
		Sdk:                  attrs["Sdk"],
		DefaultTargets:       attrs["DefaultTargets"],
		InitialTargets:       attrs["InitialTargets"],
		ToolsVersion:         attrs["ToolsVersion"],
		TreatAsLocalProperty: attrs["TreatAsLocalProperty"],
		Namespace:            attrs["xmlns"],
		Label:                attrs["Label"],
		Header:               p.comments(doc.Prolog),
		Footer:               p.comments(doc.Epilog),
	}
	err = p.children(root, func(c *token.Node) error {
		n, err := p.projectNode(root, c)
		if err != nil {
			return err
		}
		res.Append(n)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) projectNode(parent, n *token.Node) (ir.ProjectNode, error) {
	if n.Type == token.CommentNode {
		return ir.NewComment(n.Text), nil
	}
	switch n.Name {
	case "PropertyGroup":
		return p.propertyGroup(n)
	case "ItemGroup":
		return p.itemGroup(n)
	case "Import":
		return p.importElt(n)
	case "ImportGroup":
		return p.importGroup(n)
	case "UsingTask":
		return p.usingTask(n)
	case "Target":
		return p.target(n)
	case "Choose":
		return p.choose(n)
	}
	return nil, unsupported(parent.Name, n)
}

func (p *parser) importElt(n *token.Node) (*ir.Import, error) {
	attrs, err := p.attrs(n, nil, "Project", "Sdk", "Version", "Condition", "Label")
	if err != nil {
		return nil, err
	}
	proj, err := required(n, attrs, "Project")
	if err != nil {
		return nil, err
	}
	if err := p.empty(n); err != nil {
		return nil, err
	}
	return &ir.Import{
		Project:   proj,
		Sdk:       attrs["Sdk"],
		Version:   attrs["Version"],
		Condition: attrs["Condition"],
		Label:     attrs["Label"],
	}, nil
}

func (p *parser) importGroup(n *token.Node) (*ir.ImportGroup, error) {
	attrs, err := p.attrs(n, nil, "Condition", "Label")
	if err != nil {
		return nil, err
	}
	g := &ir.ImportGroup{Condition: attrs["Condition"], Label: attrs["Label"]}
	err = p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			g.Append(ir.NewComment(c.Text))
			return nil
		}
		if c.Name != "Import" {
			return unsupported(n.Name, c)
		}
		im, err := p.importElt(c)
		if err != nil {
			return err
		}
		g.Append(im)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (p *parser) usingTask(n *token.Node) (*ir.UsingTask, error) {
	attrs, err := p.attrs(n, nil,
		"TaskName", "AssemblyFile", "AssemblyName", "TaskFactory",
		"Condition", "Runtime", "Architecture")
	if err != nil {
		return nil, err
	}
	name, err := required(n, attrs, "TaskName")
	if err != nil {
		return nil, err
	}
	u := &ir.UsingTask{
		TaskName:     name,
		AssemblyFile: attrs["AssemblyFile"],
		AssemblyName: attrs["AssemblyName"],
		TaskFactory:  attrs["TaskFactory"],
		Condition:    attrs["Condition"],
		Runtime:      attrs["Runtime"],
		Architecture: attrs["Architecture"],
	}
	if !u.HasSource() {
		return nil, malformed("", n, "one of AssemblyFile, AssemblyName or TaskFactory is required")
	}
	if err := p.empty(n); err != nil {
		return nil, err
	}
	return u, nil
}
