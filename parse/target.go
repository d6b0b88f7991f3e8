package parse

import (
	"github.com/signadot/projtree/ir"
	"github.com/signadot/projtree/token"
)

func (p *parser) target(n *token.Node) (*ir.Target, error) {
	attrs, err := p.attrs(n, nil,
		"Name", "Condition", "BeforeTargets", "AfterTargets", "DependsOnTargets",
		"Inputs", "Outputs", "Returns", "KeepDuplicateOutputs", "Label")
	if err != nil {
		return nil, err
	}
	name, err := required(n, attrs, "Name")
	if err != nil {
		return nil, err
	}
	t := &ir.Target{
		Name:                 name,
		Condition:            attrs["Condition"],
		BeforeTargets:        ir.SplitList(attrs["BeforeTargets"]),
		AfterTargets:         ir.SplitList(attrs["AfterTargets"]),
		DependsOnTargets:     ir.SplitList(attrs["DependsOnTargets"]),
		Inputs:               attrs["Inputs"],
		Outputs:              attrs["Outputs"],
		Returns:              attrs["Returns"],
		KeepDuplicateOutputs: attrs["KeepDuplicateOutputs"],
		Label:                attrs["Label"],
	}
	err = p.children(n, func(c *token.Node) error {
		elt, err := p.targetElement(n, c)
		if err != nil {
			return err
		}
		t.Append(elt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) targetElement(parent, n *token.Node) (ir.TargetElement, error) {
	if n.Type == token.CommentNode {
		return ir.NewComment(n.Text), nil
	}
	switch n.Name {
	case "PropertyGroup":
		return p.propertyGroup(n)
	case "ItemGroup":
		return p.itemGroup(n)
	case "OnError":
		return p.onError(n)
	}
	if !ir.IsTaskName(n.Name) {
		return nil, unsupported(parent.Name, n)
	}
	return p.task(n)
}

func (p *parser) onError(n *token.Node) (*ir.OnError, error) {
	attrs, err := p.attrs(n, nil, "ExecuteTargets", "Condition")
	if err != nil {
		return nil, err
	}
	targets, err := required(n, attrs, "ExecuteTargets")
	if err != nil {
		return nil, err
	}
	if err := p.empty(n); err != nil {
		return nil, err
	}
	return &ir.OnError{ExecuteTargets: ir.SplitList(targets), Condition: attrs["Condition"]}, nil
}

func (p *parser) task(n *token.Node) (*ir.Task, error) {
	params := map[string]string{}
	attrs, err := p.attrs(n, params, "Condition", "ContinueOnError")
	if err != nil {
		return nil, err
	}
	t := &ir.Task{
		Name:            n.Name,
		Condition:       attrs["Condition"],
		ContinueOnError: attrs["ContinueOnError"],
	}
	if len(params) != 0 {
		t.Params = params
	}
	err = p.children(n, func(c *token.Node) error {
		if c.Type == token.CommentNode {
			return malformed(n.Name, c, "comments are not supported inside tasks")
		}
		if c.Name != "Output" {
			return unsupported(n.Name, c)
		}
		o, err := p.output(c)
		if err != nil {
			return err
		}
		t.Outputs = append(t.Outputs, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (p *parser) output(n *token.Node) (*ir.TaskOutput, error) {
	attrs, err := p.attrs(n, nil, "TaskParameter", "PropertyName", "ItemName", "Condition")
	if err != nil {
		return nil, err
	}
	param, err := required(n, attrs, "TaskParameter")
	if err != nil {
		return nil, err
	}
	o := &ir.TaskOutput{
		TaskParameter: param,
		PropertyName:  attrs["PropertyName"],
		ItemName:      attrs["ItemName"],
		Condition:     attrs["Condition"],
	}
	if (o.PropertyName == "") == (o.ItemName == "") {
		return nil, malformed("", n, "exactly one of PropertyName or ItemName is required")
	}
	if err := p.empty(n); err != nil {
		return nil, err
	}
	return o, nil
}
