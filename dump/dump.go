// Package dump renders project trees as YAML or JSON documents that
// describe the tree node by node, for tools that consume the tree
// without parsing project files.
//
// Every node becomes a mapping whose first key is "kind". Empty fields
// are left out; a property with a missing value has value null.
package dump

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/projtree/encode"
	"github.com/signadot/projtree/format"
	"github.com/signadot/projtree/ir"
)

// Encode writes p to w in format f. XMLFormat yields the canonical
// project text.
func Encode(p *ir.Project, w io.Writer, f format.Format) error {
	var opts []yaml.EncodeOption
	switch f {
	case format.XMLFormat:
		return encode.Encode(p, w)
	case format.JSONFormat:
		opts = append(opts, yaml.JSON())
	case format.YAMLFormat:
		opts = append(opts, yaml.IndentSequence(true))
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
	}
	d, err := yaml.MarshalWithOptions(Tree(p), opts...)
	if err != nil {
		return fmt.Errorf("could not marshal tree: %w", err)
	}
	_, err = w.Write(d)
	return err
}

// Tree returns the ordered mapping describing p.
func Tree(p *ir.Project) yaml.MapSlice {
	if p == nil {
		return nil
	}
	m := node(ir.ProjectKind)
	m = fields(m,
		"sdk", p.Sdk,
		"toolsVersion", p.ToolsVersion,
		"defaultTargets", p.DefaultTargets,
		"initialTargets", p.InitialTargets,
		"treatAsLocalProperty", p.TreatAsLocalProperty,
		"label", p.Label,
		"xmlns", p.Namespace)
	m = list(m, "header", p.Header)
	m = list(m, "nodes", p.Nodes)
	m = list(m, "footer", p.Footer)
	return m
}

func node(k ir.Kind) yaml.MapSlice {
	return yaml.MapSlice{{Key: "kind", Value: k.String()}}
}

// fields appends the non-empty string fields given as key value pairs.
func fields(m yaml.MapSlice, kvs ...string) yaml.MapSlice {
	for i := 0; i+1 < len(kvs); i += 2 {
		if kvs[i+1] == "" {
			continue
		}
		m = append(m, yaml.MapItem{Key: kvs[i], Value: kvs[i+1]})
	}
	return m
}

func list[E ir.Node](m yaml.MapSlice, key string, entries []E) yaml.MapSlice {
	if len(entries) == 0 {
		return m
	}
	vs := make([]any, 0, len(entries))
	for _, e := range entries {
		vs = append(vs, value(e))
	}
	return append(m, yaml.MapItem{Key: key, Value: vs})
}

func stringList(m yaml.MapSlice, key string, vs []string) yaml.MapSlice {
	if len(vs) == 0 {
		return m
	}
	return append(m, yaml.MapItem{Key: key, Value: vs})
}

// sorted appends a map with its keys in ascending order.
func sorted(m yaml.MapSlice, key string, keys []string, vals map[string]string) yaml.MapSlice {
	if len(keys) == 0 {
		return m
	}
	sub := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		sub = append(sub, yaml.MapItem{Key: k, Value: vals[k]})
	}
	return append(m, yaml.MapItem{Key: key, Value: sub})
}

func value(n ir.Node) any {
	switch x := n.(type) {
	case *ir.Comment:
		if x == nil {
			return nil
		}
		return append(node(x.Kind()), yaml.MapItem{Key: "text", Value: x.Text})
	case *ir.PropertyGroup:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "label", x.Label, "condition", x.Condition)
		return list(m, "entries", x.Entries)
	case *ir.Property:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "name", x.Name)
		var v any
		if x.Value != nil {
			v = *x.Value
		}
		m = append(m, yaml.MapItem{Key: "value", Value: v})
		return fields(m, "condition", x.Condition)
	case *ir.ItemGroup:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "label", x.Label, "condition", x.Condition)
		return list(m, "entries", x.Entries)
	case *ir.Item:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()),
			"type", x.Type,
			"op", x.Op.String(),
			"spec", x.Spec,
			"exclude", x.Exclude,
			"condition", x.Condition)
		m = sorted(m, "metadata", x.MetadataKeys(), x.Metadata)
		return sorted(m, "attrMetadata", x.AttrMetadataKeys(), x.AttrMetadata)
	case *ir.Import:
		if x == nil {
			return nil
		}
		return fields(node(x.Kind()),
			"project", x.Project,
			"sdk", x.Sdk,
			"version", x.Version,
			"condition", x.Condition,
			"label", x.Label)
	case *ir.ImportGroup:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "label", x.Label, "condition", x.Condition)
		return list(m, "entries", x.Entries)
	case *ir.UsingTask:
		if x == nil {
			return nil
		}
		return fields(node(x.Kind()),
			"taskName", x.TaskName,
			"assemblyFile", x.AssemblyFile,
			"assemblyName", x.AssemblyName,
			"taskFactory", x.TaskFactory,
			"runtime", x.Runtime,
			"architecture", x.Architecture,
			"condition", x.Condition)
	case *ir.Target:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "name", x.Name, "condition", x.Condition)
		m = stringList(m, "dependsOnTargets", x.DependsOnTargets)
		m = stringList(m, "beforeTargets", x.BeforeTargets)
		m = stringList(m, "afterTargets", x.AfterTargets)
		m = fields(m,
			"inputs", x.Inputs,
			"outputs", x.Outputs,
			"returns", x.Returns,
			"keepDuplicateOutputs", x.KeepDuplicateOutputs,
			"label", x.Label)
		return list(m, "elements", x.Elements)
	case *ir.Task:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()),
			"name", x.Name,
			"condition", x.Condition,
			"continueOnError", x.ContinueOnError)
		m = sorted(m, "params", x.ParamNames(), x.Params)
		return list(m, "outputs", x.Outputs)
	case *ir.TaskOutput:
		if x == nil {
			return nil
		}
		return fields(node(x.Kind()),
			"taskParameter", x.TaskParameter,
			"propertyName", x.PropertyName,
			"itemName", x.ItemName,
			"condition", x.Condition)
	case *ir.OnError:
		if x == nil {
			return nil
		}
		m := stringList(node(x.Kind()), "executeTargets", x.ExecuteTargets)
		return fields(m, "condition", x.Condition)
	case *ir.Choose:
		if x == nil {
			return nil
		}
		m := list(node(x.Kind()), "whens", x.Whens)
		if x.Otherwise != nil {
			m = append(m, yaml.MapItem{Key: "otherwise", Value: value(x.Otherwise)})
		}
		return list(m, "trailing", x.Trailing)
	case *ir.When:
		if x == nil {
			return nil
		}
		m := fields(node(x.Kind()), "condition", x.Condition)
		return clause(m, &x.Clause)
	case *ir.Otherwise:
		if x == nil {
			return nil
		}
		return clause(node(x.Kind()), &x.Clause)
	}
	return nil
}

func clause(m yaml.MapSlice, cl *ir.Clause) yaml.MapSlice {
	m = list(m, "leading", cl.Leading)
	return list(m, "entries", cl.Entries)
}
