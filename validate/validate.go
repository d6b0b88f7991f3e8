package validate

import (
	"fmt"
	"strings"

	"github.com/signadot/projtree/ir"
)

// Violation is a structural fault found by Validate.
type Violation struct {
	Code    Code
	Path    string
	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Path, v.Code, v.Message)
}

// Validate checks p and returns one Violation per fault, in document
// order. A tree without violations can always be encoded.
func Validate(p *ir.Project) []Violation {
	v := &validator{}
	v.project(p)
	return v.res
}

type validator struct {
	path []string
	res  []Violation
}

func (v *validator) push(format string, args ...any) {
	v.path = append(v.path, fmt.Sprintf(format, args...))
}

func (v *validator) pop() {
	v.path = v.path[:len(v.path)-1]
}

func (v *validator) add(c Code, format string, args ...any) {
	v.res = append(v.res, Violation{
		Code:    c,
		Path:    "/" + strings.Join(v.path, "/"),
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) nilEntry(i int) {
	v.push("[%d]", i)
	v.add(DualView, "nil entry")
	v.pop()
}

func (v *validator) comments(name string, cs []*ir.Comment) {
	for i, c := range cs {
		v.push("%s[%d]", name, i)
		if c == nil {
			v.add(DualView, "nil comment")
		} else {
			v.commentText(c)
		}
		v.pop()
	}
}

// comment checks a comment held in an entry list.
func (v *validator) comment(i int, c *ir.Comment) {
	if c == nil {
		v.nilEntry(i)
		return
	}
	v.push("Comment[%d]", i)
	v.commentText(c)
	v.pop()
}

func (v *validator) commentText(c *ir.Comment) {
	if !ir.ValidComment(c.Text) {
		v.add(Unencodable, "comment %q cannot be written", c.Text)
	}
}

// name reports a name that cannot be written as an XML name.
func (v *validator) name(what, s string) {
	if !ir.ValidName(s) {
		v.add(Unencodable, "invalid %s name %q", what, s)
	}
}

// text reports values holding characters that XML cannot carry. kvs
// alternates field names and values.
func (v *validator) text(kvs ...string) {
	for i := 0; i+1 < len(kvs); i += 2 {
		if !ir.ValidText(kvs[i+1]) {
			v.add(Unencodable, "%s contains characters that cannot be written", kvs[i])
		}
	}
}

func (v *validator) list(field string, vs []string) {
	for _, e := range vs {
		if !ir.ValidListEntry(e) || !ir.ValidText(e) {
			v.add(Unencodable, "invalid %s entry %q", field, e)
		}
	}
}

func (v *validator) project(p *ir.Project) {
	v.push("Project")
	defer v.pop()
	if p == nil {
		v.add(MissingField, "nil project")
		return
	}
	v.text(
		"Sdk", p.Sdk,
		"ToolsVersion", p.ToolsVersion,
		"DefaultTargets", p.DefaultTargets,
		"InitialTargets", p.InitialTargets,
		"TreatAsLocalProperty", p.TreatAsLocalProperty,
		"Label", p.Label,
		"xmlns", p.Namespace)
	v.comments("Header", p.Header)
	for i, n := range p.Nodes {
		switch x := n.(type) {
		case *ir.Comment:
			v.comment(i, x)
		case *ir.PropertyGroup:
			v.propertyGroup(i, x)
		case *ir.ItemGroup:
			v.itemGroup(i, x)
		case *ir.Import:
			v.importElt(i, x)
		case *ir.ImportGroup:
			v.importGroup(i, x)
		case *ir.UsingTask:
			v.usingTask(i, x)
		case *ir.Target:
			v.target(i, x)
		case *ir.Choose:
			v.choose(i, x)
		default:
			v.nilEntry(i)
		}
	}
	v.comments("Footer", p.Footer)
}

func (v *validator) propertyGroup(i int, g *ir.PropertyGroup) {
	if g == nil {
		v.nilEntry(i)
		return
	}
	v.push("PropertyGroup[%d]", i)
	defer v.pop()
	v.text("Label", g.Label, "Condition", g.Condition)
	for j, e := range g.Entries {
		switch x := e.(type) {
		case *ir.Comment:
			v.comment(j, x)
		case *ir.Property:
			v.property(j, x)
		default:
			v.nilEntry(j)
		}
	}
}

func (v *validator) property(i int, p *ir.Property) {
	if p == nil {
		v.nilEntry(i)
		return
	}
	v.push("%s[%d]", nameOr(p.Name, "Property"), i)
	defer v.pop()
	if p.Name == "" {
		v.add(MissingField, "property has no name")
	} else {
		v.name("property", p.Name)
	}
	if p.Value == nil {
		v.add(MissingField, "property has no value")
	} else {
		v.text("value", *p.Value)
	}
	v.text("Condition", p.Condition)
}

func (v *validator) itemGroup(i int, g *ir.ItemGroup) {
	if g == nil {
		v.nilEntry(i)
		return
	}
	v.push("ItemGroup[%d]", i)
	defer v.pop()
	v.text("Label", g.Label, "Condition", g.Condition)
	for j, e := range g.Entries {
		switch x := e.(type) {
		case *ir.Comment:
			v.comment(j, x)
		case *ir.Item:
			v.item(j, x)
		default:
			v.nilEntry(j)
		}
	}
}

func (v *validator) item(i int, it *ir.Item) {
	if it == nil {
		v.nilEntry(i)
		return
	}
	v.push("%s[%d]", nameOr(it.Type, "Item"), i)
	defer v.pop()
	if it.Type == "" {
		v.add(MissingField, "item has no type")
	} else {
		v.name("item type", it.Type)
	}
	switch {
	case !it.Op.Valid():
		v.add(MissingField, "item has no operation")
	case it.Spec == "":
		v.add(MissingField, "item has an empty %s", it.Op)
	}
	v.text("spec", it.Spec, "Exclude", it.Exclude, "Condition", it.Condition)
	for _, k := range it.AttrMetadataKeys() {
		if ir.IsItemAttr(k) {
			v.add(Unencodable, "metadata %s collides with a reserved attribute", k)
			continue
		}
		v.name("metadata", k)
		v.text("metadata "+k, it.AttrMetadata[k])
	}
	for _, k := range it.MetadataKeys() {
		v.name("metadata", k)
		v.text("metadata "+k, it.Metadata[k])
	}
}

func (v *validator) importElt(i int, im *ir.Import) {
	if im == nil {
		v.nilEntry(i)
		return
	}
	v.push("Import[%d]", i)
	defer v.pop()
	if im.Project == "" {
		v.add(MissingField, "import has no project")
	}
	v.text(
		"Project", im.Project,
		"Sdk", im.Sdk,
		"Version", im.Version,
		"Condition", im.Condition,
		"Label", im.Label)
}

func (v *validator) importGroup(i int, g *ir.ImportGroup) {
	if g == nil {
		v.nilEntry(i)
		return
	}
	v.push("ImportGroup[%d]", i)
	defer v.pop()
	v.text("Label", g.Label, "Condition", g.Condition)
	for j, e := range g.Entries {
		switch x := e.(type) {
		case *ir.Comment:
			v.comment(j, x)
		case *ir.Import:
			v.importElt(j, x)
		default:
			v.nilEntry(j)
		}
	}
}

func (v *validator) usingTask(i int, u *ir.UsingTask) {
	if u == nil {
		v.nilEntry(i)
		return
	}
	v.push("UsingTask[%d]", i)
	defer v.pop()
	if u.TaskName == "" {
		v.add(MissingField, "using task has no task name")
	}
	if !u.HasSource() {
		v.add(NoTaskSource, "using task names no assembly or task factory")
	}
	v.text(
		"TaskName", u.TaskName,
		"AssemblyFile", u.AssemblyFile,
		"AssemblyName", u.AssemblyName,
		"TaskFactory", u.TaskFactory,
		"Runtime", u.Runtime,
		"Architecture", u.Architecture,
		"Condition", u.Condition)
}

func (v *validator) target(i int, t *ir.Target) {
	if t == nil {
		v.nilEntry(i)
		return
	}
	if t.Name == "" {
		v.push("Target[%d]", i)
		v.add(MissingField, "target has no name")
	} else {
		v.push("Target[%s]", t.Name)
	}
	defer v.pop()
	v.text(
		"Name", t.Name,
		"Condition", t.Condition,
		"Inputs", t.Inputs,
		"Outputs", t.Outputs,
		"Returns", t.Returns,
		"KeepDuplicateOutputs", t.KeepDuplicateOutputs,
		"Label", t.Label)
	v.list("DependsOnTargets", t.DependsOnTargets)
	v.list("BeforeTargets", t.BeforeTargets)
	v.list("AfterTargets", t.AfterTargets)
	for j, e := range t.Elements {
		switch x := e.(type) {
		case *ir.Comment:
			v.comment(j, x)
		case *ir.PropertyGroup:
			v.propertyGroup(j, x)
		case *ir.ItemGroup:
			v.itemGroup(j, x)
		case *ir.Task:
			v.task(j, x)
		case *ir.OnError:
			v.onError(j, x)
		default:
			v.nilEntry(j)
		}
	}
}

func (v *validator) task(i int, t *ir.Task) {
	if t == nil {
		v.nilEntry(i)
		return
	}
	v.push("%s[%d]", nameOr(t.Name, "Task"), i)
	defer v.pop()
	switch {
	case t.Name == "":
		v.add(MissingField, "task has no name")
	case !ir.ValidName(t.Name):
		v.add(Unencodable, "invalid task name %q", t.Name)
	case !ir.IsTaskName(t.Name):
		v.add(Unencodable, "%s cannot be used as a task name", t.Name)
	}
	v.text("Condition", t.Condition, "ContinueOnError", t.ContinueOnError)
	for _, k := range t.ParamNames() {
		if ir.IsTaskAttr(k) {
			v.add(Unencodable, "parameter %s collides with a reserved attribute", k)
			continue
		}
		v.name("parameter", k)
		v.text("parameter "+k, t.Params[k])
	}
	for j, o := range t.Outputs {
		if o == nil {
			v.nilEntry(j)
			continue
		}
		v.push("Output[%d]", j)
		if o.TaskParameter == "" {
			v.add(MissingField, "output has no task parameter")
		}
		if (o.PropertyName == "") == (o.ItemName == "") {
			v.add(OutputDestination, "output needs exactly one of PropertyName or ItemName")
		}
		v.text(
			"TaskParameter", o.TaskParameter,
			"PropertyName", o.PropertyName,
			"ItemName", o.ItemName,
			"Condition", o.Condition)
		v.pop()
	}
}

func (v *validator) onError(i int, o *ir.OnError) {
	if o == nil {
		v.nilEntry(i)
		return
	}
	v.push("OnError[%d]", i)
	defer v.pop()
	if len(o.ExecuteTargets) == 0 {
		v.add(MissingField, "on error has no targets")
	}
	v.list("ExecuteTargets", o.ExecuteTargets)
	v.text("Condition", o.Condition)
}

func (v *validator) choose(i int, c *ir.Choose) {
	if c == nil {
		v.nilEntry(i)
		return
	}
	v.push("Choose[%d]", i)
	defer v.pop()
	if len(c.Whens) == 0 {
		v.add(EmptyChoose, "choose has no when clause")
	}
	for j, w := range c.Whens {
		v.push("When[%d]", j)
		if w == nil {
			v.add(DualView, "nil when clause")
			v.pop()
			continue
		}
		if w.Condition == "" {
			v.add(EmptyCondition, "when clause has no condition")
		}
		v.text("Condition", w.Condition)
		v.clause(&w.Clause)
		v.pop()
	}
	if c.Otherwise != nil {
		v.push("Otherwise")
		v.clause(&c.Otherwise.Clause)
		v.pop()
	}
	v.comments("Trailing", c.Trailing)
}

func (v *validator) clause(cl *ir.Clause) {
	v.comments("Leading", cl.Leading)
	for j, e := range cl.Entries {
		switch x := e.(type) {
		case *ir.Comment:
			v.comment(j, x)
		case *ir.PropertyGroup:
			v.propertyGroup(j, x)
		case *ir.ItemGroup:
			v.itemGroup(j, x)
		case *ir.Choose:
			v.choose(j, x)
		default:
			v.nilEntry(j)
		}
	}
}

func nameOr(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
