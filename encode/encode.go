package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/projtree/ir"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>`

type EncState struct {
	depth, indent int
	header        bool
	path          []string

	Color func(ir.Kind, ColorAttr, string) string
}

// Encode writes the canonical rendering of p to w. If p cannot be
// rendered, Encode returns a *ContractError and w is left untouched.
func Encode(p *ir.Project, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(p, buf, es); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encode(p *ir.Project, w *bytes.Buffer, es *EncState) error {
	if p == nil {
		return es.errorf("nil project")
	}
	if es.header {
		w.WriteString(xmlHeader + "\n")
	}
	for _, c := range p.Header {
		if err := encodeComment(c, w, es); err != nil {
			return err
		}
	}
	es.push("Project")
	as := optAttrs(
		"Sdk", p.Sdk,
		"ToolsVersion", p.ToolsVersion,
		"DefaultTargets", p.DefaultTargets,
		"InitialTargets", p.InitialTargets,
		"TreatAsLocalProperty", p.TreatAsLocalProperty,
		"Label", p.Label,
		"xmlns", p.Namespace)
	if err := writeOpen(w, es, ir.ProjectKind, "Project", as, len(p.Nodes) == 0); err != nil {
		return err
	}
	for _, n := range p.Nodes {
		if err := encodeProjectNode(n, w, es); err != nil {
			return err
		}
	}
	if len(p.Nodes) != 0 {
		writeClose(w, es, ir.ProjectKind, "Project")
	}
	es.pop()
	for _, c := range p.Footer {
		if err := encodeComment(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeProjectNode(n ir.ProjectNode, w *bytes.Buffer, es *EncState) error {
	switch x := n.(type) {
	case *ir.Comment:
		return encodeComment(x, w, es)
	case *ir.PropertyGroup:
		return encodePropertyGroup(x, w, es)
	case *ir.ItemGroup:
		return encodeItemGroup(x, w, es)
	case *ir.Import:
		return encodeImport(x, w, es)
	case *ir.ImportGroup:
		return encodeImportGroup(x, w, es)
	case *ir.UsingTask:
		return encodeUsingTask(x, w, es)
	case *ir.Target:
		return encodeTarget(x, w, es)
	case *ir.Choose:
		return encodeChoose(x, w, es)
	}
	return es.errorf("nil entry")
}

func encodeComment(c *ir.Comment, w *bytes.Buffer, es *EncState) error {
	if c == nil {
		return es.errorf("nil comment")
	}
	if !ir.ValidComment(c.Text) {
		return es.errorf("comment %q cannot be written", c.Text)
	}
	writeIndent(w, es)
	w.WriteString(paint(es, ir.CommentKind, CommentColor, "<!--"+c.Text+"-->"))
	w.WriteString("\n")
	return nil
}

func encodePropertyGroup(g *ir.PropertyGroup, w *bytes.Buffer, es *EncState) error {
	if g == nil {
		return es.errorf("nil property group")
	}
	es.push("PropertyGroup")
	defer es.pop()
	for _, e := range g.Entries {
		if isNil(e) {
			return es.errorf("nil entry")
		}
	}
	as := optAttrs("Label", g.Label, "Condition", g.Condition)
	if err := writeOpen(w, es, ir.PropertyGroupKind, "PropertyGroup", as, len(g.Entries) == 0); err != nil {
		return err
	}
	if len(g.Entries) == 0 {
		return nil
	}
	for _, e := range g.Sorted() {
		var err error
		switch x := e.(type) {
		case *ir.Comment:
			err = encodeComment(x, w, es)
		case *ir.Property:
			err = encodeProperty(x, w, es)
		}
		if err != nil {
			return err
		}
	}
	writeClose(w, es, ir.PropertyGroupKind, "PropertyGroup")
	return nil
}

func encodeProperty(p *ir.Property, w *bytes.Buffer, es *EncState) error {
	es.push(p.Name)
	defer es.pop()
	if err := checkName(es, "property", p.Name); err != nil {
		return err
	}
	if p.Value == nil {
		return es.errorf("property %s has no value", p.Name)
	}
	return writeText(w, es, ir.PropertyKind, p.Name, optAttrs("Condition", p.Condition), *p.Value)
}

func encodeItemGroup(g *ir.ItemGroup, w *bytes.Buffer, es *EncState) error {
	if g == nil {
		return es.errorf("nil item group")
	}
	es.push("ItemGroup")
	defer es.pop()
	as := optAttrs("Label", g.Label, "Condition", g.Condition)
	if err := writeOpen(w, es, ir.ItemGroupKind, "ItemGroup", as, len(g.Entries) == 0); err != nil {
		return err
	}
	if len(g.Entries) == 0 {
		return nil
	}
	for _, e := range g.Entries {
		var err error
		switch x := e.(type) {
		case *ir.Comment:
			err = encodeComment(x, w, es)
		case *ir.Item:
			err = encodeItem(x, w, es)
		default:
			err = es.errorf("nil entry")
		}
		if err != nil {
			return err
		}
	}
	writeClose(w, es, ir.ItemGroupKind, "ItemGroup")
	return nil
}

func encodeItem(it *ir.Item, w *bytes.Buffer, es *EncState) error {
	if it == nil {
		return es.errorf("nil item")
	}
	es.push(it.Type)
	defer es.pop()
	if err := checkName(es, "item type", it.Type); err != nil {
		return err
	}
	if !it.Op.Valid() {
		return es.errorf("invalid item operation %d", it.Op)
	}
	if it.Spec == "" {
		return es.errorf("empty %s", it.Op)
	}
	as := []attr{{it.Op.String(), it.Spec}}
	as = append(as, optAttrs("Exclude", it.Exclude, "Condition", it.Condition)...)
	for _, k := range it.AttrMetadataKeys() {
		if ir.IsItemAttr(k) {
			return es.errorf("metadata %s collides with a reserved attribute", k)
		}
		as = append(as, attr{k, it.AttrMetadata[k]})
	}
	keys := it.MetadataKeys()
	if err := writeOpen(w, es, ir.ItemKind, it.Type, as, len(keys) == 0); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	for _, k := range keys {
		es.push(k)
		err := checkName(es, "metadata", k)
		if err == nil {
			err = writeText(w, es, ir.ItemKind, k, nil, it.Metadata[k])
		}
		es.pop()
		if err != nil {
			return err
		}
	}
	writeClose(w, es, ir.ItemKind, it.Type)
	return nil
}

func encodeImport(im *ir.Import, w *bytes.Buffer, es *EncState) error {
	if im == nil {
		return es.errorf("nil import")
	}
	es.push("Import")
	defer es.pop()
	if im.Project == "" {
		return es.errorf("import has no project")
	}
	as := optAttrs(
		"Project", im.Project,
		"Sdk", im.Sdk,
		"Version", im.Version,
		"Condition", im.Condition,
		"Label", im.Label)
	return writeOpen(w, es, ir.ImportKind, "Import", as, true)
}

func encodeImportGroup(g *ir.ImportGroup, w *bytes.Buffer, es *EncState) error {
	if g == nil {
		return es.errorf("nil import group")
	}
	es.push("ImportGroup")
	defer es.pop()
	as := optAttrs("Label", g.Label, "Condition", g.Condition)
	if err := writeOpen(w, es, ir.ImportGroupKind, "ImportGroup", as, len(g.Entries) == 0); err != nil {
		return err
	}
	if len(g.Entries) == 0 {
		return nil
	}
	for _, e := range g.Entries {
		var err error
		switch x := e.(type) {
		case *ir.Comment:
			err = encodeComment(x, w, es)
		case *ir.Import:
			err = encodeImport(x, w, es)
		default:
			err = es.errorf("nil entry")
		}
		if err != nil {
			return err
		}
	}
	writeClose(w, es, ir.ImportGroupKind, "ImportGroup")
	return nil
}

func encodeUsingTask(u *ir.UsingTask, w *bytes.Buffer, es *EncState) error {
	if u == nil {
		return es.errorf("nil using task")
	}
	es.push("UsingTask")
	defer es.pop()
	if u.TaskName == "" {
		return es.errorf("using task has no task name")
	}
	if !u.HasSource() {
		return es.errorf("using task %s has no assembly or factory", u.TaskName)
	}
	as := optAttrs(
		"TaskName", u.TaskName,
		"AssemblyFile", u.AssemblyFile,
		"AssemblyName", u.AssemblyName,
		"TaskFactory", u.TaskFactory,
		"Runtime", u.Runtime,
		"Architecture", u.Architecture,
		"Condition", u.Condition)
	return writeOpen(w, es, ir.UsingTaskKind, "UsingTask", as, true)
}

func encodeTarget(t *ir.Target, w *bytes.Buffer, es *EncState) error {
	if t == nil {
		return es.errorf("nil target")
	}
	es.push("Target")
	defer es.pop()
	if t.Name == "" {
		return es.errorf("target has no name")
	}
	for _, l := range []struct {
		name string
		vs   []string
	}{
		{"DependsOnTargets", t.DependsOnTargets},
		{"BeforeTargets", t.BeforeTargets},
		{"AfterTargets", t.AfterTargets},
	} {
		if err := checkList(es, l.name, l.vs); err != nil {
			return err
		}
	}
	as := optAttrs(
		"Name", t.Name,
		"Condition", t.Condition,
		"DependsOnTargets", ir.JoinList(t.DependsOnTargets),
		"BeforeTargets", ir.JoinList(t.BeforeTargets),
		"AfterTargets", ir.JoinList(t.AfterTargets),
		"Inputs", t.Inputs,
		"Outputs", t.Outputs,
		"Returns", t.Returns,
		"KeepDuplicateOutputs", t.KeepDuplicateOutputs,
		"Label", t.Label)
	if err := writeOpen(w, es, ir.TargetKind, "Target", as, len(t.Elements) == 0); err != nil {
		return err
	}
	if len(t.Elements) == 0 {
		return nil
	}
	for _, e := range t.Elements {
		var err error
		switch x := e.(type) {
		case *ir.Comment:
			err = encodeComment(x, w, es)
		case *ir.PropertyGroup:
			err = encodePropertyGroup(x, w, es)
		case *ir.ItemGroup:
			err = encodeItemGroup(x, w, es)
		case *ir.Task:
			err = encodeTask(x, w, es)
		case *ir.OnError:
			err = encodeOnError(x, w, es)
		default:
			err = es.errorf("nil entry")
		}
		if err != nil {
			return err
		}
	}
	writeClose(w, es, ir.TargetKind, "Target")
	return nil
}

func encodeTask(t *ir.Task, w *bytes.Buffer, es *EncState) error {
	if t == nil {
		return es.errorf("nil task")
	}
	es.push(t.Name)
	defer es.pop()
	if err := checkName(es, "task", t.Name); err != nil {
		return err
	}
	if !ir.IsTaskName(t.Name) {
		return es.errorf("%s cannot be used as a task name", t.Name)
	}
	as := optAttrs("Condition", t.Condition, "ContinueOnError", t.ContinueOnError)
	for _, k := range t.ParamNames() {
		if ir.IsTaskAttr(k) {
			return es.errorf("parameter %s collides with a reserved attribute", k)
		}
		as = append(as, attr{k, t.Params[k]})
	}
	if err := writeOpen(w, es, ir.TaskKind, t.Name, as, len(t.Outputs) == 0); err != nil {
		return err
	}
	if len(t.Outputs) == 0 {
		return nil
	}
	for _, o := range t.Outputs {
		if err := encodeOutput(o, w, es); err != nil {
			return err
		}
	}
	writeClose(w, es, ir.TaskKind, t.Name)
	return nil
}

func encodeOutput(o *ir.TaskOutput, w *bytes.Buffer, es *EncState) error {
	if o == nil {
		return es.errorf("nil output")
	}
	es.push("Output")
	defer es.pop()
	if o.TaskParameter == "" {
		return es.errorf("output has no task parameter")
	}
	if (o.PropertyName == "") == (o.ItemName == "") {
		return es.errorf("output must have exactly one of PropertyName or ItemName")
	}
	as := optAttrs(
		"TaskParameter", o.TaskParameter,
		"PropertyName", o.PropertyName,
		"ItemName", o.ItemName,
		"Condition", o.Condition)
	return writeOpen(w, es, ir.TaskOutputKind, "Output", as, true)
}

func encodeOnError(o *ir.OnError, w *bytes.Buffer, es *EncState) error {
	if o == nil {
		return es.errorf("nil on error")
	}
	es.push("OnError")
	defer es.pop()
	if len(o.ExecuteTargets) == 0 {
		return es.errorf("on error has no targets")
	}
	if err := checkList(es, "ExecuteTargets", o.ExecuteTargets); err != nil {
		return err
	}
	as := optAttrs("ExecuteTargets", ir.JoinList(o.ExecuteTargets), "Condition", o.Condition)
	return writeOpen(w, es, ir.OnErrorKind, "OnError", as, true)
}

func encodeChoose(c *ir.Choose, w *bytes.Buffer, es *EncState) error {
	if c == nil {
		return es.errorf("nil choose")
	}
	es.push("Choose")
	defer es.pop()
	if len(c.Whens) == 0 {
		return es.errorf("choose has no when clause")
	}
	if err := writeOpen(w, es, ir.ChooseKind, "Choose", nil, false); err != nil {
		return err
	}
	for _, wh := range c.Whens {
		if wh == nil {
			return es.errorf("nil when clause")
		}
		if wh.Condition == "" {
			es.push("When")
			err := es.errorf("when clause has no condition")
			es.pop()
			return err
		}
		as := optAttrs("Condition", wh.Condition)
		if err := encodeClause(&wh.Clause, ir.WhenKind, as, w, es); err != nil {
			return err
		}
	}
	if c.Otherwise != nil {
		if err := encodeClause(&c.Otherwise.Clause, ir.OtherwiseKind, nil, w, es); err != nil {
			return err
		}
	}
	for _, cm := range c.Trailing {
		if err := encodeComment(cm, w, es); err != nil {
			return err
		}
	}
	writeClose(w, es, ir.ChooseKind, "Choose")
	return nil
}

func encodeClause(cl *ir.Clause, k ir.Kind, as []attr, w *bytes.Buffer, es *EncState) error {
	for _, cm := range cl.Leading {
		if err := encodeComment(cm, w, es); err != nil {
			return err
		}
	}
	name := k.Element()
	es.push(name)
	defer es.pop()
	if err := writeOpen(w, es, k, name, as, len(cl.Entries) == 0); err != nil {
		return err
	}
	if len(cl.Entries) == 0 {
		return nil
	}
	for _, e := range cl.Entries {
		var err error
		switch x := e.(type) {
		case *ir.Comment:
			err = encodeComment(x, w, es)
		case *ir.PropertyGroup:
			err = encodePropertyGroup(x, w, es)
		case *ir.ItemGroup:
			err = encodeItemGroup(x, w, es)
		case *ir.Choose:
			err = encodeChoose(x, w, es)
		default:
			err = es.errorf("nil entry")
		}
		if err != nil {
			return err
		}
	}
	writeClose(w, es, k, name)
	return nil
}

// Writing helpers

type attr struct {
	name, value string
}

// optAttrs pairs up names and values, leaving out empty values.
func optAttrs(kvs ...string) []attr {
	var res []attr
	for i := 0; i+1 < len(kvs); i += 2 {
		if kvs[i+1] == "" {
			continue
		}
		res = append(res, attr{kvs[i], kvs[i+1]})
	}
	return res
}

func writeIndent(w *bytes.Buffer, es *EncState) {
	w.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func writeTag(w *bytes.Buffer, es *EncState, k ir.Kind, name string, as []attr) {
	w.WriteString(paint(es, k, SepColor, "<"))
	w.WriteString(paint(es, k, TagColor, name))
	for _, a := range as {
		w.WriteString(" ")
		w.WriteString(paint(es, k, FieldColor, a.name))
		w.WriteString(paint(es, k, SepColor, "="))
		w.WriteString(paint(es, k, ValueColor, `"`+attrEscaper.Replace(a.value)+`"`))
	}
}

// writeOpen writes a start tag on its own line, or a self closed tag if
// empty is set.
func writeOpen(w *bytes.Buffer, es *EncState, k ir.Kind, name string, as []attr, empty bool) error {
	if err := checkAttrs(es, as); err != nil {
		return err
	}
	writeIndent(w, es)
	writeTag(w, es, k, name, as)
	if empty {
		w.WriteString(paint(es, k, SepColor, " />") + "\n")
		return nil
	}
	w.WriteString(paint(es, k, SepColor, ">") + "\n")
	es.depth++
	return nil
}

func writeClose(w *bytes.Buffer, es *EncState, k ir.Kind, name string) {
	es.depth--
	writeIndent(w, es)
	w.WriteString(paint(es, k, SepColor, "</") + paint(es, k, TagColor, name) + paint(es, k, SepColor, ">") + "\n")
}

// writeText writes an element whose content is character data.
func writeText(w *bytes.Buffer, es *EncState, k ir.Kind, name string, as []attr, text string) error {
	if text == "" {
		return writeOpen(w, es, k, name, as, true)
	}
	if !ir.ValidText(text) {
		return es.errorf("value of %s contains characters that cannot be written", name)
	}
	if err := checkAttrs(es, as); err != nil {
		return err
	}
	writeIndent(w, es)
	writeTag(w, es, k, name, as)
	w.WriteString(paint(es, k, SepColor, ">"))
	w.WriteString(paint(es, k, ValueColor, textEscaper.Replace(text)))
	w.WriteString(paint(es, k, SepColor, "</") + paint(es, k, TagColor, name) + paint(es, k, SepColor, ">") + "\n")
	return nil
}

func paint(es *EncState, k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r", "&#xD;")

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\r", "&#xD;",
	"\n", "&#xA;",
	"\t", "&#x9;")

// Checks

func (es *EncState) push(name string) { es.path = append(es.path, name) }
func (es *EncState) pop()             { es.path = es.path[:len(es.path)-1] }

func (es *EncState) errorf(format string, args ...any) error {
	return &ContractError{
		Path:   "/" + strings.Join(es.path, "/"),
		Reason: fmt.Sprintf(format, args...),
	}
}

func checkName(es *EncState, what, name string) error {
	if !ir.ValidName(name) {
		return es.errorf("invalid %s name %q", what, name)
	}
	return nil
}

func checkAttrs(es *EncState, as []attr) error {
	for _, a := range as {
		if err := checkName(es, "attribute", a.name); err != nil {
			return err
		}
		if !ir.ValidText(a.value) {
			return es.errorf("attribute %s contains characters that cannot be written", a.name)
		}
	}
	return nil
}

// checkList checks that the entries of a ";"-separated list attribute
// survive being joined and split again.
func checkList(es *EncState, name string, vs []string) error {
	for _, v := range vs {
		if !ir.ValidListEntry(v) {
			return es.errorf("invalid %s entry %q", name, v)
		}
	}
	return nil
}

func isNil(e ir.PropertyEntry) bool {
	switch x := e.(type) {
	case *ir.Comment:
		return x == nil
	case *ir.Property:
		return x == nil
	}
	return true
}
