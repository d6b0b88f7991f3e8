package ir

import "strings"

// Target is a <Target>.
type Target struct {
	Name                 string
	Condition            string
	BeforeTargets        []string
	AfterTargets         []string
	DependsOnTargets     []string
	Inputs               string
	Outputs              string
	Returns              string
	KeepDuplicateOutputs string
	Label                string

	Elements []TargetElement
}

func NewTarget(name string) *Target {
	return &Target{Name: name}
}

func (t *Target) WithCondition(c string) *Target {
	t.Condition = c
	return t
}

func (t *Target) Before(targets ...string) *Target {
	t.BeforeTargets = append(t.BeforeTargets, targets...)
	return t
}

func (t *Target) After(targets ...string) *Target {
	t.AfterTargets = append(t.AfterTargets, targets...)
	return t
}

func (t *Target) DependsOn(targets ...string) *Target {
	t.DependsOnTargets = append(t.DependsOnTargets, targets...)
	return t
}

func (t *Target) Append(elts ...TargetElement) *Target {
	t.Elements = append(t.Elements, elts...)
	return t
}

func (t *Target) Remove(e TargetElement) bool {
	var ok bool
	t.Elements, ok = remove(t.Elements, e)
	return ok
}

func (t *Target) AddTask(name string) *Task {
	tk := NewTask(name)
	t.Append(tk)
	return tk
}

func (t *Target) AddPropertyGroup() *PropertyGroup {
	g := &PropertyGroup{}
	t.Append(g)
	return g
}

func (t *Target) AddItemGroup() *ItemGroup {
	g := &ItemGroup{}
	t.Append(g)
	return g
}

func (t *Target) AddComment(text string) *Comment {
	c := NewComment(text)
	t.Append(c)
	return c
}

func (t *Target) AddOnError(targets ...string) *OnError {
	o := &OnError{ExecuteTargets: targets}
	t.Append(o)
	return o
}

func (t *Target) Tasks() []*Task                   { return collect[*Task](t.Elements) }
func (t *Target) PropertyGroups() []*PropertyGroup { return collect[*PropertyGroup](t.Elements) }
func (t *Target) ItemGroups() []*ItemGroup         { return collect[*ItemGroup](t.Elements) }

// OnError is an <OnError> element. It runs ExecuteTargets when a task of
// the enclosing target fails.
type OnError struct {
	ExecuteTargets []string
	Condition      string
}

// SplitList splits a ";"-separated attribute value, trimming blanks and
// dropping empty entries.
func SplitList(v string) []string {
	var res []string
	for _, part := range strings.Split(v, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		res = append(res, part)
	}
	return res
}

func JoinList(vs []string) string {
	return strings.Join(vs, ";")
}
