package ir

import (
	"slices"
	"strings"
)

// PropertyGroup is a <PropertyGroup>.
type PropertyGroup struct {
	Condition string
	Label     string
	Entries   []PropertyEntry
}

func (g *PropertyGroup) WithCondition(c string) *PropertyGroup {
	g.Condition = c
	return g
}

func (g *PropertyGroup) WithLabel(l string) *PropertyGroup {
	g.Label = l
	return g
}

func (g *PropertyGroup) Append(entries ...PropertyEntry) *PropertyGroup {
	g.Entries = append(g.Entries, entries...)
	return g
}

func (g *PropertyGroup) Remove(e PropertyEntry) bool {
	var ok bool
	g.Entries, ok = remove(g.Entries, e)
	return ok
}

// Add appends a property and returns it.
func (g *PropertyGroup) Add(name, value string) *Property {
	p := NewProperty(name, value)
	g.Append(p)
	return p
}

func (g *PropertyGroup) AddComment(text string) *Comment {
	c := NewComment(text)
	g.Append(c)
	return c
}

func (g *PropertyGroup) Properties() []*Property { return collect[*Property](g.Entries) }

// Get returns the last property named name, or nil.
func (g *PropertyGroup) Get(name string) *Property {
	var res *Property
	for _, p := range g.Properties() {
		if p != nil && p.Name == name {
			res = p
		}
	}
	return res
}

// Property is an element inside a <PropertyGroup>: the element name is
// the property name and its character data is the value.
//
// A nil Value means the value is missing, which is a structural fault;
// an empty value is represented by a pointer to "".
type Property struct {
	Name      string
	Value     *string
	Condition string
}

func NewProperty(name, value string) *Property {
	return &Property{Name: name, Value: &value}
}

func (p *Property) WithCondition(c string) *Property {
	p.Condition = c
	return p
}

// Text returns the value, or "" if it is missing.
func (p *Property) Text() string {
	if p.Value == nil {
		return ""
	}
	return *p.Value
}

// Sorted returns the entries of g with each run of properties between
// comments sorted by name. The sort is stable, so among properties with
// the same name the last one still wins.
func (g *PropertyGroup) Sorted() []PropertyEntry {
	res := slices.Clone(g.Entries)
	start := 0
	for i := 0; i <= len(res); i++ {
		if i < len(res) {
			if p, ok := res[i].(*Property); ok && p != nil {
				continue
			}
		}
		slices.SortStableFunc(res[start:i], func(a, b PropertyEntry) int {
			return strings.Compare(a.(*Property).Name, b.(*Property).Name)
		})
		start = i + 1
	}
	return res
}
