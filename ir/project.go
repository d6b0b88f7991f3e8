package ir

import "slices"

// Project is the root of a project tree.
//
// Nodes is the only storage of the top-level nodes; the typed views
// (PropertyGroups, Targets, ...) filter it on every call.
type Project struct {
	Sdk                  string
	DefaultTargets       string
	InitialTargets       string
	ToolsVersion         string
	TreatAsLocalProperty string
	// Namespace is the value of the xmlns attribute.
	Namespace string
	Label     string

	// Header and Footer hold the comments preceding and following
	// <Project>.
	Header []*Comment
	Footer []*Comment
	Nodes  []ProjectNode
}

func New() *Project {
	return &Project{}
}

func (p *Project) Append(nodes ...ProjectNode) *Project {
	p.Nodes = append(p.Nodes, nodes...)
	return p
}

// Insert places n at index i of Nodes, clamping i to the valid range.
func (p *Project) Insert(i int, n ProjectNode) {
	i = max(0, min(i, len(p.Nodes)))
	p.Nodes = slices.Insert(p.Nodes, i, n)
}

// Remove removes the first occurrence of n, reporting whether it was found.
func (p *Project) Remove(n ProjectNode) bool {
	var ok bool
	p.Nodes, ok = remove(p.Nodes, n)
	return ok
}

func (p *Project) AddComment(text string) *Comment {
	c := NewComment(text)
	p.Append(c)
	return c
}

func (p *Project) AddPropertyGroup() *PropertyGroup {
	g := &PropertyGroup{}
	p.Append(g)
	return g
}

func (p *Project) AddItemGroup() *ItemGroup {
	g := &ItemGroup{}
	p.Append(g)
	return g
}

func (p *Project) AddImport(project string) *Import {
	im := NewImport(project)
	p.Append(im)
	return im
}

func (p *Project) AddImportGroup() *ImportGroup {
	g := &ImportGroup{}
	p.Append(g)
	return g
}

func (p *Project) AddUsingTask(taskName string) *UsingTask {
	u := &UsingTask{TaskName: taskName}
	p.Append(u)
	return u
}

func (p *Project) AddTarget(name string) *Target {
	t := NewTarget(name)
	p.Append(t)
	return t
}

func (p *Project) AddChoose() *Choose {
	c := &Choose{}
	p.Append(c)
	return c
}

func (p *Project) Comments() []*Comment             { return collect[*Comment](p.Nodes) }
func (p *Project) PropertyGroups() []*PropertyGroup { return collect[*PropertyGroup](p.Nodes) }
func (p *Project) ItemGroups() []*ItemGroup         { return collect[*ItemGroup](p.Nodes) }
func (p *Project) Imports() []*Import               { return collect[*Import](p.Nodes) }
func (p *Project) ImportGroups() []*ImportGroup     { return collect[*ImportGroup](p.Nodes) }
func (p *Project) UsingTasks() []*UsingTask         { return collect[*UsingTask](p.Nodes) }
func (p *Project) Targets() []*Target               { return collect[*Target](p.Nodes) }
func (p *Project) Chooses() []*Choose               { return collect[*Choose](p.Nodes) }

// Target returns the last target named name. Later definitions of a
// target replace earlier ones in the host tool.
func (p *Project) Target(name string) *Target {
	var res *Target
	for _, t := range p.Targets() {
		if t != nil && t.Name == name {
			res = t
		}
	}
	return res
}
