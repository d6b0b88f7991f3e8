package ir

// Import is an <Import>. Sdk optionally qualifies Project with the SDK
// package that provides it.
type Import struct {
	Project   string
	Sdk       string
	Version   string
	Condition string
	Label     string
}

func NewImport(project string) *Import {
	return &Import{Project: project}
}

func (im *Import) WithCondition(c string) *Import {
	im.Condition = c
	return im
}

func (im *Import) WithSdk(sdk string) *Import {
	im.Sdk = sdk
	return im
}

// ImportGroup is an <ImportGroup>.
type ImportGroup struct {
	Condition string
	Label     string
	Entries   []ImportGroupEntry
}

func (g *ImportGroup) WithCondition(c string) *ImportGroup {
	g.Condition = c
	return g
}

func (g *ImportGroup) Append(entries ...ImportGroupEntry) *ImportGroup {
	g.Entries = append(g.Entries, entries...)
	return g
}

func (g *ImportGroup) Remove(e ImportGroupEntry) bool {
	var ok bool
	g.Entries, ok = remove(g.Entries, e)
	return ok
}

func (g *ImportGroup) Add(project string) *Import {
	im := NewImport(project)
	g.Append(im)
	return im
}

func (g *ImportGroup) AddComment(text string) *Comment {
	c := NewComment(text)
	g.Append(c)
	return c
}

func (g *ImportGroup) Imports() []*Import { return collect[*Import](g.Entries) }
