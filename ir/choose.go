package ir

// Choose is a <Choose>: When clauses are tried in order, Otherwise applies
// if none matched.
//
// Comments directly inside <Choose> are kept as the Leading comments of
// the clause they precede, or in Trailing when no clause follows.
type Choose struct {
	Whens     []*When
	Otherwise *Otherwise
	Trailing  []*Comment
}

func (c *Choose) AddWhen(condition string) *When {
	w := &When{Condition: condition}
	c.Whens = append(c.Whens, w)
	return w
}

// SetOtherwise creates the Otherwise clause if needed and returns it.
func (c *Choose) SetOtherwise() *Otherwise {
	if c.Otherwise == nil {
		c.Otherwise = &Otherwise{}
	}
	return c.Otherwise
}

// Clause is the body shared by <When> and <Otherwise>.
type Clause struct {
	Leading []*Comment
	Entries []ClauseEntry
}

func (c *Clause) Append(entries ...ClauseEntry) {
	c.Entries = append(c.Entries, entries...)
}

func (c *Clause) Remove(e ClauseEntry) bool {
	var ok bool
	c.Entries, ok = remove(c.Entries, e)
	return ok
}

func (c *Clause) AddPropertyGroup() *PropertyGroup {
	g := &PropertyGroup{}
	c.Append(g)
	return g
}

func (c *Clause) AddItemGroup() *ItemGroup {
	g := &ItemGroup{}
	c.Append(g)
	return g
}

func (c *Clause) AddChoose() *Choose {
	ch := &Choose{}
	c.Append(ch)
	return ch
}

func (c *Clause) AddComment(text string) *Comment {
	cm := NewComment(text)
	c.Append(cm)
	return cm
}

func (c *Clause) PropertyGroups() []*PropertyGroup { return collect[*PropertyGroup](c.Entries) }
func (c *Clause) ItemGroups() []*ItemGroup         { return collect[*ItemGroup](c.Entries) }
func (c *Clause) Chooses() []*Choose               { return collect[*Choose](c.Entries) }

type When struct {
	Condition string
	Clause
}

type Otherwise struct {
	Clause
}
