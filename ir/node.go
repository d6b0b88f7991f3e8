package ir

import "slices"

// Node is implemented by every node in a project tree.
type Node interface {
	Kind() Kind
}

// ProjectNode is a node legal directly under <Project>.
type ProjectNode interface {
	Node
	projectNode()
}

// PropertyEntry is a node legal inside a <PropertyGroup>.
type PropertyEntry interface {
	Node
	propertyEntry()
}

// ItemEntry is a node legal inside an <ItemGroup>.
type ItemEntry interface {
	Node
	itemEntry()
}

// ImportGroupEntry is a node legal inside an <ImportGroup>.
type ImportGroupEntry interface {
	Node
	importGroupEntry()
}

// ClauseEntry is a node legal inside a <When> or <Otherwise>.
type ClauseEntry interface {
	Node
	clauseEntry()
}

// TargetElement is a node legal inside a <Target>.
type TargetElement interface {
	Node
	targetElement()
}

func (*Comment) projectNode()       {}
func (*PropertyGroup) projectNode() {}
func (*ItemGroup) projectNode()     {}
func (*Import) projectNode()        {}
func (*ImportGroup) projectNode()   {}
func (*UsingTask) projectNode()     {}
func (*Target) projectNode()        {}
func (*Choose) projectNode()        {}

func (*Comment) propertyEntry()  {}
func (*Property) propertyEntry() {}

func (*Comment) itemEntry() {}
func (*Item) itemEntry()    {}

func (*Comment) importGroupEntry() {}
func (*Import) importGroupEntry()  {}

func (*Comment) clauseEntry()       {}
func (*PropertyGroup) clauseEntry() {}
func (*ItemGroup) clauseEntry()     {}
func (*Choose) clauseEntry()        {}

func (*Comment) targetElement()       {}
func (*PropertyGroup) targetElement() {}
func (*ItemGroup) targetElement()     {}
func (*Task) targetElement()          {}
func (*OnError) targetElement()       {}

func (*Comment) Kind() Kind       { return CommentKind }
func (*Property) Kind() Kind      { return PropertyKind }
func (*PropertyGroup) Kind() Kind { return PropertyGroupKind }
func (*Item) Kind() Kind          { return ItemKind }
func (*ItemGroup) Kind() Kind     { return ItemGroupKind }
func (*Import) Kind() Kind        { return ImportKind }
func (*ImportGroup) Kind() Kind   { return ImportGroupKind }
func (*UsingTask) Kind() Kind     { return UsingTaskKind }
func (*Target) Kind() Kind        { return TargetKind }
func (*Task) Kind() Kind          { return TaskKind }
func (*TaskOutput) Kind() Kind    { return TaskOutputKind }
func (*OnError) Kind() Kind       { return OnErrorKind }
func (*Choose) Kind() Kind        { return ChooseKind }
func (*When) Kind() Kind          { return WhenKind }
func (*Otherwise) Kind() Kind     { return OtherwiseKind }
func (*Project) Kind() Kind       { return ProjectKind }

// collect returns the entries of type T in order. Flat views of
// containers are always computed this way, never stored.
func collect[T any, E Node](entries []E) []T {
	var res []T
	for _, e := range entries {
		if t, ok := any(e).(T); ok {
			res = append(res, t)
		}
	}
	return res
}

func remove[E comparable](entries []E, e E) ([]E, bool) {
	i := slices.Index(entries, e)
	if i == -1 {
		return entries, false
	}
	return slices.Delete(entries, i, i+1), true
}
