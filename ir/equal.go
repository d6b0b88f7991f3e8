package ir

import (
	"maps"
	"slices"
)

// Equal reports whether two projects are structurally equal: the same
// attributes, and the same nodes in the same order with equal contents.
// Properties are compared in the order of PropertyGroup.Sorted since
// their declaration order carries no meaning. Nil and empty collections
// are equal, metadata and parameter maps are compared as sets of
// key/value pairs.
func Equal(a, b *Project) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Sdk == b.Sdk &&
		a.DefaultTargets == b.DefaultTargets &&
		a.InitialTargets == b.InitialTargets &&
		a.ToolsVersion == b.ToolsVersion &&
		a.TreatAsLocalProperty == b.TreatAsLocalProperty &&
		a.Namespace == b.Namespace &&
		a.Label == b.Label &&
		entriesEqual(a.Header, b.Header) &&
		entriesEqual(a.Footer, b.Footer) &&
		entriesEqual(a.Nodes, b.Nodes)
}

func entriesEqual[E Node](a, b []E) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !NodeEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// NodeEqual reports whether a and b are structurally equal nodes.
func NodeEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Comment:
		y := b.(*Comment)
		return bothNil(x, y) || (x != nil && y != nil && x.Text == y.Text)
	case *Property:
		y := b.(*Property)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Name == y.Name && x.Condition == y.Condition && valueEqual(x.Value, y.Value)
	case *PropertyGroup:
		y := b.(*PropertyGroup)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Condition == y.Condition && x.Label == y.Label && entriesEqual(x.Sorted(), y.Sorted())
	case *Item:
		y := b.(*Item)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Type == y.Type && x.Op == y.Op && x.Spec == y.Spec &&
			x.Exclude == y.Exclude && x.Condition == y.Condition &&
			maps.Equal(x.Metadata, y.Metadata) &&
			maps.Equal(x.AttrMetadata, y.AttrMetadata)
	case *ItemGroup:
		y := b.(*ItemGroup)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Condition == y.Condition && x.Label == y.Label && entriesEqual(x.Entries, y.Entries)
	case *Import:
		y := b.(*Import)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return *x == *y
	case *ImportGroup:
		y := b.(*ImportGroup)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Condition == y.Condition && x.Label == y.Label && entriesEqual(x.Entries, y.Entries)
	case *UsingTask:
		y := b.(*UsingTask)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return *x == *y
	case *Target:
		y := b.(*Target)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Name == y.Name && x.Condition == y.Condition &&
			slices.Equal(x.BeforeTargets, y.BeforeTargets) &&
			slices.Equal(x.AfterTargets, y.AfterTargets) &&
			slices.Equal(x.DependsOnTargets, y.DependsOnTargets) &&
			x.Inputs == y.Inputs && x.Outputs == y.Outputs &&
			x.Returns == y.Returns && x.KeepDuplicateOutputs == y.KeepDuplicateOutputs &&
			x.Label == y.Label &&
			entriesEqual(x.Elements, y.Elements)
	case *Task:
		y := b.(*Task)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Name == y.Name && x.Condition == y.Condition &&
			x.ContinueOnError == y.ContinueOnError &&
			maps.Equal(x.Params, y.Params) &&
			entriesEqual(x.Outputs, y.Outputs)
	case *TaskOutput:
		y := b.(*TaskOutput)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return *x == *y
	case *OnError:
		y := b.(*OnError)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Condition == y.Condition && slices.Equal(x.ExecuteTargets, y.ExecuteTargets)
	case *Choose:
		y := b.(*Choose)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		if (x.Otherwise == nil) != (y.Otherwise == nil) {
			return false
		}
		if x.Otherwise != nil && !NodeEqual(x.Otherwise, y.Otherwise) {
			return false
		}
		return entriesEqual(x.Whens, y.Whens) && entriesEqual(x.Trailing, y.Trailing)
	case *When:
		y := b.(*When)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return x.Condition == y.Condition && clauseEqual(&x.Clause, &y.Clause)
	case *Otherwise:
		y := b.(*Otherwise)
		if x == nil || y == nil {
			return bothNil(x, y)
		}
		return clauseEqual(&x.Clause, &y.Clause)
	}
	return false
}

func clauseEqual(a, b *Clause) bool {
	return entriesEqual(a.Leading, b.Leading) && entriesEqual(a.Entries, b.Entries)
}

func valueEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func bothNil[T any](a, b *T) bool {
	return a == nil && b == nil
}
