package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Operation is what an item element does with its spec.
type Operation int

const (
	Include Operation = iota
	Remove
	Update
)

func (o Operation) String() string {
	switch o {
	case Include:
		return "Include"
	case Remove:
		return "Remove"
	case Update:
		return "Update"
	default:
		return fmt.Sprintf("<bad operation %d>", int(o))
	}
}

func (o Operation) Valid() bool {
	return o >= Include && o <= Update
}

func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("bad operation %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Operation) UnmarshalText(d []byte) error {
	op, err := ParseOperation(string(d))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

func ParseOperation(v string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == v {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unrecognized item operation %q", v)
}

func Operations() []Operation {
	return []Operation{Include, Remove, Update}
}

// ItemGroup is an <ItemGroup>. Entries are never reordered.
type ItemGroup struct {
	Condition string
	Label     string
	Entries   []ItemEntry
}

func (g *ItemGroup) WithCondition(c string) *ItemGroup {
	g.Condition = c
	return g
}

func (g *ItemGroup) WithLabel(l string) *ItemGroup {
	g.Label = l
	return g
}

func (g *ItemGroup) Append(entries ...ItemEntry) *ItemGroup {
	g.Entries = append(g.Entries, entries...)
	return g
}

func (g *ItemGroup) Remove(e ItemEntry) bool {
	var ok bool
	g.Entries, ok = remove(g.Entries, e)
	return ok
}

// Add appends an Include item and returns it.
func (g *ItemGroup) Add(typ, spec string) *Item {
	it := NewItem(typ, spec)
	g.Append(it)
	return it
}

func (g *ItemGroup) AddComment(text string) *Comment {
	c := NewComment(text)
	g.Append(c)
	return c
}

func (g *ItemGroup) Items() []*Item { return collect[*Item](g.Entries) }

// Item is an element inside an <ItemGroup>.
//
// Metadata holds metadata written as child elements and AttrMetadata
// metadata written as attributes. The two are independent: a key may be
// present in both.
type Item struct {
	Type      string
	Op        Operation
	Spec      string
	Exclude   string
	Condition string

	Metadata     map[string]string
	AttrMetadata map[string]string
}

func NewItem(typ, spec string) *Item {
	return &Item{Type: typ, Op: Include, Spec: spec}
}

func NewRemoveItem(typ, spec string) *Item {
	return &Item{Type: typ, Op: Remove, Spec: spec}
}

func NewUpdateItem(typ, spec string) *Item {
	return &Item{Type: typ, Op: Update, Spec: spec}
}

func (it *Item) WithExclude(e string) *Item {
	it.Exclude = e
	return it
}

func (it *Item) WithCondition(c string) *Item {
	it.Condition = c
	return it
}

// SetMetadata sets element-style metadata.
func (it *Item) SetMetadata(key, value string) *Item {
	if it.Metadata == nil {
		it.Metadata = map[string]string{}
	}
	it.Metadata[key] = value
	return it
}

// SetAttrMetadata sets attribute-style metadata.
func (it *Item) SetAttrMetadata(key, value string) *Item {
	if it.AttrMetadata == nil {
		it.AttrMetadata = map[string]string{}
	}
	it.AttrMetadata[key] = value
	return it
}

// MetadataKeys returns the element-style metadata keys in ascending order.
func (it *Item) MetadataKeys() []string {
	return slices.Sorted(maps.Keys(it.Metadata))
}

// AttrMetadataKeys returns the attribute-style metadata keys in
// ascending order.
func (it *Item) AttrMetadataKeys() []string {
	return slices.Sorted(maps.Keys(it.AttrMetadata))
}
