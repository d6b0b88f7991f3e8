package ir

import "fmt"

type Kind int

const (
	CommentKind Kind = iota
	PropertyKind
	PropertyGroupKind
	ItemKind
	ItemGroupKind
	ImportKind
	ImportGroupKind
	UsingTaskKind
	TargetKind
	TaskKind
	TaskOutputKind
	OnErrorKind
	ChooseKind
	WhenKind
	OtherwiseKind
	ProjectKind
)

var kindNames = map[Kind]string{
	CommentKind:       "Comment",
	PropertyKind:      "Property",
	PropertyGroupKind: "PropertyGroup",
	ItemKind:          "Item",
	ItemGroupKind:     "ItemGroup",
	ImportKind:        "Import",
	ImportGroupKind:   "ImportGroup",
	UsingTaskKind:     "UsingTask",
	TargetKind:        "Target",
	TaskKind:          "Task",
	TaskOutputKind:    "Output",
	OnErrorKind:       "OnError",
	ChooseKind:        "Choose",
	WhenKind:          "When",
	OtherwiseKind:     "Otherwise",
	ProjectKind:       "Project",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		CommentKind,
		PropertyKind,
		PropertyGroupKind,
		ItemKind,
		ItemGroupKind,
		ImportKind,
		ImportGroupKind,
		UsingTaskKind,
		TargetKind,
		TaskKind,
		TaskOutputKind,
		OnErrorKind,
		ChooseKind,
		WhenKind,
		OtherwiseKind,
		ProjectKind,
	}
}

// Element returns the fixed element name of nodes of kind k, or "" when
// the element name is data (properties, items, tasks) or there is no
// element (comments).
func (k Kind) Element() string {
	switch k {
	case CommentKind, PropertyKind, ItemKind, TaskKind:
		return ""
	default:
		return k.String()
	}
}
