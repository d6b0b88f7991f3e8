package validate

import "fmt"

// Code classifies a Violation.
type Code int

const (
	// DualView reports a nil entry, which makes the ordered entries and
	// the typed views disagree.
	DualView Code = iota
	// MissingField reports a required field left empty.
	MissingField
	// EmptyChoose reports a Choose without When clauses.
	EmptyChoose
	// EmptyCondition reports a When clause without a condition.
	EmptyCondition
	// OutputDestination reports a task output without exactly one of
	// PropertyName and ItemName.
	OutputDestination
	// NoTaskSource reports a UsingTask that names neither an assembly nor
	// a task factory.
	NoTaskSource
	// Unencodable reports a name, value or comment that has no faithful
	// rendering as project text.
	Unencodable
)

var codeNames = map[Code]string{
	DualView:          "DualView",
	MissingField:      "MissingField",
	EmptyChoose:       "EmptyChoose",
	EmptyCondition:    "EmptyCondition",
	OutputDestination: "OutputDestination",
	NoTaskSource:      "NoTaskSource",
	Unencodable:       "Unencodable",
}

func (c Code) String() string {
	s, ok := codeNames[c]
	if ok {
		return s
	}
	return "<unknown code>"
}

func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Code) UnmarshalText(d []byte) error {
	for cc, s := range codeNames {
		if s == string(d) {
			*c = cc
			return nil
		}
	}
	return fmt.Errorf("unrecognized code %q", d)
}

func Codes() []Code {
	return []Code{
		DualView,
		MissingField,
		EmptyChoose,
		EmptyCondition,
		OutputDestination,
		NoTaskSource,
		Unencodable,
	}
}
