package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/projtree/token"
)

var ErrParse = errors.New("parse error")

// FormatError reports input that could not be turned into a tree.
type FormatError struct {
	// Context is the name of the enclosing element, "" for the document.
	Context string
	// Construct describes the offending construct, such as "<Foo>" or
	// "attribute Bar".
	Construct string
	// Reason is set when the construct is recognized but malformed.
	Reason string
	Pos    *token.Pos
	// Err is set when the input is not well-formed XML.
	Err error
}

func (e *FormatError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return ErrParse.Error() + ": " + e.Err.Error()
	}
	var msg string
	switch {
	case e.Reason != "" && e.Context != "":
		msg = fmt.Sprintf("%s: %s in <%s>: %s", ErrParse, e.Construct, e.Context, e.Reason)
	case e.Reason != "":
		msg = fmt.Sprintf("%s: %s: %s", ErrParse, e.Construct, e.Reason)
	case e.Context != "":
		msg = fmt.Sprintf("%s: unsupported %s in <%s>", ErrParse, e.Construct, e.Context)
	default:
		msg = fmt.Sprintf("%s: unsupported %s", ErrParse, e.Construct)
	}
	if e.Pos != nil {
		msg += " at " + e.Pos.String()
	}
	return msg
}

func unsupported(ctx string, n *token.Node) error {
	return &FormatError{Context: ctx, Construct: n.Describe(), Pos: n.Pos}
}

func malformed(ctx string, n *token.Node, format string, args ...any) error {
	return &FormatError{Context: ctx, Construct: n.Describe(), Reason: fmt.Sprintf(format, args...), Pos: n.Pos}
}
