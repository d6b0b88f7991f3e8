package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("xml syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrDocBalance   = errors.New("imbalanced document")
	ErrEmptyDoc     = errors.New("empty document")
	ErrUnsupported  = errors.New("unsupported")
)

type ReadErr struct {
	Err error
	Pos Pos
}

func (e *ReadErr) Unwrap() error {
	return e.Err
}

func NewReadErr(e error, p *Pos) *ReadErr {
	return &ReadErr{Err: e, Pos: *p}
}

func (e *ReadErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewReadErr(fmt.Errorf("unexpected %s", what), p)
}
