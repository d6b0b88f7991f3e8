package encode

import (
	"errors"
	"fmt"
)

var ErrContract = errors.New("tree cannot be encoded")

// ContractError reports a tree that has no faithful rendering.
type ContractError struct {
	// Path locates the offending element, for example
	// "/Project/Target/Exec/Output".
	Path   string
	Reason string
}

func (e *ContractError) Unwrap() error {
	return ErrContract
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrContract, e.Reason, e.Path)
}
