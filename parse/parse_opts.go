package parse

import "github.com/signadot/projtree/token"

type parseOpts struct {
	comments bool
	filename string
}

func (o *parseOpts) ReadOpts() []token.ReadOpt {
	if o.filename == "" {
		return nil
	}
	return []token.ReadOpt{token.ReadName(o.filename)}
}

type ParseOption func(*parseOpts)

// ParseComments controls whether comments are kept (the default) or
// dropped.
func ParseComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

// ParseFilename names the input in error positions.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}
