package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/projtree/dump"
	"github.com/signadot/projtree/encode"
	"github.com/signadot/projtree/format"
	"github.com/signadot/projtree/ir"
)

var out io.Writer = os.Stderr

// Logf prints to stderr. Project arguments are rendered as project
// text, or as a YAML dump when they cannot be encoded.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Project:
			args[i] = projectString(x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func projectString(p *ir.Project) string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(p, buf); err == nil {
		return buf.String()
	}
	buf.Reset()
	if err := dump.Encode(p, buf, format.YAMLFormat); err != nil {
		return fmt.Sprintf("[raw *ir.Project] %v", p)
	}
	return buf.String()
}
