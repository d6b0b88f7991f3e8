package encode

import (
	"bytes"

	"github.com/signadot/projtree/ir"
)

func MustString(p *ir.Project) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(p, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
