package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Chunk is a run of lines sharing the same operation. Lines keep their
// line terminators; the last line of a text may have none.
type Chunk struct {
	Op    Op
	Lines []string
}

// DiffLines computes the line diff turning from into to.
func DiffLines(from, to string) []Chunk {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Chunk, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		c := Chunk{}
		switch diff.Type {
		case diffpatch.DiffInsert:
			c.Op = Insert
		case diffpatch.DiffDelete:
			c.Op = Delete
		}
		for _, r := range diff.Text {
			c.Lines = append(c.Lines, runeMap[r])
		}
		res = append(res, c)
	}
	return res
}

// mapLinesTo assigns each distinct line a rune so the line sequences
// can be diffed as strings of runes.
func mapLinesTo(lineMap map[string]rune, runeMap map[rune]string, text string) []rune {
	var res []rune
	for len(text) != 0 {
		i := strings.IndexByte(text, '\n')
		ln := text
		if i != -1 {
			ln = text[:i+1]
		}
		text = text[len(ln):]
		r, ok := lineMap[ln]
		if !ok {
			r = rune(len(lineMap) + 1)
			// skip the surrogate range, which is not valid in a string
			if r >= 0xD800 {
				r += 0x800
			}
			lineMap[ln] = r
			runeMap[r] = ln
		}
		res = append(res, r)
	}
	return res
}

// Changed reports whether chunks contain any insertion or deletion.
func Changed(chunks []Chunk) bool {
	for _, c := range chunks {
		if c.Op != Equal && len(c.Lines) != 0 {
			return true
		}
	}
	return false
}
