package libdiff

import (
	"fmt"
	"strings"
)

type line struct {
	op   Op
	text string
}

// Unified renders chunks as a unified diff with context lines of
// context around each change. It returns "" if nothing changed.
func Unified(fromName, toName string, chunks []Chunk, context int) string {
	var lines []line
	for _, c := range chunks {
		for _, ln := range c.Lines {
			lines = append(lines, line{op: c.Op, text: ln})
		}
	}
	hunks := hunkRanges(lines, context)
	if len(hunks) == 0 {
		return ""
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "--- %s\n+++ %s\n", fromName, toName)
	for _, h := range hunks {
		writeHunk(b, lines, h[0], h[1])
	}
	return b.String()
}

// hunkRanges returns the [start, end) line ranges of the hunks, merging
// changes whose context would overlap.
func hunkRanges(lines []line, context int) [][2]int {
	var res [][2]int
	for i, ln := range lines {
		if ln.op == Equal {
			continue
		}
		start := max(0, i-context)
		end := min(len(lines), i+1+context)
		if n := len(res); n > 0 && start <= res[n-1][1] {
			res[n-1][1] = end
			continue
		}
		res = append(res, [2]int{start, end})
	}
	return res
}

func writeHunk(b *strings.Builder, lines []line, start, end int) {
	fromStart, toStart := 1, 1
	for _, ln := range lines[:start] {
		if ln.op != Insert {
			fromStart++
		}
		if ln.op != Delete {
			toStart++
		}
	}
	fromLen, toLen := 0, 0
	for _, ln := range lines[start:end] {
		if ln.op != Insert {
			fromLen++
		}
		if ln.op != Delete {
			toLen++
		}
	}
	if fromLen == 0 {
		fromStart--
	}
	if toLen == 0 {
		toStart--
	}
	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n", fromStart, fromLen, toStart, toLen)
	for _, ln := range lines[start:end] {
		b.WriteString(ln.op.String())
		if text, ok := strings.CutSuffix(ln.text, "\n"); ok {
			b.WriteString(text + "\n")
			continue
		}
		b.WriteString(ln.text + "\n\\ No newline at end of file\n")
	}
}
