// Package libdiff computes line diffs between two renderings of a
// project, for example a file as written and its canonical form.
//
// # Usage
//
//	chunks := libdiff.DiffLines(original, canonical)
//	if libdiff.Changed(chunks) {
//	    fmt.Print(libdiff.Unified("a.proj", "a.proj (canonical)", chunks, 3))
//	}
//
// # Related Packages
//
//   - github.com/signadot/projtree/encode - canonical rendering
package libdiff
