// Package encode renders project trees as canonical project-file text.
//
// Rendering is canonical: two trees that differ only in the order their
// properties were declared produce the same bytes. Everything else keeps
// the order it has in the tree.
//
// # Usage
//
//	p := ir.New()
//	p.AddPropertyGroup().Add("OutputType", "Exe")
//	if err := encode.Encode(p, os.Stdout); err != nil {
//	    return err
//	}
//
//	// With an XML declaration and terminal colors
//	err := encode.Encode(p, w, encode.EncodeXMLHeader(true), encode.EncodeColors(encode.NewColors()))
//
// # Layout
//
// Output uses a two space indent, one element per line, "\n" line
// endings and a trailing newline. Elements without content are written
// as <Name />. Within an element, attributes follow a fixed order.
//
//   - Property entries are sorted by name between comments; comments stay
//     where they are and act as boundaries.
//   - Items keep their order. Their attributes are Include, Remove or
//     Update, then Exclude and Condition, then attribute metadata sorted
//     by key. Element metadata is sorted by key.
//   - Task attributes are Condition and ContinueOnError followed by the
//     parameters sorted by name. Outputs keep their order.
//   - When clauses keep their order and Otherwise comes last.
//
// # Errors
//
// A tree that cannot be written as a document which parses back to the
// same tree yields a *ContractError and nothing is written to the
// output.
//
// # Related Packages
//
//   - github.com/signadot/projtree/ir - the tree
//   - github.com/signadot/projtree/parse - parse text to a tree
//   - github.com/signadot/projtree/validate - structural checks
package encode
