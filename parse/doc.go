// Package parse parses project-file XML into IR trees.
//
// # Usage
//
//	p, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	p, err := parse.ParseString(`<Project><PropertyGroup><A>1</A></PropertyGroup></Project>`)
//
//	// Name the input in error messages
//	p, err := parse.Parse(data, parse.ParseFilename("app.csproj"))
//
// Parsing is all-or-nothing: the first unsupported construct aborts with a
// [*FormatError] naming it and where it occurs, and no tree is returned.
//
// The same element name can mean different things in different places:
// <PropertyGroup> is legal under <Project>, <Target>, <When> and
// <Otherwise>, while any other element under a <Target> is a task
// invocation. Each context has its own vocabulary, checked as the tree is
// walked.
//
// Everything but incidental whitespace is kept: comments, the order of
// siblings, and every attribute and child element.
//
// # Related Packages
//
//   - github.com/signadot/projtree/ir - IR representation
//   - github.com/signadot/projtree/encode - Encode IR to canonical text
//   - github.com/signadot/projtree/token - XML element reader
package parse
