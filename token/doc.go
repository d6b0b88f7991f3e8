// Package token reads project-file XML into a lightweight element tree.
//
// [Read] walks the raw XML token stream once and produces a [Document]: the
// root element, the comments around it, and for every element its
// attributes and children in document order. Every node carries a [Pos] so
// that later stages can report errors in terms of the source text.
//
// Namespace prefixes are not resolved; names are kept exactly as written.
package token
