// Package validate checks the structural consistency of project trees.
//
// Validate never stops at the first problem: it walks the whole tree and
// reports each fault exactly once as a Violation. Violations are data,
// not errors to be propagated, although Violation implements error for
// convenience.
//
// Trees produced by the parse package are always valid. Trees built or
// mutated by callers should be validated before they are encoded, since
// the encoder refuses invalid trees.
//
// Each Violation carries a path locating the fault, for example
//
//	/Project/Target[Build]/Exec[0]/Output[1]
//
// Path segments are element names followed by the index of the entry in
// its parent. Targets are identified by name instead.
package validate
