// Package format names the output formats supported by projtree tooling.
//
// Project files are always read and canonically written as XML. The YAML
// and JSON formats are used when dumping the IR of a project for
// inspection or for consumption by other tools.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f.Suffix()) // ".yaml"
//
// # Related Packages
//
//   - github.com/signadot/projtree/encode - canonical XML output
//   - github.com/signadot/projtree/dump - YAML/JSON output of the IR
package format
