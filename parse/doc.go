// Package parse parses TML text into ast nodes.
//
// # Usage
//
//	nodes := parse.Parse("div class=x\n  p: hello\n")
//
//	// parse one value expression
//	v := parse.ParseValueText(`{name: "alice", age: 30}`)
//
//	// parse with options
//	nodes := parse.Parse(src, parse.ParseParents(false))
//
// The parser is total over all text input: grammar-level malformation is a
// recovered condition, not a reported error. Quote and brace imbalance is
// repaired heuristically before assembly, and any line that cannot be
// classified contributes nothing to the tree.
//
// # Related Packages
//
//   - github.com/tml-format/go-tml/ast - tree representation
//   - github.com/tml-format/go-tml/encode - encode trees back to text
//   - github.com/tml-format/go-tml/index - positional queries over trees
package parse
