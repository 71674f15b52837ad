// Package index provides positional queries over parsed TML trees.
//
// An Index is line-keyed: building it registers every positioned node
// under each source line its range covers, tagged with an approximate
// range size. Queries then scan one line's entries, giving comments
// absolute priority and otherwise preferring the smallest containing
// range, with first-registered order breaking ties. Editor tooling uses
// this to answer "what syntax node is under the cursor".
package index
