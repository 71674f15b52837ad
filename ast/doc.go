// Package ast defines the syntax tree for TML documents.
//
// A parsed document is a sequence of root nodes. Node is a tagged union
// discriminated by Kind:
//
//   - BlockKind: a named entry owning an ordered, source-order sequence of
//     children (attributes, nested blocks, at most one value node, comments)
//   - AttrKind: an inline `key=value` or boolean-shortcut `key!` pair
//   - ValueKind: a standalone `:value` or the value attached via `name: value`
//   - CommentKind: a `//` line comment or `/* */` block comment
//
// Value is the typed literal union (string, number, bool, object, array),
// with CommentType entries interleaved inside composite literals so layout
// survives a round trip. Duplicate attribute keys are legal and preserved.
//
// Trees are produced in one parse call and immutable thereafter. Hydrate
// optionally decorates a tree with lookup-only Parent back-references; it
// never changes structure, and nothing in parsing, encoding, or querying
// requires it.
package ast
