// Package encode renders parse trees back to TML text.
//
// Output re-parses to a structurally equivalent tree; original byte
// layout is not preserved. Rendering is customized with EncodeOptions,
// including indent width, literal compaction, position trailers, and
// ANSI colors.
package encode
