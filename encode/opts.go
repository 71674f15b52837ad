package encode

// EncState carries encoder settings and line state.
type EncState struct {
	indent    int
	pretty    bool
	positions bool

	colors *Colors
}

type EncodeOption func(*EncState)

// EncodeIndent sets the spaces per nesting level (default 2).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// EncodePretty controls space padding inside object and array literals
// (default true). Block structure always stays line-and-indent based
// because indentation is semantic.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodePositions appends source-position trailer comments to each line.
// Output with positions re-parses to a tree with extra comment nodes, so
// it trades round-trip fidelity for debuggability.
func EncodePositions(v bool) EncodeOption {
	return func(es *EncState) { es.positions = v }
}

// EncodeColors renders output with ANSI colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
