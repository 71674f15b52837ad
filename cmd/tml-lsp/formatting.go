package main

import (
	"context"
	"strings"

	"github.com/tml-format/go-tml/encode"

	"go.lsp.dev/protocol"
)

// Formatting rewrites the whole document in canonical form with one
// edit spanning the original text.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	out := encode.MustString(doc.nodes)
	if out == doc.content {
		return nil, nil
	}
	lines := strings.Count(doc.content, "\n") + 1
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: out,
		},
	}, nil
}
