package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.idx == nil {
		return nil, nil
	}

	// LSP positions are zero-based lines; parse lines are one-based
	pt := token.Point{
		Line: int(params.Position.Line) + 1,
		Col:  int(params.Position.Character),
	}
	target := doc.idx.At(pt)
	if target == nil {
		return nil, nil
	}

	hoverText := buildHoverText(target)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

func buildHoverText(n *ast.Node) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("**Kind:** %s", kindInfo(n)))
	if label := nameInfo(n); label != "" {
		parts = append(parts, label)
	}
	if v := hoverValue(n); v != nil {
		if ti := typeInfo(v); ti != "" {
			parts = append(parts, fmt.Sprintf("**Type:** %s", ti))
		}
		if vi := valueInfo(v); vi != "" {
			parts = append(parts, fmt.Sprintf("**Value:** %s", vi))
		}
	}
	return strings.Join(parts, "\n\n")
}

func kindInfo(n *ast.Node) string {
	switch n.Kind {
	case ast.BlockKind:
		return "block"
	case ast.AttrKind:
		return "attribute"
	case ast.ValueKind:
		if n.Multiline {
			return "multi-line value"
		}
		return "value"
	case ast.CommentKind:
		if n.LineComment {
			return "line comment"
		}
		return "block comment"
	}
	return "unknown"
}

func nameInfo(n *ast.Node) string {
	switch n.Kind {
	case ast.BlockKind:
		return fmt.Sprintf("**Name:** `%s`", n.Name)
	case ast.AttrKind:
		return fmt.Sprintf("**Key:** `%s`", n.Key)
	}
	return ""
}

func hoverValue(n *ast.Node) *ast.Value {
	switch n.Kind {
	case ast.AttrKind, ast.ValueKind:
		return n.Value
	}
	return nil
}

func typeInfo(v *ast.Value) string {
	switch v.Type {
	case ast.StringType:
		return "string"
	case ast.NumberType:
		return "number"
	case ast.BoolType:
		return "boolean"
	case ast.ObjectType:
		return "object"
	case ast.ArrayType:
		return "array"
	case ast.CommentType:
		return "comment"
	}
	return ""
}

func valueInfo(v *ast.Value) string {
	switch v.Type {
	case ast.StringType:
		val := v.String
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case ast.NumberType:
		return fmt.Sprintf("`%g`", v.Number)
	case ast.BoolType:
		return fmt.Sprintf("`%t`", v.Bool)
	case ast.ObjectType:
		return fmt.Sprintf("object with %d keys", len(v.Fields))
	case ast.ArrayType:
		return fmt.Sprintf("array with %d elements", len(v.Elements))
	}
	return ""
}
