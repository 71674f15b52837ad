// Package tml ties the parsing, encoding and lookup layers together
// behind a small convenience API. Tooling with finer-grained needs uses
// the parse, encode, ast and index packages directly.
package tml

import (
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/encode"
	"github.com/tml-format/go-tml/index"
	"github.com/tml-format/go-tml/parse"
	"github.com/tml-format/go-tml/token"
)

// Parse parses a whole document. It never fails; malformed input is
// repaired best-effort.
func Parse(src string, opts ...parse.ParseOption) []*ast.Node {
	return parse.Parse(src, opts...)
}

// Format rewrites src in canonical form.
func Format(src string, opts ...encode.EncodeOption) string {
	return encode.MustString(parse.Parse(src), opts...)
}

// Formatted reports whether src already is in canonical form.
func Formatted(src string) bool {
	return Format(src) == src
}

// NodeAt parses src and returns the most specific node under pt, or nil.
// Callers doing repeated lookups against the same text should build an
// index.Index once instead.
func NodeAt(src string, pt token.Point) *ast.Node {
	return index.Build(parse.Parse(src)).At(pt)
}

// Equal reports structural equality of two parse results, ignoring
// positions.
func Equal(a, b []*ast.Node) bool {
	return encode.MustString(a) == encode.MustString(b)
}

// Valid reports whether src parses without triggering repair. The parser
// itself is total; this is the check for "was the input well formed".
func Valid(src string) bool {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	var dq, sq, open, closed int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '"':
			if i == 0 || src[i-1] != '\\' {
				dq++
			}
		case '\'':
			if i == 0 || src[i-1] != '\\' {
				sq++
			}
		case '{':
			open++
		case '}':
			closed++
		}
	}
	return dq%2 == 0 && sq%2 == 0 && open <= closed
}
