package encode

import (
	"strings"

	"github.com/tml-format/go-tml/ast"
)

// MustString renders nodes to a string, panicking on write errors.
// strings.Builder never fails, so the panic path is effectively dead;
// the helper exists for tests and debug output.
func MustString(nodes []*ast.Node, opts ...EncodeOption) string {
	var sb strings.Builder
	if err := Encode(nodes, &sb, opts...); err != nil {
		panic(err)
	}
	return sb.String()
}
