package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/token"
)

// Encode renders nodes as TML text. Re-parsing the output yields a tree
// structurally equivalent to the input modulo positions; byte-identical
// text is not a goal.
func Encode(nodes []*ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		pretty: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	for _, n := range nodes {
		if err := encodeNode(n, w, es, 0); err != nil {
			return err
		}
	}
	return nil
}

func encodeNode(n *ast.Node, w io.Writer, es *EncState, depth int) error {
	switch n.Kind {
	case ast.BlockKind:
		return encodeBlock(n, w, es, depth)
	case ast.AttrKind:
		return writeLine(w, es, depth, es.color(attrRole, attrText(n, es)), n)
	case ast.ValueKind:
		return writeLine(w, es, depth, ": "+valueText(n.Value, es), n)
	case ast.CommentKind:
		return encodeComment(n, w, es, depth)
	}
	return fmt.Errorf("%w: cannot encode kind %s", ErrEncoding, n.Kind)
}

func encodeBlock(n *ast.Node, w io.Writer, es *EncState, depth int) error {
	// a multi-line value renders in collected form, a trailing bare colon
	// with the value on indented lines, so the flag survives a re-parse;
	// attribute siblings ride on the header before the colon
	if c := collectedChild(n); c != nil {
		header := es.color(nameRole, n.Name)
		attrs := 0
		for _, a := range n.Children {
			if a.Kind == ast.AttrKind {
				header += " " + es.color(attrRole, attrText(a, es))
				attrs++
			}
		}
		if attrs > 0 {
			header += " :"
		} else {
			header += ":"
		}
		if err := writeLine(w, es, depth, header, n); err != nil {
			return err
		}
		if v := c.Value; v.Type == ast.StringType && strings.Contains(v.String, "\n") {
			for _, ln := range strings.Split(v.String, "\n") {
				if err := writeLine(w, es, depth+1, es.color(stringRole, ln), nil); err != nil {
					return err
				}
			}
			return nil
		}
		return writeLine(w, es, depth+1, valueText(c.Value, es), nil)
	}
	if len(n.Children) == 1 && n.Children[0].Kind == ast.ValueKind {
		c := n.Children[0]
		line := es.color(nameRole, n.Name) + ": " + valueText(c.Value, es)
		return writeLine(w, es, depth, line, n)
	}

	header := []string{es.color(nameRole, n.Name)}
	var rest []*ast.Node
	inline := true
	for i, c := range n.Children {
		if inline {
			switch {
			case c.Kind == ast.AttrKind:
				header = append(header, es.color(attrRole, attrText(c, es)))
				continue
			case c.Kind == ast.CommentKind && !c.LineComment && !strings.Contains(c.Text, "\n"):
				header = append(header, es.color(commentRole, "/* "+c.Text+" */"))
				continue
			case c.Kind == ast.CommentKind && c.LineComment && i == len(n.Children)-1:
				header = append(header, es.color(commentRole, "// "+c.Text))
				continue
			}
			inline = false
		}
		// a bare attribute line cannot carry spaces or colons; unsafe
		// attributes stay on the header even when that bends order
		if c.Kind == ast.AttrKind && !safeBareAttr(c, es) {
			header = append(header, es.color(attrRole, attrText(c, es)))
			continue
		}
		rest = append(rest, c)
	}
	if err := writeLine(w, es, depth, strings.Join(header, " "), n); err != nil {
		return err
	}
	for _, c := range rest {
		if err := encodeNode(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func encodeComment(n *ast.Node, w io.Writer, es *EncState, depth int) error {
	if n.LineComment {
		return writeLine(w, es, depth, es.color(commentRole, "// "+n.Text), n)
	}
	if !strings.Contains(n.Text, "\n") {
		return writeLine(w, es, depth, es.color(commentRole, "/* "+n.Text+" */"), n)
	}
	lines := strings.Split(n.Text, "\n")
	if err := writeLine(w, es, depth, es.color(commentRole, "/* "+lines[0]), nil); err != nil {
		return err
	}
	for _, ln := range lines[1:] {
		if err := writeLine(w, es, depth+1, es.color(commentRole, ln), nil); err != nil {
			return err
		}
	}
	return writeLine(w, es, depth, es.color(commentRole, "*/"), n)
}

// collectedChild returns the multi-line value child of n when n can round
// trip through collected form: exactly one value child with the multi-line
// flag set, and every other child an attribute.
func collectedChild(n *ast.Node) *ast.Node {
	var mv *ast.Node
	for _, c := range n.Children {
		switch {
		case c.Kind == ast.ValueKind && c.Multiline && c.Value != nil && mv == nil:
			mv = c
		case c.Kind == ast.AttrKind:
		default:
			return nil
		}
	}
	return mv
}

func attrText(n *ast.Node, es *EncState) string {
	v := n.Value
	if v != nil && v.Type == ast.BoolType && v.Bool {
		return n.Key + "!"
	}
	return n.Key + "=" + valueText(v, es)
}

func safeBareAttr(n *ast.Node, es *EncState) bool {
	t := attrText(n, plain(es))
	return !strings.ContainsAny(t, " \t:")
}

// plain returns es without colors, for probe rendering.
func plain(es *EncState) *EncState {
	if es.colors == nil {
		return es
	}
	cp := *es
	cp.colors = nil
	return &cp
}

func valueText(v *ast.Value, es *EncState) string {
	if v == nil {
		return `""`
	}
	switch v.Type {
	case ast.StringType:
		s := v.String
		if token.NeedsQuote(s) || strings.Contains(s, "\n") {
			s = token.Quote(s)
		}
		return es.color(stringRole, s)
	case ast.NumberType:
		return es.color(numberRole, strconv.FormatFloat(v.Number, 'g', -1, 64))
	case ast.BoolType:
		return es.color(boolRole, strconv.FormatBool(v.Bool))
	case ast.ObjectType:
		return objectText(v, es)
	case ast.ArrayType:
		return arrayText(v, es)
	case ast.CommentType:
		return es.color(commentRole, "/* "+strings.ReplaceAll(v.String, "\n", " ")+" */")
	}
	return `""`
}

func objectText(v *ast.Value, es *EncState) string {
	sep := ","
	colon := ":"
	if es.pretty {
		sep = ", "
		colon = ": "
	}
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		if f.IsComment() {
			parts = append(parts, valueText(f.Value, es))
			continue
		}
		key := f.Key
		if token.NeedsQuote(key) {
			key = token.Quote(key)
		}
		parts = append(parts, es.color(keyRole, key)+colon+valueText(f.Value, es))
	}
	if len(parts) == 0 {
		return "{}"
	}
	if es.pretty {
		return "{ " + strings.Join(parts, sep) + " }"
	}
	return "{" + strings.Join(parts, sep) + "}"
}

func arrayText(v *ast.Value, es *EncState) string {
	sep := ","
	if es.pretty {
		sep = ", "
	}
	parts := make([]string, 0, len(v.Elements))
	for _, e := range v.Elements {
		parts = append(parts, valueText(e, es))
	}
	return "[" + strings.Join(parts, sep) + "]"
}

func writeLine(w io.Writer, es *EncState, depth int, text string, n *ast.Node) error {
	line := strings.Repeat(" ", es.indent*depth) + text
	if es.positions && n != nil && !n.Pos.IsZero() {
		line += es.color(commentRole, " // @ "+n.Pos.String())
	}
	_, err := w.Write([]byte(line + "\n"))
	return err
}

func (es *EncState) color(role ColorRole, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Get(role)(s)
}
