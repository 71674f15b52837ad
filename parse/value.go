package parse

import (
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/token"
)

// textMap maps offsets in (possibly joined multi-line) value text back to
// source points, so fields and elements of structured literals carry
// usable positions.
type textMap struct {
	spans []textSpan
}

// textSpan says: joined offsets >= off belong to source line, where offset
// off sits at column col.
type textSpan struct {
	off  int
	line int
	col  int
}

func singleLineMap(line, col int) *textMap {
	return &textMap{spans: []textSpan{{off: 0, line: line, col: col}}}
}

func (m *textMap) point(off int) token.Point {
	s := m.spans[0]
	for i := len(m.spans) - 1; i > 0; i-- {
		if m.spans[i].off <= off {
			s = m.spans[i]
			break
		}
	}
	return token.Point{Line: s.line, Col: s.col + (off - s.off)}
}

// valueParser scans one value expression. src is the full expression text;
// multi-line literals are joined with newlines which the scanner treats as
// whitespace, so `//` comments end at end of line.
type valueParser struct {
	src      string
	m        *textMap
	maxDepth int
}

func (vp *valueParser) pos(start, end int) token.Position {
	return token.Position{Start: vp.m.point(start), End: vp.m.point(end)}
}

// parse dispatches the text in [start, end) to a typed value: a `{}`-bound
// object, a `[]`-bound array, a boolean, a number, or a string. Text that
// still fails structured parsing falls back to String rather than erroring.
func (vp *valueParser) parse(start, end, depth int) *ast.Value {
	s, e := trimRange(vp.src, start, end)
	text := vp.src[s:e]
	if depth > vp.maxDepth {
		v := ast.FromString(text)
		v.Pos = vp.pos(s, e)
		return v
	}
	var v *ast.Value
	switch {
	case len(text) >= 2 && text[0] == '{' && text[len(text)-1] == '}':
		v = vp.parseObject(s+1, e-1, depth+1)
	case len(text) >= 2 && text[0] == '[' && text[len(text)-1] == ']':
		v = vp.parseArray(s+1, e-1, depth+1)
	case text == "true":
		v = ast.FromBool(true)
	case text == "false":
		v = ast.FromBool(false)
	default:
		if f, ok := token.Float(text); ok {
			v = ast.FromNumber(f)
		} else {
			v = ast.FromString(token.Unquote(text))
		}
	}
	v.Pos = vp.pos(s, e)
	return v
}

// parseObject scans the bracket-stripped inner text of an object literal.
// Separation is a depth-0 comma, or a depth-0 space whose lookahead shows a
// new `key:` pair; commas are therefore optional.
func (vp *valueParser) parseObject(start, end, depth int) *ast.Value {
	obj := &ast.Value{Type: ast.ObjectType}
	var (
		quote    byte
		curl     int
		sqr      int
		inValue  bool
		key      string
		keyStart = start
		keyPos   token.Position
		valStart int
	)
	finish := func(valEnd int) {
		v := vp.parse(valStart, valEnd, depth)
		obj.Fields = append(obj.Fields, &ast.Field{
			Key:   key,
			Value: v,
			Pos:   token.Position{Start: keyPos.Start, End: v.Pos.End},
		})
		inValue = false
		key = ""
	}
	for i := start; i < end; i++ {
		c := vp.src[i]
		if quote != 0 {
			if c == quote && !escapedAt(vp.src, i) {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			curl++
		case '}':
			curl--
		case '[':
			sqr++
		case ']':
			sqr--
		case ':':
			if curl == 0 && sqr == 0 && !inValue {
				ks, ke := trimRange(vp.src, keyStart, i)
				key = token.Unquote(vp.src[ks:ke])
				keyPos = vp.pos(ks, ke)
				inValue = true
				valStart = i + 1
			}
		case ',':
			if curl == 0 && sqr == 0 {
				if inValue {
					finish(i)
				}
				keyStart = i + 1
			}
		case ' ', '\t', '\n':
			if inValue && curl == 0 && sqr == 0 && vp.keyAhead(i, end) {
				finish(i)
				keyStart = i + 1
			}
		case '/':
			if curl != 0 || sqr != 0 || i+1 >= end {
				continue
			}
			next := vp.src[i+1]
			if next != '/' && next != '*' {
				continue
			}
			ce, text := vp.scanComment(i, end)
			if ce < 0 {
				continue
			}
			if inValue && strings.TrimSpace(vp.src[valStart:i]) != "" {
				finish(i)
				keyStart = i + 1
			}
			cv := ast.CommentValue(text)
			cv.Pos = vp.pos(i, ce)
			obj.Fields = append(obj.Fields, &ast.Field{Value: cv, Pos: cv.Pos})
			inValue = false
			keyStart = ce
			i = ce - 1
		}
	}
	if inValue {
		finish(end)
	} else if ks, ke := trimRange(vp.src, keyStart, end); ke > ks {
		// dangling key with no value
		key = token.Unquote(vp.src[ks:ke])
		keyPos = vp.pos(ks, ke)
		v := ast.FromString("")
		v.Pos = vp.pos(ke, ke)
		obj.Fields = append(obj.Fields, &ast.Field{Key: key, Value: v, Pos: keyPos})
	}
	return obj
}

// parseArray scans the bracket-stripped inner text of an array literal.
// Elements separate on a depth-0 comma, or a depth-0 space not immediately
// followed by a comma.
func (vp *valueParser) parseArray(start, end, depth int) *ast.Value {
	arr := &ast.Value{Type: ast.ArrayType}
	var (
		quote     byte
		curl      int
		sqr       int
		elemStart = start
	)
	finish := func(elemEnd int) {
		s, e := trimRange(vp.src, elemStart, elemEnd)
		if e <= s {
			return
		}
		arr.Elements = append(arr.Elements, vp.parse(s, e, depth))
	}
	for i := start; i < end; i++ {
		c := vp.src[i]
		if quote != 0 {
			if c == quote && !escapedAt(vp.src, i) {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '{':
			curl++
		case '}':
			curl--
		case '[':
			sqr++
		case ']':
			sqr--
		case ',':
			if curl == 0 && sqr == 0 {
				finish(i)
				elemStart = i + 1
			}
		case ' ', '\t', '\n':
			if curl == 0 && sqr == 0 {
				j := skipWS(vp.src, i, end)
				if j < end && vp.src[j] != ',' {
					finish(i)
					elemStart = i + 1
				}
			}
		case '/':
			if curl != 0 || sqr != 0 || i+1 >= end {
				continue
			}
			next := vp.src[i+1]
			if next != '/' && next != '*' {
				continue
			}
			ce, text := vp.scanComment(i, end)
			if ce < 0 {
				continue
			}
			finish(i)
			cv := ast.CommentValue(text)
			cv.Pos = vp.pos(i, ce)
			arr.Elements = append(arr.Elements, cv)
			elemStart = ce
			i = ce - 1
		}
	}
	finish(end)
	return arr
}

// scanComment reads a `//` comment to end of line or a `/* */` comment to
// its terminator, returning the end offset and the trimmed text. A `/*`
// with no terminator in range yields -1 and the caller treats it as
// ordinary text.
func (vp *valueParser) scanComment(i, end int) (int, string) {
	if vp.src[i+1] == '/' {
		e := i + 2
		for e < end && vp.src[e] != '\n' {
			e++
		}
		return e, strings.TrimSpace(vp.src[i+2 : e])
	}
	rel := strings.Index(vp.src[i+2:end], "*/")
	if rel < 0 {
		return -1, ""
	}
	e := i + 2 + rel + 2
	return e, strings.TrimSpace(vp.src[i+2 : e-2])
}

// keyAhead reports whether, after skipping whitespace from i, the text
// reads as a new `key:` pair. This is the lookahead making commas optional
// in objects.
func (vp *valueParser) keyAhead(i, end int) bool {
	j := skipWS(vp.src, i, end)
	if j >= end {
		return false
	}
	if c := vp.src[j]; c == '"' || c == '\'' {
		// quoted key
		k := j + 1
		for k < end {
			if vp.src[k] == c && !escapedAt(vp.src, k) {
				break
			}
			k++
		}
		return k+1 < end && vp.src[k+1] == ':'
	}
	k := j
	for k < end {
		switch vp.src[k] {
		case ':':
			return k > j
		case ' ', '\t', '\n', ',', '{', '[', '}', ']', '"', '\'':
			return false
		}
		k++
	}
	return false
}

func trimRange(s string, start, end int) (int, int) {
	for start < end && isWS(s[start]) {
		start++
	}
	for end > start && isWS(s[end-1]) {
		end--
	}
	return start, end
}

func skipWS(s string, i, end int) int {
	for i < end && isWS(s[i]) {
		i++
	}
	return i
}

func isWS(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
