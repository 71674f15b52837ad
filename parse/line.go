package parse

import (
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/token"
)

// parsedLine is the classification of one physical line.
type parsedLine struct {
	indent int
	node   *ast.Node
	// openValue marks a block header with a bare trailing colon; the
	// assembler collects the following more-indented lines as its value.
	openValue bool
}

// parseLine classifies one full line into an (indent, node) pair. Blank
// lines yield nil. Dispatch order, first match wins: line comment,
// single-line block comment, standalone value, bare attribute, `name:`
// header, tokenized block header.
func (p *parser) parseLine(line string, lineNo int) *parsedLine {
	indent := indentOf(line)
	if indent < 0 {
		return nil
	}
	trimmed := strings.TrimRight(line[indent:], " \t")

	switch {
	case strings.HasPrefix(trimmed, "//"):
		text := strings.TrimSpace(trimmed[2:])
		return &parsedLine{
			indent: indent,
			node:   ast.NewComment(text, true, token.At(lineNo, indent, indent+len(trimmed))),
		}
	case strings.HasPrefix(trimmed, "/*") && strings.HasSuffix(trimmed, "*/") && len(trimmed) >= 4:
		text := strings.TrimSpace(trimmed[2 : len(trimmed)-2])
		return &parsedLine{
			indent: indent,
			node:   ast.NewComment(text, false, token.At(lineNo, indent, indent+len(trimmed))),
		}
	case strings.HasPrefix(trimmed, ":"):
		rest := trimmed[1:]
		lead := len(rest) - len(strings.TrimLeft(rest, " \t"))
		col := indent + 1 + lead
		v := p.parseValueAt(strings.TrimSpace(rest), lineNo, col)
		return &parsedLine{
			indent: indent,
			node:   ast.NewValue(v, token.At(lineNo, indent, indent+len(trimmed))),
		}
	}

	if isBareAttr(trimmed) {
		return &parsedLine{
			indent: indent,
			node:   p.parseAttrToken(trimmed, lineNo, indent),
		}
	}

	if ci := topLevelColon(trimmed); ci > 0 && !strings.ContainsAny(trimmed[:ci], " \t") {
		name := trimmed[:ci]
		block := ast.NewBlock(name, token.At(lineNo, indent, indent+len(name)))
		after := trimmed[ci+1:]
		if strings.TrimSpace(after) == "" {
			return &parsedLine{indent: indent, node: block, openValue: true}
		}
		lead := len(after) - len(strings.TrimLeft(after, " \t"))
		col := indent + ci + 1 + lead
		v := p.parseValueAt(strings.TrimSpace(after), lineNo, col)
		block.Append(ast.NewValue(v, token.At(lineNo, col, indent+len(trimmed))))
		return &parsedLine{indent: indent, node: block}
	}

	node, open := p.parseHeader(trimmed, lineNo, indent)
	return &parsedLine{indent: indent, node: node, openValue: open}
}

// parseHeader handles a tokenized block header line: the first token names
// the block, remaining tokens become attributes, an inline value, comments,
// or zero-child inline blocks. A lone `:` as the final token opens
// multi-line value collection, like a bare trailing colon on a `name:`
// header.
func (p *parser) parseHeader(trimmed string, lineNo, indent int) (*ast.Node, bool) {
	toks := token.Tokenize(trimmed)
	if len(toks) == 0 {
		return nil, false
	}
	open := false
	name := toks[0]
	col := indent
	block := ast.NewBlock(name, token.At(lineNo, indent, indent+len(name)))

	// A `$`-prefixed name fused with `=value` text splits into the true
	// block name and a leading attribute keyed by the name sans `$`.
	if strings.HasPrefix(name, "$") {
		if eq := strings.Index(name, "="); eq > 0 {
			block.Name = name[:eq]
			key := strings.TrimPrefix(block.Name, "$")
			v := p.parseValueAt(name[eq+1:], lineNo, indent+eq+1)
			v.Pos = token.At(lineNo, indent+eq+1, indent+len(name))
			block.Append(ast.NewAttr(key, v, token.At(lineNo, indent, indent+len(name))))
		}
	}
	col += len(name) + 1

	for i := 1; i < len(toks); i++ {
		tok := toks[i]
		switch {
		case strings.HasPrefix(tok, "//"):
			text := strings.TrimSpace(tok[2:])
			block.Append(ast.NewComment(text, true, token.At(lineNo, col, col+len(tok))))
		case strings.HasPrefix(tok, "/*") && strings.HasSuffix(tok, "*/") && len(tok) >= 4:
			text := strings.TrimSpace(tok[2 : len(tok)-2])
			block.Append(ast.NewComment(text, false, token.At(lineNo, col, col+len(tok))))
		case looksLikeAttr(tok):
			block.Append(p.parseAttrToken(tok, lineNo, col))
		case strings.HasPrefix(tok, ":"):
			if tok == ":" && i == len(toks)-1 {
				open = true
				continue
			}
			// the value absorbs subsequent tokens until one that
			// reads as an attribute or comment
			parts := []string{tok[1:]}
			width := len(tok)
			for i+1 < len(toks) {
				next := toks[i+1]
				if looksLikeAttr(next) || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/*") {
					break
				}
				parts = append(parts, next)
				width += 1 + len(next)
				i++
			}
			raw := strings.TrimSpace(strings.Join(parts, " "))
			v := p.parseValueAt(raw, lineNo, col+1)
			block.Append(ast.NewValue(v, token.At(lineNo, col, col+width)))
			col += width + 1
			continue
		default:
			block.Append(ast.NewBlock(tok, token.At(lineNo, col, col+len(tok))))
		}
		col += len(tok) + 1
	}
	return block, open
}

// parseAttrToken builds an Attribute from `key=value` or `key!` text.
func (p *parser) parseAttrToken(tok string, lineNo, col int) *ast.Node {
	pos := token.At(lineNo, col, col+len(tok))
	if eq := strings.Index(tok, "="); eq >= 0 {
		v := p.parseValueAt(tok[eq+1:], lineNo, col+eq+1)
		return ast.NewAttr(tok[:eq], v, pos)
	}
	// boolean shortcut key!
	v := ast.FromBool(true)
	v.Pos = pos
	return ast.NewAttr(strings.TrimSuffix(tok, "!"), v, pos)
}

// indentOf returns the column of the first non-whitespace character, or -1
// for a blank line.
func indentOf(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return -1
}

// isBareAttr reports whether a trimmed line is a lone attribute: it has an
// `=` or a trailing `!`, no spaces, and no colon.
func isBareAttr(trimmed string) bool {
	if strings.ContainsAny(trimmed, " \t:") {
		return false
	}
	// `$`-named lines are block headers; their `=` splits there
	if strings.HasPrefix(trimmed, "$") {
		return false
	}
	if strings.Contains(trimmed, "=") {
		return true
	}
	return strings.HasSuffix(trimmed, "!") && len(trimmed) > 1
}

// looksLikeAttr reports whether a single token reads as an attribute.
func looksLikeAttr(tok string) bool {
	if strings.HasPrefix(tok, ":") {
		return false
	}
	if strings.Contains(tok, "=") {
		return true
	}
	return strings.HasSuffix(tok, "!") && len(tok) > 1
}

// topLevelColon returns the index of the first colon outside quotes and
// outside `{}`/`[]` nesting, or -1.
func topLevelColon(s string) int {
	var quote byte
	curl, sqr := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote && !escapedAt(s, i) {
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
			if curl == 0 && sqr == 0 {
				return i
			}
		}
	}
	return -1
}

func escapedAt(s string, i int) bool {
	return i > 0 && s[i-1] == '\\'
}
