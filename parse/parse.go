package parse

import (
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/debug"
	"github.com/tml-format/go-tml/token"
)

// Parse parses a whole document into its root node sequence. The parser is
// total: malformed input is repaired with best-effort recovery and every
// line is classified as something, never rejected.
func Parse(src string, options ...ParseOption) []*ast.Node {
	pOpts := defaultOpts()
	for _, f := range options {
		f(pOpts)
	}
	p := &parser{opts: pOpts}
	roots := p.parseDoc(src)
	if pOpts.parents {
		ast.Hydrate(roots)
	}
	return roots
}

// ParseValueText parses text known to be one value expression. Multi-line
// text is normalized by stripping the common leading indentation; when it
// is not a structured literal, newlines are preserved verbatim in the
// resulting string.
func ParseValueText(src string, options ...ParseOption) *ast.Value {
	pOpts := defaultOpts()
	for _, f := range options {
		f(pOpts)
	}
	p := &parser{opts: pOpts}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	first := 0
	for first < len(lines) && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	last := len(lines)
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}
	if first == last {
		return p.parseValueAt("", 1, 0)
	}
	return p.parseCollected(lines[first:last], first+1)
}

type parser struct {
	opts *parseOpts
}

// parseValueAt parses single-line value text located at (line, col).
func (p *parser) parseValueAt(text string, line, col int) *ast.Value {
	vp := &valueParser{src: text, m: singleLineMap(line, col), maxDepth: p.opts.maxDepth}
	return vp.parse(0, len(text), 0)
}

// parseCollected parses lines collected for a multi-line value: the common
// leading indentation of non-blank lines is stripped, the remainder joined
// with newlines, and the whole dispatched as one value expression.
func (p *parser) parseCollected(lines []string, firstLineNo int) *ast.Value {
	min := -1
	for _, l := range lines {
		ind := indentOf(l)
		if ind < 0 {
			continue
		}
		if min < 0 || ind < min {
			min = ind
		}
	}
	if min < 0 {
		min = 0
	}
	var (
		b     strings.Builder
		spans []textSpan
	)
	for k, l := range lines {
		stripped := ""
		if len(l) > min {
			stripped = l[min:]
		}
		if k > 0 {
			b.WriteByte('\n')
		}
		spans = append(spans, textSpan{off: b.Len(), line: firstLineNo + k, col: min})
		b.WriteString(stripped)
	}
	joined := b.String()
	vp := &valueParser{src: joined, m: &textMap{spans: spans}, maxDepth: p.opts.maxDepth}
	return vp.parse(0, len(joined), 0)
}

func (p *parser) parseDoc(src string) []*ast.Node {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	// a document that is just one single-line object or array literal
	// short-circuits to a standalone value node
	trimmed := strings.TrimSpace(src)
	if isSingleLineLiteral(trimmed) {
		line, col := offsetPoint(src, strings.Index(src, trimmed))
		v := p.parseValueAt(trimmed, line, col)
		return []*ast.Node{ast.NewValue(v, v.Pos)}
	}

	src = repair(src)
	a := &asm{p: p, lines: strings.Split(src, "\n")}
	a.run()
	return a.roots
}

func isSingleLineLiteral(trimmed string) bool {
	if len(trimmed) < 2 || strings.Contains(trimmed, "\n") {
		return false
	}
	if trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}' {
		return true
	}
	return trimmed[0] == '[' && trimmed[len(trimmed)-1] == ']'
}

func offsetPoint(src string, off int) (int, int) {
	line, col := 1, 0
	for i := 0; i < off && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 0
			continue
		}
		col++
	}
	return line, col
}

// repair applies best-effort recovery for malformed input: an odd count of
// unescaped quotes gains a closing quote at EOF, and unmatched `{` gain
// closing braces. A heuristic, not a guarantee.
func repair(src string) string {
	var dq, sq, open, closed int
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '"':
			if !escapedAt(src, i) {
				dq++
			}
		case '\'':
			if !escapedAt(src, i) {
				sq++
			}
		case '{':
			open++
		case '}':
			closed++
		}
	}
	if dq%2 == 0 && sq%2 == 0 && open <= closed {
		return src
	}
	// closers go on the last non-blank line, where the damage is
	src = strings.TrimRight(src, " \t\n")
	if dq%2 == 1 {
		debugRepair(`unbalanced "`)
		src += `"`
	}
	if sq%2 == 1 {
		debugRepair(`unbalanced '`)
		src += `'`
	}
	for ; open > closed; closed++ {
		debugRepair("unbalanced {")
		src += "}"
	}
	return src
}

func debugRepair(what string) {
	if debug.Parse() {
		debug.Logf("parse: repairing %s\n", what)
	}
}

type frame struct {
	indent int
	block  *ast.Node
}

// asm drives line iteration: it maintains the indentation stack and the
// two pending collection states (multi-line value, multi-line block
// comment), of which at most one is active.
type asm struct {
	p     *parser
	lines []string
	roots []*ast.Node
	stack []frame
}

func (a *asm) run() {
	for i := 0; i < len(a.lines); i++ {
		line := a.lines[i]
		if ci, ok := openBlockComment(line); ok {
			i = a.collectComment(i, ci)
			continue
		}
		pl := a.p.parseLine(line, i+1)
		if pl == nil {
			continue
		}
		a.place(pl)
		if pl.openValue {
			i = a.collectValue(i, pl)
		}
	}
}

// place attaches a classified line to the tree: the stack pops while the
// line's indent does not exceed the top, the node attaches to the new top
// (or the root sequence), and blocks push.
func (a *asm) place(pl *parsedLine) {
	for len(a.stack) > 0 && pl.indent <= a.stack[len(a.stack)-1].indent {
		a.stack = a.stack[:len(a.stack)-1]
	}
	if pl.node == nil {
		return
	}
	if len(a.stack) == 0 {
		a.roots = append(a.roots, pl.node)
	} else {
		a.stack[len(a.stack)-1].block.Append(pl.node)
	}
	if pl.node.Kind == ast.BlockKind {
		a.stack = append(a.stack, frame{indent: pl.indent, block: pl.node})
	}
}

// collectValue consumes the lines following a bare trailing colon while
// they are indented deeper than the opening block, then re-parses the
// collected text as the block's value. Returns the index of the last
// consumed line.
func (a *asm) collectValue(i int, pl *parsedLine) int {
	j := i + 1
	var collected []string
	for ; j < len(a.lines); j++ {
		l := a.lines[j]
		ind := indentOf(l)
		if ind < 0 {
			collected = append(collected, l)
			continue
		}
		if ind <= pl.indent {
			break
		}
		collected = append(collected, l)
	}
	end := len(collected)
	for end > 0 && strings.TrimSpace(collected[end-1]) == "" {
		end--
	}
	if end == 0 {
		return j - 1
	}
	v := a.p.parseCollected(collected[:end], i+2)
	vn := ast.NewValue(v, v.Pos)
	vn.Multiline = true
	pl.node.Append(vn)
	return j - 1
}

// collectComment handles a `/*` with no terminator on its line: content
// before the opener is emitted first, raw lines are consumed until one
// contains `*/` (or EOF acts as the terminator), and content after the
// terminator continues normal processing on that line.
func (a *asm) collectComment(i, ci int) int {
	line := a.lines[i]
	if before := line[:ci]; strings.TrimSpace(before) != "" {
		if pl := a.p.parseLine(before, i+1); pl != nil {
			a.place(pl)
		}
	}
	texts := []string{line[ci+2:]}
	endLine, endCol := i+1, len(line)
	j := i + 1
	var after string
	terminated := false
	for ; j < len(a.lines); j++ {
		l := a.lines[j]
		if k := strings.Index(l, "*/"); k >= 0 {
			texts = append(texts, l[:k])
			endLine, endCol = j+1, k+2
			after = l[k+2:]
			terminated = true
			break
		}
		texts = append(texts, l)
	}
	if !terminated {
		j = len(a.lines) - 1
		endLine, endCol = len(a.lines), len(a.lines[len(a.lines)-1])
	}
	text := strings.TrimSpace(strings.Join(texts, "\n"))
	node := ast.NewComment(text, false, token.Span(i+1, ci, endLine, endCol))
	a.place(&parsedLine{indent: ci, node: node})

	if strings.TrimSpace(after) != "" {
		// pad so columns keep their source offsets
		padded := strings.Repeat(" ", endCol) + after
		if pl := a.p.parseLine(padded, j+1); pl != nil {
			a.place(pl)
			if pl.openValue {
				return a.collectValue(j, pl)
			}
		}
	}
	return j
}

// openBlockComment reports the column of a `/*` that has no `*/` after it
// on the same line, scanning outside quotes and stopping at `//`.
func openBlockComment(line string) (int, bool) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == quote && !escapedAt(line, i) {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '/':
			if i+1 >= len(line) {
				return 0, false
			}
			switch line[i+1] {
			case '/':
				return 0, false
			case '*':
				rel := strings.Index(line[i+2:], "*/")
				if rel < 0 {
					return i, true
				}
				i += 2 + rel + 1
			}
		}
	}
	return 0, false
}
