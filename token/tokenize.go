package token

import "strings"

// Tokenize splits one physical line of source into raw text tokens. Tokens
// are separated by spaces that occur outside quotes and outside `{}`/`[]`
// nesting. Token meaning is not interpreted here.
//
// Scanning state is the active quote character (if any) plus open-brace and
// open-bracket depth counters. A quote character toggles the active quote
// unless immediately preceded by a backslash. Brace and bracket depth
// counters update regardless of quote state.
//
// A `//` outside quotes makes the remainder of the line one final token.
// A `/*` outside quotes with a matching `*/` on the same line makes the
// whole comment one token; without a match the `/*` is ordinary text and
// the caller is responsible for multi-line comment collection.
func Tokenize(line string) []string {
	var (
		toks  []string
		cur   strings.Builder
		quote byte
		curl  int
		sqr   int
	)
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	n := len(line)
	for i := 0; i < n; i++ {
		c := line[i]
		switch c {
		case '{':
			curl++
		case '}':
			curl--
		case '[':
			sqr++
		case ']':
			sqr--
		}
		if quote != 0 {
			cur.WriteByte(c)
			if c == quote && !escapedAt(line, i) {
				quote = 0
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			if !escapedAt(line, i) {
				quote = c
			}
			cur.WriteByte(c)
		case c == '/' && i+1 < n && line[i+1] == '/':
			flush()
			return append(toks, line[i:])
		case c == '/' && i+1 < n && line[i+1] == '*':
			end := strings.Index(line[i+2:], "*/")
			if end < 0 {
				cur.WriteByte(c)
				continue
			}
			flush()
			toks = append(toks, line[i:i+2+end+2])
			i += 2 + end + 1
		case (c == ' ' || c == '\t') && curl == 0 && sqr == 0:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return toks
}

func escapedAt(line string, i int) bool {
	return i > 0 && line[i-1] == '\\'
}
