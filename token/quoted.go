package token

import "strings"

// IsQuoted reports whether s is delimited by a matching pair of single or
// double quotes.
func IsQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return false
	}
	return s[len(s)-1] == q
}

// Unquote strips the delimiting quotes from s and resolves the escapes
// \n \t \r \" \' \\. When s is not quote-delimited it is returned verbatim;
// this is how unquoted strings are supported.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	inner := s[1 : len(s)-1]
	b := &strings.Builder{}
	b.Grow(len(inner))
	esc := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if !esc {
			if c == '\\' {
				esc = true
				continue
			}
			b.WriteByte(c)
			continue
		}
		esc = false
		switch c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"', '\'', '\\':
			b.WriteByte(c)
		default:
			// unrecognized escape, keep both characters
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NeedsQuote reports whether v must be quoted to survive a parse round
// trip as a string: empty text, text that separates into multiple tokens,
// text that reads as another scalar type, or text that opens a comment or
// a structured literal.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if v == "true" || v == "false" {
		return true
	}
	if IsNumber(v) {
		return true
	}
	if strings.ContainsAny(v, " \t\"'") {
		return true
	}
	if strings.Contains(v, "//") || strings.Contains(v, "/*") {
		return true
	}
	switch v[0] {
	case '{', '[', ':':
		return true
	}
	if strings.ContainsAny(v, "={}[],") || strings.HasSuffix(v, "!") || strings.Contains(v, ":") {
		return true
	}
	return false
}

// Quote wraps v in double quotes, escaping as needed.
func Quote(v string) string {
	b := &strings.Builder{}
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
