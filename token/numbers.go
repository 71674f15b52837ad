package token

import "strconv"

// IsNumber reports whether s is exactly one numeric literal: an optional
// sign, an integer part, an optional fraction, and an optional exponent.
// The grammar is explicit rather than delegated to the host float parser so
// the String/Number boundary is specified and locale-independent; notably
// "Inf", "NaN" and hex floats are not numbers here.
func IsNumber(s string) bool {
	d := []byte(s)
	if len(d) == 0 {
		return false
	}
	i := 0
	if d[0] == '+' || d[0] == '-' {
		i++
	}
	n, ok := number(d[i:])
	return ok && i+n == len(d)
}

// Float parses s as a number, reporting false when s does not satisfy the
// numeric-literal grammar.
func Float(s string) (float64, bool) {
	if !IsNumber(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func number(d []byte) (int, bool) {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0, false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits + f + e, true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits
		return 0
	}
	return n + 1
}
