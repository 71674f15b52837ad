package token

import "testing"

func TestIsNumber(t *testing.T) {
	yes := []string{
		"0", "7", "42", "-1", "+3", "3.14", "-0.5",
		"1e14", "2E-3", "6.02e23", "0.0",
	}
	for _, s := range yes {
		if !IsNumber(s) {
			t.Errorf("IsNumber(%q) = false", s)
		}
	}
	no := []string{
		"", "-", "+", ".", "1.", ".5", "1e", "1e+", "abc",
		"1a", "0x10", "Infinity", "NaN", "1 2", "--2",
	}
	for _, s := range no {
		if IsNumber(s) {
			t.Errorf("IsNumber(%q) = true", s)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"-1.5", -1.5, true},
		{"1e3", 1000, true},
		{"+0.25", 0.25, true},
		{"port", 0, false},
		{"1.", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, ok := Float(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("Float(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
