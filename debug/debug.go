// Package debug holds env-var driven debug switches for the parser and
// tooling. Flags are read once at startup.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type dbg struct {
	Parse bool
	Index bool
	LSP   bool
}

var d *dbg

func init() {
	d = &dbg{}
	d.Parse = boolEnv("TML_DEBUG_PARSE")
	d.Index = boolEnv("TML_DEBUG_INDEX")
	d.LSP = boolEnv("TML_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Index() bool {
	return d.Index
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
