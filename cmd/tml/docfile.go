package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/parse"

	"github.com/scott-cotton/cli"
)

// getDocFile reads and parses one TML document, with "-" meaning the
// command context's input stream.
func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) ([]*ast.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(string(d), opts...), nil
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// orStdin makes a bare invocation read the input stream.
func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
