package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/tml-format/go-tml/encode"
	"github.com/tml-format/go-tml/parse"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Diff && cfg.Write {
		return fmt.Errorf("%w: -d and -w are mutually exclusive", cli.ErrUsage)
	}
	differs := false
	for _, arg := range orStdin(args) {
		d, err := fmtFile(cfg, cc, arg)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", arg, err)
		}
		differs = differs || d
	}
	if cfg.Diff && differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, path string) (bool, error) {
	in, err := readFile(cc, path)
	if err != nil {
		return false, err
	}
	nodes := parse.Parse(string(in), cfg.parseOpts()...)
	out := encode.MustString(nodes, encode.EncodePretty(!cfg.Compact))
	differs := out != string(in)
	switch {
	case cfg.Diff:
		if differs {
			printDiff(cfg, cc, path, string(in), out)
		}
		return differs, nil
	case cfg.Write:
		if path == "-" {
			return false, fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		if !differs {
			return false, nil
		}
		return true, os.WriteFile(path, []byte(out), 0o644)
	default:
		return differs, encode.Encode(nodes, cc.Out, cfg.encOpts(cc.Out)...)
	}
}

// printDiff emits a line diff with -/+ markers, computed in
// diffmatchpatch's line mode.
func printDiff(cfg *FmtConfig, cc *cli.Context, path, from, to string) {
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n", path, path)
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		mark := " "
		switch d.Type {
		case diffpatch.DiffDelete:
			mark = "-"
		case diffpatch.DiffInsert:
			mark = "+"
		}
		for _, ln := range splitDiffLines(d.Text) {
			fmt.Fprintf(cc.Out, "%s%s\n", mark, ln)
		}
	}
}

func splitDiffLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
