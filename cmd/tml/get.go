package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted block path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	for _, arg := range orStdin(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg, path string) error {
	nodes, err := getDocFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	res := resolvePath(nodes, strings.Split(path, "."))
	if len(res) == 0 {
		return nil
	}
	return encodeResults(cfg, cc.Out, res)
}

// resolvePath walks dotted path segments. Each segment selects child
// blocks by name; the final segment may also select an attribute by
// key, in which case the match is a synthetic value node.
func resolvePath(nodes []*ast.Node, segs []string) []*ast.Node {
	if len(segs) == 0 {
		return nil
	}
	seg, rest := segs[0], segs[1:]
	var res []*ast.Node
	for _, n := range nodes {
		if n.Kind != ast.BlockKind {
			continue
		}
		if n.Name == seg {
			if len(rest) == 0 {
				res = append(res, n)
				continue
			}
			res = append(res, resolvePath(n.Children, rest)...)
		}
	}
	if len(res) > 0 || len(segs) != 1 {
		return res
	}
	// no block matched the final segment; try attributes
	for _, n := range nodes {
		if n.Kind == ast.AttrKind && n.Key == seg {
			res = append(res, ast.NewValue(n.Value, n.Pos))
		}
	}
	return res
}

func encodeResults(cfg *MainConfig, w io.Writer, res []*ast.Node) error {
	for i, n := range res {
		if i > 0 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode([]*ast.Node{n}, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
