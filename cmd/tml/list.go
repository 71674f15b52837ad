package main

import (
	"fmt"
	"strings"

	"github.com/tml-format/go-tml/ast"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
		}
	}
	for _, arg := range orStdin(args) {
		if err := listArg(cfg, cc, arg, prg); err != nil {
			return fmt.Errorf("error listing %s: %w", arg, err)
		}
	}
	return nil
}

func listArg(cfg *ListConfig, cc *cli.Context, arg string, prg *vm.Program) error {
	nodes, err := getDocFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var sel []*ast.Node
	for _, root := range nodes {
		err := root.Visit(func(n *ast.Node, isPost bool) (bool, error) {
			if isPost || n.Kind != ast.BlockKind {
				return true, nil
			}
			if prg == nil {
				sel = append(sel, n)
				return true, nil
			}
			v, err := expr.Run(prg, blockEnv(n))
			if err != nil {
				return false, err
			}
			if v.(bool) {
				sel = append(sel, n)
			}
			return true, nil
		})
		if err != nil {
			return err
		}
	}
	for _, n := range sel {
		fmt.Fprintf(cc.Out, "%s\t%s\n", n.Pos.Start, blockPath(n))
	}
	return nil
}

// blockEnv is the variable scope a -where expression runs in.
func blockEnv(n *ast.Node) map[string]any {
	attrs := map[string]any{}
	for _, c := range n.Children {
		if c.Kind == ast.AttrKind {
			attrs[c.Key] = valueEnv(c.Value)
		}
	}
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	env := map[string]any{
		"name":     n.Name,
		"attrs":    attrs,
		"depth":    depth,
		"children": len(n.Blocks()),
		"line":     n.Pos.Start.Line,
	}
	if v := n.BlockValue(); v != nil {
		env["value"] = valueEnv(v.Value)
	}
	return env
}

func valueEnv(v *ast.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ast.StringType:
		return v.String
	case ast.NumberType:
		return v.Number
	case ast.BoolType:
		return v.Bool
	case ast.ObjectType:
		m := map[string]any{}
		for _, f := range v.Fields {
			if f.IsComment() {
				continue
			}
			m[f.Key] = valueEnv(f.Value)
		}
		return m
	case ast.ArrayType:
		var s []any
		for _, e := range v.Elements {
			if e.Type == ast.CommentType {
				continue
			}
			s = append(s, valueEnv(e))
		}
		return s
	}
	return nil
}

func blockPath(n *ast.Node) string {
	var segs []string
	for ; n != nil; n = n.Parent {
		if n.Kind == ast.BlockKind {
			segs = append(segs, n.Name)
		}
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, ".")
}
