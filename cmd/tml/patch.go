package main

import (
	"encoding/json"
	"fmt"

	"github.com/tml-format/go-tml/ast"
	"github.com/tml-format/go-tml/encode"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

// patchCmd applies an RFC 6902 JSON patch to the JSON projection of a
// TML document and re-emits the result as TML.
func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	pd, err := readFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	ops, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	for _, arg := range orStdin(args[1:]) {
		if err := patchArg(cfg, cc, ops, arg); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	return nil
}

func patchArg(cfg *PatchConfig, cc *cli.Context, ops jsonpatch.Patch, arg string) error {
	nodes, err := getDocFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	d, err := json.Marshal(nodes)
	if err != nil {
		return err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return err
	}
	var res []*ast.Node
	if err := json.Unmarshal(out, &res); err != nil {
		return fmt.Errorf("patch result is not a valid document: %w", err)
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
