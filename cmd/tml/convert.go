package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for i, arg := range orStdin(args) {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := convertArg(cfg, cc, arg); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, arg string) error {
	nodes, err := getDocFile(cc, arg, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	switch cfg.Out {
	case "", "json", "j":
		enc := json.NewEncoder(cc.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case "yaml", "y":
		// go through the JSON projection so yaml sees plain data,
		// not struct internals
		j, err := json.Marshal(nodes)
		if err != nil {
			return err
		}
		var plain any
		if err := json.Unmarshal(j, &plain); err != nil {
			return err
		}
		d, err := yaml.Marshal(plain)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, cfg.Out)
	}
}
