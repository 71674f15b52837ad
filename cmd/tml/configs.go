package main

import (
	"io"
	"os"

	"github.com/tml-format/go-tml/encode"
	"github.com/tml-format/go-tml/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='encode with color'"`
	Compact  bool `cli:"name=compact desc='compact object and array literals'"`
	Indent   int  `cli:"name=indent desc='spaces per nesting level'"`
	Pos      bool `cli:"name=pos desc='annotate output with source positions'"`
	MaxDepth int  `cli:"name=maxDepth desc='max nesting depth for literal values'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, parse.ParseMaxDepth(cfg.MaxDepth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(!cfg.Compact),
		encode.EncodePositions(cfg.Pos),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='print a diff instead of rewriting'"`
	Write bool `cli:"name=w desc='write result back to source files'"`

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='filter expression over name, key, attrs, depth'"`

	List *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Out string `cli:"name=O aliases=ofmt desc='output format: json/j, yaml/y'"`

	Convert *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
