package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/kyaml"
	"github.com/signadot/kyaml/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent   int  `cli:"name=indent desc='spaces per nesting level'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth, 0 for no limit'"`
	Dups     bool `cli:"name=dups desc='let the last of duplicate mapping keys win'"`
	Color    bool `cli:"name=color desc='format with color'"`
	Verbose  bool `cli:"name=v desc='log progress to stderr'"`
	Src      bool `cli:"name=src desc='show offending source lines in parse errors'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) tool() (*kyaml.Tool, error) {
	if cfg.Indent < 1 {
		return nil, fmt.Errorf("%w: -indent must be positive, got %d", cli.ErrUsage, cfg.Indent)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: -depth must not be negative, got %d", cli.ErrUsage, cfg.MaxDepth)
	}
	tool := kyaml.DefaultTool()
	tool.Indent = cfg.Indent
	tool.MaxDepth = cfg.MaxDepth
	tool.AllowDuplicateKeys = cfg.Dups
	tool.SourceInErrors = cfg.Src
	return tool, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.MaxDepth(cfg.MaxDepth),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
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

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type FormatConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the source files'"`

	Format *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	Diff  bool `cli:"name=diff desc='show how the input differs from canonical form'"`
	Quiet bool `cli:"name=q desc='report through the exit code only'"`

	Validate *cli.Command
}

type DigestConfig struct {
	*MainConfig

	Digest *cli.Command
}
