package main

import (
	"fmt"
	"os"

	"github.com/signadot/kyaml/validate"

	"github.com/scott-cotton/cli"
)

func validateFiles(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	files := inputs(args)
	nInvalid := 0
	for _, file := range files {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		res := tool.Validate(in)
		prefix := ""
		if len(files) > 1 {
			prefix = file + ": "
		}
		if res.Valid {
			theLog.Info("valid", "file", file)
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s✓ Valid KYAML\n", prefix)
			}
			continue
		}
		nInvalid++
		if cfg.Quiet {
			continue
		}
		fmt.Fprintf(os.Stderr, "%s✗ Invalid KYAML: %s\n", prefix, res.Error)
		if cfg.Diff && res.Canonical != nil {
			fmt.Fprint(os.Stderr, validate.Diff(string(in), string(res.Canonical)))
		}
	}
	if nInvalid != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
