package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

const usage = `
kyaml - Format and validate KYAML files

USAGE:
  kyaml format <file>     Format a YAML file to KYAML
  kyaml validate <file>   Validate if a file is valid KYAML
  kyaml digest <file>     Print the content address of a file's KYAML form
  kyaml help              Show this help message

EXAMPLES:
  kyaml format config.yaml
  kyaml validate config.kyaml
  cat input.yaml | kyaml format
`

func printUsage(w io.Writer) error {
	_, err := io.WriteString(w, usage)
	return err
}

func kyamlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	setVerbose(cfg.Verbose)
	if len(args) == 0 || args[0] == "--help" || args[0] == "-help" {
		return printUsage(cc.Out)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage(os.Stderr)
		return cli.ExitCodeErr(1)
	}
	theLog.Info("running", "command", args[0])
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
