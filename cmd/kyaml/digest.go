package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func digestFiles(cfg *DigestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Digest.Parse(cc, args)
	if err != nil {
		return err
	}
	tool, err := cfg.tool()
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		in, err := readInput(cc, file)
		if err != nil {
			return err
		}
		c, err := tool.Digest(in)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		fmt.Fprintf(cc.Out, "%s  %s\n", c, file)
	}
	return nil
}
