package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

const stdinName = "-"

// inputs returns the files named by args, or stdin if there are none.
// Option parsing leaves a "--" terminator in args.
func inputs(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func readInput(cc *cli.Context, file string) ([]byte, error) {
	if file == stdinName {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}
