package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/kyaml/encode"

	"github.com/scott-cotton/cli"
)

func format(cfg *FormatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Format.Parse(cc, args)
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
		v, err := tool.Parse(in)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if cfg.Write && file != stdinName {
			out := bytes.NewBuffer(nil)
			if err := encode.Encode(v, out, encode.Indent(tool.Indent), encode.MaxDepth(tool.MaxDepth)); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			if bytes.Equal(in, out.Bytes()) {
				theLog.Info("unchanged", "file", file)
				continue
			}
			if err := writeFile(file, out.Bytes()); err != nil {
				return err
			}
			theLog.Info("formatted", "file", file)
			continue
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func writeFile(file string, d []byte) error {
	mode := os.FileMode(0644)
	if st, err := os.Stat(file); err == nil {
		mode = st.Mode().Perm()
	}
	if err := os.WriteFile(file, d, mode); err != nil {
		return fmt.Errorf("could not write %q: %w", file, err)
	}
	return nil
}
