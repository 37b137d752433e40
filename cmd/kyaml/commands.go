package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "kyaml").
		WithSynopsis("kyaml [opts] command [opts] [files]").
		WithDescription("kyaml formats and validates KYAML files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kyamlMain(cfg, cc, args)
		}).
		WithSubs(
			FormatCommand(cfg),
			ValidateCommand(cfg),
			DigestCommand(cfg),
			HelpCommand())
}

func FormatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FormatConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Format, "format").
		WithAliases("f", "fmt").
		WithSynopsis("format [-w] [files]").
		WithDescription("format YAML files as KYAML, reading stdin if no files are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v", "check").
		WithSynopsis("validate [-diff] [-q] [files]").
		WithDescription("check that files are canonical KYAML, reading stdin if no files are given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validateFiles(cfg, cc, args)
		})
}

func DigestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DigestConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Digest, "digest").
		WithAliases("d").
		WithSynopsis("digest [files]").
		WithDescription("print the content address (CIDv1, sha2-256) of the canonical form of files").
		WithRun(func(cc *cli.Context, args []string) error {
			return digestFiles(cfg, cc, args)
		})
}

func HelpCommand() *cli.Command {
	return cli.NewCommand("help").
		WithSynopsis("help").
		WithDescription("show usage").
		WithRun(func(cc *cli.Context, args []string) error {
			return printUsage(cc.Out)
		})
}
