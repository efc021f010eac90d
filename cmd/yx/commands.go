package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yx").
		WithSynopsis("yx [opts] command [opts] [args]").
		WithDescription("yx is a tool for restructuring, merging, and documenting YAML trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yxMain(cfg, cc, args)
		}).
		WithSubs(
			RestructureCommand(cfg),
			MergeCommand(cfg),
			DocumentCommand(cfg),
			DiffCommand(cfg))
}

func RestructureCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RestructureConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "ignore",
		Aliases:     []string{"i"},
		Description: "dotted key prefix to keep intact, repeatable",
		Type:        cli.NamedFuncOpt(cfg.ignoreOpt, "(prefix)"),
	})

	cmd := cli.NewCommand("restructure").
		WithAliases("r", "re").
		WithSynopsis("restructure [opts] [files]").
		WithDescription("split dotted mapping keys into nested mappings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return restructure(cfg, cc, args)
		})
	cfg.Restructure = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithAliases("m", "me").
		WithSynopsis("merge [opts] <file> <file> [files]").
		WithDescription("deep-merge YAML documents left to right").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func DocumentCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DocumentConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("document").
		WithAliases("d", "doc").
		WithSynopsis("document [opts] [files]").
		WithDescription("render YAML trees as annotated reference text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return document(cfg, cc, args)
		})
	cfg.Document = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff <file> <file>").
		WithDescription("show line differences between two canonically encoded documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
