package main

import (
	"fmt"
	"io"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"
)

func restructure(cfg *RestructureConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Restructure.Parse(cc, args)
	if err != nil {
		cfg.Restructure.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	r := yamlx.NewRestructurer(
		yamlx.RestructureRecursive(!cfg.Flat),
		yamlx.RestructureIgnore(cfg.Ignore...))
	for i, arg := range args {
		doc, err := getTreeFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := r.Apply(doc); err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := cfg.writeTree(cc.Out, doc); err != nil {
			return err
		}
	}
	return nil
}
