package main

import (
	"fmt"
	"io"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"
)

func document(cfg *DocumentConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Document.Parse(cc, args)
	if err != nil {
		cfg.Document.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Block && cfg.MD {
		return fmt.Errorf("%w: must specify at most one of -block -md", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var desc *yaml.Node
	if cfg.Desc != "" {
		desc, err = getTreeFile(cc, cfg.Desc)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", cfg.Desc, err)
		}
	}
	d := yamlx.NewDocumenter(cfg.documentOpts(cc)...)
	for i, arg := range args {
		value, err := getTreeFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		text, err := d.Apply(value, desc)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(cc.Out, text); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *DocumentConfig) documentOpts(cc *cli.Context) []yamlx.DocumentOption {
	style := yamlx.DefaultStyle()
	switch {
	case cfg.MD:
		style = yamlx.MarkdownStyle()
	case cfg.Block:
		style = yamlx.BlockStyle()
	}
	// ColorStyle only replaces entry formatting, so it composes with the
	// block list style.
	if !cfg.MD && cfg.colorsOn(cc.Out) {
		style.FormatEntry = yamlx.ColorStyle().FormatEntry
	}
	opts := []yamlx.DocumentOption{yamlx.DocumentStyle(style)}
	if cfg.Indent != "" {
		opts = append(opts, yamlx.DocumentIndent(cfg.Indent))
	}
	if cfg.Field != "" {
		opts = append(opts, yamlx.DocumentDescriptionField(cfg.Field))
	}
	return opts
}
