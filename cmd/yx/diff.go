package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff compares the canonical encodings of two documents line by line and
// exits non-zero when they differ.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getTreeFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getTreeFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	aText, err := yamlx.EncodeText(a)
	if err != nil {
		return err
	}
	bText, err := yamlx.EncodeText(b)
	if err != nil {
		return err
	}
	if aText == bText {
		return nil
	}
	dmp := diffmatchpatch.New()
	aRunes, bRunes, lines := dmp.DiffLinesToChars(aText, bText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(aRunes, bRunes, false), lines)
	if err := writeDiffs(cc.Out, diffs, cfg.colorsOn(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiffs(w io.Writer, diffs []diffmatchpatch.Diff, useColor bool) error {
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, d := range diffs {
		prefix := " "
		paint := func(a ...any) string { return fmt.Sprint(a...) }
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			if useColor {
				paint = ins
			}
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			if useColor {
				paint = del
			}
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if _, err := io.WriteString(w, paint(prefix+line)+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
