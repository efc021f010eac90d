package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"

	goccy "github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='write output in color'"`
	J     bool `cli:"name=j aliases=json desc='write trees as json'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// writeTree encodes n to w, honoring -j.  JSON output goes through the
// canonical YAML encoding first, so anchors are inlined and tags resolved.
func (cfg *MainConfig) writeTree(w io.Writer, n *yaml.Node) error {
	text, err := yamlx.EncodeText(n)
	if err != nil {
		return err
	}
	if !cfg.J {
		_, err = io.WriteString(w, text)
		return err
	}
	d, err := goccy.YAMLToJSON([]byte(text))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, d, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

func (cfg *MainConfig) colorsOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	// it would be nicer if cli supported
	// pointers to builtin types as well...
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type RestructureConfig struct {
	*MainConfig
	Flat   bool `cli:"name=flat desc='split top level keys only'"`
	Ignore []string

	Restructure *cli.Command
}

func (cfg *RestructureConfig) ignoreOpt(_ *cli.Context, a string) (any, error) {
	cfg.Ignore = append(cfg.Ignore, a)
	return a, nil
}

type MergeConfig struct {
	*MainConfig
	Patch bool `cli:"name=patch desc='apply later documents as RFC 7386 merge patches'"`

	Merge *cli.Command
}

type DocumentConfig struct {
	*MainConfig
	Desc   string `cli:"name=d aliases=desc desc='file containing the description document'"`
	Indent string `cli:"name=indent desc='indentation unit for nested entries'"`
	Field  string `cli:"name=field desc='mapping key holding a description'"`
	Block  bool   `cli:"name=block desc='render lists in block style'"`
	MD     bool   `cli:"name=md aliases=markdown desc='render markdown'"`

	Document *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
