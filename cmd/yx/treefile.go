package main

import (
	"io"
	"os"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"
)

// getTreeFile reads a YAML document from fileName, or from cc.In when
// fileName is "-".
func getTreeFile(cc *cli.Context, fileName string) (*yaml.Node, error) {
	var (
		d   []byte
		err error
	)
	if fileName == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(fileName)
	}
	if err != nil {
		return nil, err
	}
	return yamlx.ParseText(string(d))
}
