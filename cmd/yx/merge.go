package main

import (
	"fmt"

	"github.com/tony-format/yamlx"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
	goccy "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 args, got %v", cli.ErrUsage, args)
	}
	dst, err := getTreeFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	for _, arg := range args[1:] {
		src, err := getTreeFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if cfg.Patch {
			dst, err = applyMergePatch(dst, src)
			if err != nil {
				return fmt.Errorf("error patching with %s: %w", arg, err)
			}
			continue
		}
		if err := yamlx.Merge(dst, src); err != nil {
			return fmt.Errorf("error merging %s: %w", arg, err)
		}
	}
	return cfg.writeTree(cc.Out, dst)
}

// applyMergePatch round-trips both trees through JSON and applies patch to
// target per RFC 7386.  Comments and custom tags do not survive the trip.
func applyMergePatch(target, patch *yaml.Node) (*yaml.Node, error) {
	targetText, err := yamlx.EncodeText(target)
	if err != nil {
		return nil, err
	}
	patchText, err := yamlx.EncodeText(patch)
	if err != nil {
		return nil, err
	}
	targetJSON, err := goccy.YAMLToJSON([]byte(targetText))
	if err != nil {
		return nil, err
	}
	patchJSON, err := goccy.YAMLToJSON([]byte(patchText))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(targetJSON, patchJSON)
	if err != nil {
		return nil, err
	}
	outYAML, err := goccy.JSONToYAML(out)
	if err != nil {
		return nil, err
	}
	return yamlx.ParseText(string(outYAML))
}
