package yamlx

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tony-format/yamlx/debug"
	"github.com/tony-format/yamlx/tree"
)

// Merge deep-combines src into dst. Both must resolve to mappings.
//
// Keys present only in src are inserted. At a shared key, a non-mapping
// src value replaces whatever dst holds; a mapping src value merges
// recursively, which fails when dst holds a non-mapping there. Inserted
// values are deep copies, so later edits to src never show through dst.
//
// Tagged nodes never merge structurally; a tagged mapping replaces the
// destination value the way a scalar does.
func Merge(dst, src *yaml.Node) error {
	dm, sm := tree.Resolve(dst), tree.Resolve(src)
	if tree.TypeOf(dm) != tree.MappingType || tree.TypeOf(sm) != tree.MappingType {
		return fmt.Errorf("%w: both arguments must be mappings, found %s and %s",
			ErrMerge, tree.TypeOf(dm), tree.TypeOf(sm))
	}
	if debug.Merge() {
		debug.Logf("merge\n%s\ninto\n%s", debug.Node{Node: sm}, debug.Node{Node: dm})
	}
	for i := 0; i+1 < len(sm.Content); i += 2 {
		k, v := sm.Content[i], sm.Content[i+1]
		if tree.TypeOf(v) != tree.MappingType {
			tree.SetNode(dm, tree.Clone(k), tree.Clone(v))
			continue
		}
		if existing := tree.GetNode(dm, k); existing != nil {
			if err := Merge(existing, v); err != nil {
				return err
			}
			continue
		}
		tree.SetNode(dm, tree.Clone(k), tree.Clone(v))
	}
	return nil
}
