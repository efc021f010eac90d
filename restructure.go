package yamlx

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tony-format/yamlx/debug"
	"github.com/tony-format/yamlx/tree"
)

// Restructurer rewrites mapping keys containing dots into nested
// sub-mappings, so that
//
//	foo.bar.baz: 42
//
// becomes
//
//	foo:
//	  bar:
//	    baz: 42
//
// A Restructurer carries no state across calls and may be reused.
type Restructurer struct {
	recursive bool
	ignore    []string
}

// RestructureOption configures a Restructurer.
type RestructureOption func(*Restructurer)

// RestructureRecursive controls whether nested mappings are rewritten
// too. The default is true; with false only top-level keys are split.
func RestructureRecursive(on bool) RestructureOption {
	return func(r *Restructurer) {
		r.recursive = on
	}
}

// RestructureIgnore registers dotted prefixes that stay whole. A key
// equal to a registered prefix is left untouched; a key starting with
// the prefix plus a dot splits after the whole prefix instead of at its
// first dot. Prefixes are consulted in registration order and the first
// match wins.
func RestructureIgnore(prefixes ...string) RestructureOption {
	return func(r *Restructurer) {
		r.ignore = append(r.ignore, prefixes...)
	}
}

func NewRestructurer(opts ...RestructureOption) *Restructurer {
	r := &Restructurer{recursive: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Restructure rewrites n in place with the default configuration:
// recursive, no ignored prefixes.
func Restructure(n *yaml.Node) error {
	return NewRestructurer().Apply(n)
}

// Apply rewrites n in place. n must resolve to a mapping. On error the
// tree may hold a partial rewrite: keys are processed independently and
// work done before the failing key is kept, not rolled back.
func (r *Restructurer) Apply(n *yaml.Node) error {
	m := tree.Resolve(n)
	if tree.TypeOf(m) != tree.MappingType {
		return fmt.Errorf("%w: not a mapping, found %s", ErrRestructure, tree.TypeOf(m))
	}

	// Splitting removes and inserts entries, so eligible keys are
	// snapshotted before any mutation begins.
	var dotted []string
	for i := 0; i+1 < len(m.Content); i += 2 {
		k := m.Content[i]
		if tree.TypeOf(k) != tree.StringType {
			continue
		}
		if c := strings.IndexByte(k.Value, '.'); c > 0 && c < len(k.Value)-1 {
			dotted = append(dotted, k.Value)
		}
	}
	if debug.Restructure() {
		debug.Logf("restructure: %d dotted keys in\n%s", len(dotted), debug.Node{Node: m})
	}
	for _, k := range dotted {
		if err := r.restructureKey(m, k); err != nil {
			return err
		}
	}

	if !r.recursive {
		return nil
	}
	var subs []string
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if tree.TypeOf(k) == tree.StringType && tree.TypeOf(v) == tree.MappingType {
			subs = append(subs, k.Value)
		}
	}
	for _, k := range subs {
		if err := r.Apply(tree.Get(m, k)); err != nil {
			return err
		}
	}
	return nil
}

// ApplyText parses one YAML document, rewrites it and returns the tree.
func (r *Restructurer) ApplyText(text string) (*yaml.Node, error) {
	n, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	if err := r.Apply(n); err != nil {
		return nil, err
	}
	return n, nil
}

// restructureKey moves one dotted key into its nested position. The
// suffix may itself be dotted, in which case the move repeats inside the
// sub-mapping.
func (r *Restructurer) restructureKey(m *yaml.Node, k string) error {
	c := strings.IndexByte(k, '.')
	if c < 0 {
		return nil
	}
	prefix, suffix := k[:c], k[c+1:]
	for _, ig := range r.ignore {
		if k == ig {
			return nil
		}
		if strings.HasPrefix(k, ig+".") {
			prefix, suffix = ig, k[len(ig)+1:]
			break
		}
	}
	if prefix == "" || suffix == "" {
		return nil
	}

	val := tree.Delete(m, k)
	if val == nil {
		return nil
	}
	if tree.Get(m, prefix) == nil {
		tree.Set(m, prefix, tree.Mapping())
	}
	inner := tree.Resolve(tree.Get(m, prefix))
	if tree.TypeOf(inner) != tree.MappingType {
		return fmt.Errorf("%w: could not insert key %s: %s is not a mapping", ErrRestructure, k, prefix)
	}
	tree.Set(inner, suffix, val)
	return r.restructureKey(inner, suffix)
}
