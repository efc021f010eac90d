package tree

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolve unwraps document nodes and follows alias chains until it
// reaches a concrete value node. Trees are assumed acyclic, which the
// yaml parser guarantees.
func Resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// Clone deep-copies a node. Aliases are resolved into copies of their
// targets and anchors are dropped, so the result never shares structure
// with the source tree.
func Clone(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return Clone(n.Alias)
	}
	out := *n
	out.Anchor = ""
	out.Alias = nil
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, c := range n.Content {
			out.Content[i] = Clone(c)
		}
	}
	return &out
}

func Mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func FromString(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// Get returns the value stored under a string key, or nil. Only plain
// string keys match; a number or tagged key never equals a string key.
func Get(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keyMatches(m.Content[i], key) {
			return m.Content[i+1]
		}
	}
	return nil
}

// GetNode returns the value stored under a key of any shape, or nil.
func GetNode(m, key *yaml.Node) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	id := keyIdentity(key)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keyIdentity(m.Content[i]) == id {
			return m.Content[i+1]
		}
	}
	return nil
}

// Set stores a value under a string key, overwriting in place when the
// key exists and appending otherwise. The mapping's insertion order is
// preserved either way. Set panics when m does not resolve to a
// mapping; check TypeOf first when the shape is not known.
func Set(m *yaml.Node, key string, val *yaml.Node) {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		panic("tree: Set on a non-mapping node")
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keyMatches(m.Content[i], key) {
			m.Content[i+1] = val
			return
		}
	}
	m.Content = append(m.Content, FromString(key), val)
}

// SetNode is Set for keys of any shape. Like Set it panics on a
// non-mapping destination.
func SetNode(m, key, val *yaml.Node) {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		panic("tree: SetNode on a non-mapping node")
	}
	id := keyIdentity(key)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keyIdentity(m.Content[i]) == id {
			m.Content[i+1] = val
			return
		}
	}
	m.Content = append(m.Content, key, val)
}

// Delete removes a string key and returns its value, or nil when the
// key is absent.
func Delete(m *yaml.Node, key string) *yaml.Node {
	m = Resolve(m)
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if keyMatches(m.Content[i], key) {
			val := m.Content[i+1]
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return val
		}
	}
	return nil
}

func keyMatches(k *yaml.Node, key string) bool {
	k = Resolve(k)
	return k != nil && k.Kind == yaml.ScalarNode && TypeOf(k) == StringType && k.Value == key
}

// keyIdentity builds a comparison key for mapping lookups: the resolved
// tag plus the display text. It distinguishes 42 from "42" while
// treating structurally equal collection keys as the same key.
func keyIdentity(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil {
		return ""
	}
	return n.ShortTag() + "\x00" + KeyString(n)
}

// KeyString renders a mapping key for display: scalar keys verbatim,
// collection keys as their one-line flow encoding.
func KeyString(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil {
		return "null"
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value
	}
	c := Clone(n)
	c.Style = yaml.FlowStyle
	d, err := yaml.Marshal(c)
	if err != nil {
		return "<" + KindType(n).String() + ">"
	}
	return strings.TrimSpace(string(d))
}
