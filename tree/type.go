package tree

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ListType
	MappingType
	TaggedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		NumberType:  "Number",
		StringType:  "String",
		ListType:    "List",
		MappingType: "Mapping",
		TaggedType:  "Tagged",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"String":  StringType,
		"List":    ListType,
		"Mapping": MappingType,
		"Tagged":  TaggedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		NumberType,
		StringType,
		ListType,
		MappingType,
		TaggedType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, MappingType, TaggedType:
		return false
	default:
		return true
	}
}

// TypeOf classifies a node after resolving document and alias wrappers.
// A custom (non "!!") tag makes the node Tagged regardless of its kind.
func TypeOf(n *yaml.Node) Type {
	n = Resolve(n)
	if n == nil {
		return NullType
	}
	if isCustomTag(n.Tag) {
		return TaggedType
	}
	return KindType(n)
}

// KindType classifies a node by its kind alone, ignoring any custom tag.
// This is the "unwrapped" view of a tagged node.
func KindType(n *yaml.Node) Type {
	n = Resolve(n)
	if n == nil || n.Kind == 0 {
		return NullType
	}
	switch n.Kind {
	case yaml.MappingNode:
		return MappingType
	case yaml.SequenceNode:
		return ListType
	case yaml.ScalarNode:
		switch scalarTag(n) {
		case "!!null":
			return NullType
		case "!!bool":
			return BoolType
		case "!!int", "!!float":
			return NumberType
		default:
			return StringType
		}
	default:
		return NullType
	}
}

// scalarTag resolves the short tag a scalar would carry, masking any
// custom tag so resolution runs on the value alone.
func scalarTag(n *yaml.Node) string {
	if !isCustomTag(n.Tag) {
		return n.ShortTag()
	}
	nn := *n
	nn.Tag = ""
	return nn.ShortTag()
}

func isCustomTag(tag string) bool {
	return tag != "" && tag != "!" && strings.HasPrefix(tag, "!") && !strings.HasPrefix(tag, "!!")
}
