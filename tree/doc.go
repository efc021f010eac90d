// Package tree provides typed access to YAML documents represented as
// yaml.Node trees.
//
// # Overview
//
// The yaml.Node type from gopkg.in/yaml.v3 is the one representation of
// a YAML document that preserves key order, tags and comments, which the
// transformations in the parent package all depend on. This package adds
// the small vocabulary those transformations share: a semantic Type for
// nodes, mapping accessors that respect insertion order, deep cloning,
// scalar rendering and paths.
//
// # Node Types
//
// Type classifies a node by what it means rather than by its syntax:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: integer or float
//   - StringType: string value
//   - ListType: ordered sequence
//   - MappingType: key-value pairs
//   - TaggedType: any node carrying an application tag such as !custom
//
// TypeOf resolves document and alias wrappers first and reports
// TaggedType for nodes with an application tag. KindType reports the
// underlying shape with the tag masked, which is how a tagged node looks
// once unwrapped.
//
// # Mappings
//
// Mapping nodes store their entries as alternating key and value nodes
// in Content. Get, Set and Delete work with plain string keys, which
// covers almost every document; GetNode and SetNode accept arbitrary key
// nodes for the rest. Set overwrites in place and appends new keys at
// the end, so a round trip through Set never reorders a document.
//
// # Paths
//
// A Path names a location in a tree: mapping keys as-is, list indexes as
// "[i]". Child copies on append, so paths recorded during a walk remain
// stable after the walk moves on.
//
//	tree.Path{"spec", "containers"}.Index(0).String() // "spec.containers[0]"
package tree
