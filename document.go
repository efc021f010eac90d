package yamlx

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tony-format/yamlx/debug"
	"github.com/tony-format/yamlx/tree"
)

const (
	defaultIndent           = "    "
	defaultDescriptionField = "__description__"
)

// Documenter renders a tree into annotated text, overlaying an optional
// description tree that mirrors the value's shape and supplies comments
// for its keys.
//
// A description entry for a key is either a string, used directly, or a
// mapping whose description-field entry (default "__description__")
// documents the key itself while its remaining entries document the
// nested keys below it.
//
// A Documenter is immutable after construction and safe for concurrent
// use against trees that are not being mutated.
type Documenter struct {
	indent    string
	descField string
	style     Style
}

// DocumentOption configures a Documenter.
type DocumentOption func(*Documenter)

// DocumentIndent sets the indent unit repeated per nesting depth. The
// default is four spaces.
func DocumentIndent(unit string) DocumentOption {
	return func(d *Documenter) {
		d.indent = unit
	}
}

// DocumentDescriptionField renames the mapping field that documents the
// enclosing key. The default "__description__" only needs changing when
// the documented structure itself uses that name.
func DocumentDescriptionField(name string) DocumentOption {
	return func(d *Documenter) {
		d.descField = name
	}
}

// DocumentStyle installs rendering hooks. Nil hooks keep the
// DefaultStyle behavior, so a Style overriding a single hook is fine.
func DocumentStyle(s Style) DocumentOption {
	return func(d *Documenter) {
		d.style = s
	}
}

func NewDocumenter(opts ...DocumentOption) *Documenter {
	d := &Documenter{
		indent:    defaultIndent,
		descField: defaultDescriptionField,
		style:     DefaultStyle(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.style = d.style.withDefaults()
	return d
}

// Document renders value with the default configuration. description
// may be nil.
func Document(value, description *yaml.Node) (string, error) {
	return NewDocumenter().Apply(value, description)
}

// Apply renders value, reading descriptions for its keys out of
// description when present. The value tree is not modified.
func (d *Documenter) Apply(value, description *yaml.Node) (string, error) {
	if debug.Document() {
		debug.Logf("document value\n%s", debug.Node{Node: value})
	}
	return d.render(value, description, nil)
}

func (d *Documenter) render(n, desc *yaml.Node, path tree.Path) (string, error) {
	n = tree.Resolve(n)
	switch tree.TypeOf(n) {
	case tree.MappingType:
		return d.renderMapping(n, desc, path)
	case tree.ListType:
		return d.renderList(n, path)
	case tree.TaggedType:
		// The tag itself is not rendered: mask it and document the
		// value underneath with the same description and path.
		nn := *n
		nn.Tag = ""
		return d.render(&nn, desc, path)
	default:
		s, err := tree.ScalarString(n)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSerialize, err)
		}
		return s, nil
	}
}

func (d *Documenter) renderMapping(m, desc *yaml.Node, path tree.Path) (string, error) {
	descMap := tree.Resolve(desc)
	if descMap != nil && tree.TypeOf(descMap) != tree.MappingType {
		descMap = nil
	}
	indent := strings.Repeat(d.indent, len(path))
	entries := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]

		descText, childDesc := d.lookupDescription(descMap, k)
		key := tree.KeyString(k)
		childPath := path.Child(key)
		val, err := d.render(v, childDesc, childPath)
		if err != nil {
			return "", err
		}
		ty := tree.TypeOf(v)
		entries = append(entries, d.style.FormatEntry(Entry{
			Key:         key,
			Type:        ty,
			TypeLabel:   d.style.TypeLabel(ty),
			Description: descText,
			Value:       val,
			Indent:      indent,
			Path:        childPath,
		}))
	}
	return d.style.FormatMapping(Block{Entries: entries, Indent: indent, Path: path}), nil
}

// lookupDescription finds the description entry for one key. A string
// entry documents the key and nothing below it; a mapping entry may
// document the key through the description field and descends to the
// nested keys.
func (d *Documenter) lookupDescription(descMap, key *yaml.Node) (*string, *yaml.Node) {
	de := tree.Resolve(tree.GetNode(descMap, key))
	if de == nil {
		return nil, nil
	}
	switch tree.TypeOf(de) {
	case tree.StringType:
		s := de.Value
		return &s, nil
	case tree.MappingType:
		df := tree.Resolve(tree.Get(de, d.descField))
		if df != nil && tree.TypeOf(df) == tree.StringType {
			s := df.Value
			return &s, de
		}
		return nil, de
	default:
		return nil, nil
	}
}

func (d *Documenter) renderList(l *yaml.Node, path tree.Path) (string, error) {
	indent := strings.Repeat(d.indent, len(path))
	entries := make([]string, 0, len(l.Content))
	for i, el := range l.Content {
		s, err := d.render(el, nil, path.Index(i))
		if err != nil {
			return "", err
		}
		entries = append(entries, s)
	}
	return d.style.FormatList(Block{Entries: entries, Indent: indent, Path: path}), nil
}
