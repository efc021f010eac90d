package yamlx

import (
	"strings"

	"github.com/tony-format/yamlx/tree"
)

// Entry is the argument to the FormatEntry hook: one mapping entry with
// its value already rendered. Path is the entry's own path, so the entry
// line sits at depth len(Path)-1 and Indent holds that prefix.
type Entry struct {
	Key         string
	Type        tree.Type
	TypeLabel   string
	Description *string
	Value       string
	Indent      string
	Path        tree.Path
}

// Block is the argument to the FormatMapping and FormatList hooks: the
// rendered entries of one container, in order. Path and Indent belong to
// the container itself.
type Block struct {
	Entries []string
	Indent  string
	Path    tree.Path
}

// Style bundles the four rendering hooks of a Documenter. Hooks are pure
// functions of their argument, so one Style can serve any number of
// Documenters concurrently. A nil hook falls back to the DefaultStyle
// behavior.
type Style struct {
	// TypeLabel renders the parenthesized label appended to a key.
	TypeLabel func(t tree.Type) string
	// FormatEntry renders one mapping entry, description line included.
	FormatEntry func(e Entry) string
	// FormatMapping combines rendered entries into a mapping block.
	FormatMapping func(b Block) string
	// FormatList combines rendered elements into a list block.
	FormatList func(b Block) string
}

func (s Style) withDefaults() Style {
	if s.TypeLabel == nil {
		s.TypeLabel = defaultTypeLabel
	}
	if s.FormatEntry == nil {
		s.FormatEntry = defaultFormatEntry
	}
	if s.FormatMapping == nil {
		s.FormatMapping = defaultFormatMapping
	}
	if s.FormatList == nil {
		s.FormatList = defaultFormatList
	}
	return s
}

// DefaultStyle renders plain annotated text. Descriptions become "# "
// comment lines, leaf entries read "key (Number): 42", lists render
// inline as "[a, b, c]".
func DefaultStyle() Style {
	return Style{
		TypeLabel:     defaultTypeLabel,
		FormatEntry:   defaultFormatEntry,
		FormatMapping: defaultFormatMapping,
		FormatList:    defaultFormatList,
	}
}

// BlockStyle is DefaultStyle with lists rendered as indented "- " lines
// instead of inline brackets.
func BlockStyle() Style {
	s := DefaultStyle()
	s.FormatList = blockFormatList
	return s
}

// MarkdownStyle renders a bulleted outline suitable for README files:
// bold keys, italic type labels and descriptions, leaf values in
// backticks.
func MarkdownStyle() Style {
	return Style{
		TypeLabel:     markdownTypeLabel,
		FormatEntry:   markdownFormatEntry,
		FormatMapping: defaultFormatMapping,
		FormatList:    blockFormatList,
	}
}

func defaultTypeLabel(t tree.Type) string {
	switch t {
	case tree.NullType, tree.MappingType, tree.TaggedType:
		return ""
	default:
		return " (" + t.String() + ")"
	}
}

func defaultFormatEntry(e Entry) string {
	var b strings.Builder
	if e.Description != nil {
		b.WriteString(e.Indent)
		b.WriteString("# ")
		b.WriteString(*e.Description)
		b.WriteString("\n")
	}
	b.WriteString(e.Indent)
	b.WriteString(e.Key)
	b.WriteString(e.TypeLabel)
	b.WriteString(": ")
	b.WriteString(e.Value)
	return b.String()
}

// defaultFormatMapping starts nested blocks on a fresh line after the
// parent key. Entries already terminate their own lines.
func defaultFormatMapping(b Block) string {
	s := strings.Join(b.Entries, "")
	if !b.Path.IsRoot() {
		return "\n" + s
	}
	return s
}

func defaultFormatList(b Block) string {
	items := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		items[i] = strings.TrimSpace(e)
	}
	return "[" + strings.Join(items, ", ") + "]\n"
}

func blockFormatList(b Block) string {
	var s strings.Builder
	s.WriteString("\n")
	for _, e := range b.Entries {
		s.WriteString(b.Indent)
		s.WriteString("- ")
		s.WriteString(e)
	}
	return s.String()
}

func markdownTypeLabel(t tree.Type) string {
	switch t {
	case tree.NullType, tree.MappingType, tree.TaggedType:
		return ""
	default:
		return " *(" + t.String() + ")*"
	}
}

func markdownFormatEntry(e Entry) string {
	var b strings.Builder
	b.WriteString(e.Indent)
	b.WriteString("- **")
	b.WriteString(e.Key)
	b.WriteString("**")
	b.WriteString(e.TypeLabel)
	b.WriteString(":")
	if e.Description != nil {
		b.WriteString(" *")
		b.WriteString(*e.Description)
		b.WriteString("*")
	}
	if strings.HasPrefix(e.Value, "\n") {
		b.WriteString(e.Value)
		return b.String()
	}
	b.WriteString(" `")
	b.WriteString(strings.TrimSuffix(e.Value, "\n"))
	b.WriteString("`\n")
	return b.String()
}
