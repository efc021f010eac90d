package yamlx

import (
	"strings"

	"github.com/fatih/color"

	"github.com/tony-format/yamlx/tree"
)

type Colorable struct {
	Type tree.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	LabelColor
	ValueColor
	SepColor
)

// Colors maps (value type, attribute) pairs to sprintf-style coloring
// functions. Missing pairs fall through to Default, which passes text
// unchanged.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tree.Types() {
		able := Colorable{
			Type: t,
			Attr: CommentColor,
		}
		colors.Map[able] = color.BlueString
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		able.Attr = LabelColor
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = tree.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = tree.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = tree.BoolType
	colors.Map[able] = color.CyanString

	able.Type = tree.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t tree.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t tree.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// ColorStyle renders like DefaultStyle with ANSI colors on comments,
// keys, type labels and leaf values. Color output honors the fatih/color
// global NoColor switch.
func ColorStyle() Style {
	return ColorStyleWith(NewColors())
}

// ColorStyleWith builds the colored style over a caller-supplied color
// table.
func ColorStyleWith(colors *Colors) Style {
	s := DefaultStyle()
	s.FormatEntry = func(e Entry) string {
		var b strings.Builder
		if e.Description != nil {
			b.WriteString(e.Indent)
			b.WriteString(colors.Color(e.Type, CommentColor, "# "+*e.Description))
			b.WriteString("\n")
		}
		b.WriteString(e.Indent)
		b.WriteString(colors.Color(e.Type, KeyColor, e.Key))
		b.WriteString(colors.Color(e.Type, LabelColor, e.TypeLabel))
		b.WriteString(colors.Color(e.Type, SepColor, ":"))
		b.WriteString(" ")
		if e.Type.IsLeaf() {
			b.WriteString(colors.Color(e.Type, ValueColor, strings.TrimSuffix(e.Value, "\n")))
			b.WriteString("\n")
			return b.String()
		}
		b.WriteString(e.Value)
		return b.String()
	}
	return s
}
