package yamlx

import (
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/tony-format/yamlx/tree"
)

func TestDocument(t *testing.T) {
	tests := []struct {
		name  string
		value string
		desc  string
		opts  []DocumentOption
		want  string
	}{
		{
			name:  "described nested mapping",
			value: "foo:\n  bar: 42",
			desc:  "foo:\n  __description__: Description for foo.\n  bar: Description for bar",
			want:  "# Description for foo.\nfoo: \n    # Description for bar\n    bar (Number): 42\n",
		},
		{
			name:  "no descriptions",
			value: "foo:\n  bar: 42",
			want:  "foo: \n    bar (Number): 42\n",
		},
		{
			name:  "string description does not descend",
			value: "foo:\n  bar: 42",
			desc:  "foo: Top doc",
			want:  "# Top doc\nfoo: \n    bar (Number): 42\n",
		},
		{
			name:  "non-string non-mapping description is ignored",
			value: "foo: 1",
			desc:  "foo: 42",
			want:  "foo (Number): 1\n",
		},
		{
			name:  "custom indent",
			value: "foo:\n  bar: 42",
			desc:  "foo:\n  __description__: Description for foo.\n  bar: Description for bar",
			opts:  []DocumentOption{DocumentIndent("..")},
			want:  "# Description for foo.\nfoo: \n..# Description for bar\n..bar (Number): 42\n",
		},
		{
			name:  "renamed description field",
			value: "foo:\n  bar: 42",
			desc:  "foo:\n  _doc: D foo\n  bar: D bar",
			opts:  []DocumentOption{DocumentDescriptionField("_doc")},
			want:  "# D foo\nfoo: \n    # D bar\n    bar (Number): 42\n",
		},
		{
			name:  "scalar kinds",
			value: "a: true\nb: x\nc: null\nd: 4.2",
			want:  "a (Bool): true\nb (String): x\nc: null\nd (Number): 4.2\n",
		},
		{
			name:  "inline list",
			value: "items: [1, 2, 3]",
			want:  "items (List): [1, 2, 3]\n",
		},
		{
			name:  "empty list",
			value: "items: []",
			want:  "items (List): []\n",
		},
		{
			name:  "block list preset",
			value: "items: [1, 2, 3]",
			opts:  []DocumentOption{DocumentStyle(BlockStyle())},
			want:  "items (List): \n    - 1\n    - 2\n    - 3\n",
		},
		{
			name:  "block list of mappings",
			value: "steps:\n  - name: a\n  - name: b",
			opts:  []DocumentOption{DocumentStyle(BlockStyle())},
			want:  "steps (List): \n    - \n        name (String): a\n    - \n        name (String): b\n",
		},
		{
			name:  "tagged mapping unwraps",
			value: "secret: !vault\n  user: admin",
			desc:  "secret:\n  __description__: Vault ref\n  user: Login name",
			want:  "# Vault ref\nsecret: \n    # Login name\n    user (String): admin\n",
		},
		{
			name:  "tagged scalar unwraps",
			value: "port: !env 8080",
			want:  "port: 8080\n",
		},
		{
			name:  "tagged quoted string stays a string",
			value: `v: !raw "42"`,
			want:  "v: \"42\"\n",
		},
		{
			name:  "non-string key",
			value: "1: x",
			want:  "1 (String): x\n",
		},
		{
			name:  "root scalar",
			value: "42",
			want:  "42\n",
		},
		{
			name:  "root list",
			value: "- a\n- b",
			want:  "[a, b]\n",
		},
		{
			name:  "single hook override",
			value: "foo:\n  bar: 42",
			opts: []DocumentOption{DocumentStyle(Style{
				TypeLabel: func(t tree.Type) string {
					if t.IsLeaf() {
						return " <" + t.String() + ">"
					}
					return ""
				},
			})},
			want: "foo: \n    bar <Number>: 42\n",
		},
		{
			name:  "markdown preset",
			value: "foo:\n  bar: 42",
			desc:  "foo:\n  bar: Description for bar",
			opts:  []DocumentOption{DocumentStyle(MarkdownStyle())},
			want:  "- **foo**:\n    - **bar** *(Number)*: *Description for bar* `42`\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseText(tt.value)
			if err != nil {
				t.Fatalf("parse value: %v", err)
			}
			var desc *yaml.Node
			if tt.desc != "" {
				desc, err = ParseText(tt.desc)
				if err != nil {
					t.Fatalf("parse desc: %v", err)
				}
			}
			got, err := NewDocumenter(tt.opts...).Apply(value, desc)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got != tt.want {
				t.Errorf("got\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestDocumentHookArguments(t *testing.T) {
	value, err := ParseText("foo:\n  bar:\n    - 1")
	if err != nil {
		t.Fatal(err)
	}
	base := DefaultStyle()
	var entryArgs, listArgs []string
	style := Style{
		FormatEntry: func(e Entry) string {
			entryArgs = append(entryArgs, e.Path.String()+" @"+strconv.Itoa(len(e.Indent)))
			return base.FormatEntry(e)
		},
		FormatList: func(b Block) string {
			listArgs = append(listArgs, b.Path.String()+" @"+strconv.Itoa(len(b.Indent)))
			return base.FormatList(b)
		},
	}
	if _, err := NewDocumenter(DocumentStyle(style)).Apply(value, nil); err != nil {
		t.Fatal(err)
	}
	// Values render before their entry line is formatted, so hooks fire
	// bottom-up.
	wantEntries := []string{"foo.bar @4", "foo @0"}
	if diff := cmp.Diff(wantEntries, entryArgs); diff != "" {
		t.Errorf("entry hook arguments (-want +got):\n%s", diff)
	}
	wantLists := []string{"foo.bar @8"}
	if diff := cmp.Diff(wantLists, listArgs); diff != "" {
		t.Errorf("list hook arguments (-want +got):\n%s", diff)
	}
}

func TestDocumentColorStylePlain(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	value, err := ParseText("foo:\n  bar: 42")
	if err != nil {
		t.Fatal(err)
	}
	desc, err := ParseText("foo:\n  bar: Description for bar")
	if err != nil {
		t.Fatal(err)
	}
	plain, err := NewDocumenter().Apply(value, desc)
	if err != nil {
		t.Fatal(err)
	}
	colored, err := NewDocumenter(DocumentStyle(ColorStyle())).Apply(value, desc)
	if err != nil {
		t.Fatal(err)
	}
	if colored != plain {
		t.Errorf("with colors disabled output differs:\n%q\nvs\n%q", colored, plain)
	}
}

func TestDocumenterReuse(t *testing.T) {
	d := NewDocumenter()
	value, err := ParseText("a: 1")
	if err != nil {
		t.Fatal(err)
	}
	first, err := d.Apply(value, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := d.Apply(value, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("repeated Apply diverged: %q vs %q", first, second)
	}
	if !strings.HasSuffix(first, "\n") {
		t.Errorf("rendered text does not end with a newline: %q", first)
	}
}
