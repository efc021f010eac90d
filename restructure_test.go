package yamlx

import (
	"errors"
	"strings"
	"testing"
)

type restructureTest struct {
	Doc          string
	Res          string
	NonRecursive bool
	Ignore       []string
	Error        error
}

func TestRestructure(t *testing.T) {
	tests := []restructureTest{
		{
			Doc: "foo.bar.baz: 42",
			Res: "foo:\n  bar:\n    baz: 42",
		},
		{
			Doc: "foo:\n  bar:\n    baz: 42",
			Res: "foo:\n  bar:\n    baz: 42",
		},
		{
			Doc:          "foo:\n  bar.baz: true",
			Res:          "foo:\n  bar.baz: true",
			NonRecursive: true,
		},
		{
			Doc: "foo:\n  bar.baz: true",
			Res: "foo:\n  bar:\n    baz: true",
		},
		{
			Doc:    "some.key: 42",
			Res:    "some.key: 42",
			Ignore: []string{"some.key"},
		},
		{
			Doc:    "some.key.other: 1",
			Res:    "some.key:\n  other: 1",
			Ignore: []string{"some.key"},
		},
		// The remainder after an ignored prefix splits like any other key.
		{
			Doc:    "some.key.a.b: 1",
			Res:    "some.key:\n  a:\n    b: 1",
			Ignore: []string{"some.key"},
		},
		// Ignore prefixes hold at every recursion depth.
		{
			Doc:    "some.key: 42\nfoo.another.key.bar: true",
			Res:    "some.key: 42\nfoo:\n  another.key:\n    bar: true",
			Ignore: []string{"some.key", "another.key"},
		},
		// A key merely sharing text with an ignore prefix splits normally.
		{
			Doc:    "somekey.x: 1",
			Res:    "somekey:\n  x: 1",
			Ignore: []string{"some"},
		},
		{
			Doc: "a.b: 1\na.c: 2",
			Res: "a:\n  b: 1\n  c: 2",
		},
		{
			Doc: "foo:\n  bar: 1\nfoo.baz: 2",
			Res: "foo:\n  bar: 1\n  baz: 2",
		},
		// Leading or trailing dots disqualify a key from splitting.
		{
			Doc: ".foo: 1\nbar.: 2",
			Res: ".foo: 1\nbar.: 2",
		},
		// 42.5 is a number, not a dotted string key.
		{
			Doc: "42.5: x",
			Res: "42.5: x",
		},
		// Tagged mappings are opaque to the recursive pass.
		{
			Doc: "foo: !custom\n  bar.baz: 1",
			Res: "foo: !custom\n  bar.baz: 1",
		},
		{
			Doc:   "foo:\n  bar: 42\nfoo.bar.baz: true",
			Error: ErrRestructure,
		},
		{
			Doc:   "[1, 2]",
			Error: ErrRestructure,
		},
		{
			Doc:   "42",
			Error: ErrRestructure,
		},
	}

	for i := range tests {
		test := &tests[i]
		doc, err := ParseText(test.Doc)
		if err != nil {
			t.Errorf("error parsing doc in test %d: %v", i, err)
			continue
		}
		opts := []RestructureOption{RestructureRecursive(!test.NonRecursive)}
		if len(test.Ignore) > 0 {
			opts = append(opts, RestructureIgnore(test.Ignore...))
		}
		err = NewRestructurer(opts...).Apply(doc)
		if err != nil {
			if test.Error == nil {
				t.Errorf("test case %d: unexpected error %v", i, err)
			} else if !errors.Is(err, test.Error) {
				t.Errorf("test case %d: error %v does not wrap %v", i, err, test.Error)
			}
			continue
		}
		if test.Error != nil {
			t.Errorf("test case %d: expected error %v", i, test.Error)
			continue
		}
		enc, err := EncodeText(doc)
		if err != nil {
			t.Errorf("error encoding result on test %d: %v", i, err)
			continue
		}
		got := strings.TrimSpace(enc)
		want := strings.TrimSpace(test.Res)
		if got != want {
			t.Logf("got\n`%s`\n", got)
			t.Logf("want\n`%s`\n", want)
			t.Errorf("test case %d: result mismatch", i)
		}
	}
}

func TestRestructureIdempotent(t *testing.T) {
	doc, err := ParseText("a.b: 1\nc:\n  d.e: 2")
	if err != nil {
		t.Fatal(err)
	}
	if err := Restructure(doc); err != nil {
		t.Fatal(err)
	}
	first, err := EncodeText(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := Restructure(doc); err != nil {
		t.Fatal(err)
	}
	second, err := EncodeText(doc)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("second run changed the tree:\nfirst\n%s\nsecond\n%s", first, second)
	}
}

func TestRestructureEquivalence(t *testing.T) {
	restructured, err := NewRestructurer().ApplyText("foo.bar.baz: 42")
	if err != nil {
		t.Fatal(err)
	}
	nested, err := ParseText("foo:\n  bar:\n    baz: 42")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeText(restructured)
	if err != nil {
		t.Fatal(err)
	}
	want, err := EncodeText(nested)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("restructured text differs from nested parse:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestRestructureApplyTextParseError(t *testing.T) {
	_, err := NewRestructurer().ApplyText("a: [")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
}

func TestRestructureConflictMessage(t *testing.T) {
	doc, err := ParseText("foo:\n  bar: 42\nfoo.bar.baz: true")
	if err != nil {
		t.Fatal(err)
	}
	err = Restructure(doc)
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "bar is not a mapping") {
		t.Errorf("error %q does not name the conflicting prefix", err)
	}
}
