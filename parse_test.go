package yamlx

import (
	"errors"
	"testing"

	"github.com/tony-format/yamlx/tree"
)

func TestParseText(t *testing.T) {
	n, err := ParseText("a: 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := tree.TypeOf(n); got != tree.MappingType {
		t.Errorf("TypeOf = %v, want %v", got, tree.MappingType)
	}

	_, err = ParseText("a: [")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
}

func TestEncodeText(t *testing.T) {
	n, err := ParseText("")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeText(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "null\n" {
		t.Errorf("empty document encodes to %q, want %q", got, "null\n")
	}
}

func TestEncodeTextKeepsComments(t *testing.T) {
	n, err := ParseText("# hi\na: 1")
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncodeText(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != "# hi\na: 1\n" {
		t.Errorf("comment lost: %q", got)
	}
}
