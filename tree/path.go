package tree

import (
	"strconv"
	"strings"
)

// Path locates a node in a tree as the sequence of mapping keys and
// list indexes walked from the root. Index segments are stored as
// "[i]" so they read unambiguously next to key segments.
type Path []string

// Child returns a new path extended by one segment. The receiver's
// backing array is never shared, so sibling paths stay independent.
func (p Path) Child(seg string) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

func (p Path) Index(i int) Path {
	return p.Child("[" + strconv.Itoa(i) + "]")
}

func (p Path) IsRoot() bool {
	return len(p) == 0
}

// String joins segments with dots, attaching index segments directly:
// foo.bar[0].baz.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
