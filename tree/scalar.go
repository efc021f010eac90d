package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScalarString renders a leaf node as YAML text, trailing newline
// included. Source styling, comments, anchors and any application tag
// are stripped first; the resolved standard tag is pinned before the
// style goes, so a quoted "42" stays a string rather than decaying to
// an int.
func ScalarString(n *yaml.Node) (string, error) {
	r := Resolve(n)
	if r == nil || r.Kind == 0 {
		return "null\n", nil
	}
	if r.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("cannot render %s as a scalar", KindType(r))
	}
	s := *r
	s.Tag = scalarTag(r)
	s.Style = 0
	s.Anchor = ""
	s.HeadComment, s.LineComment, s.FootComment = "", "", ""
	d, err := yaml.Marshal(&s)
	if err != nil {
		return "", err
	}
	return string(d), nil
}
