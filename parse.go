package yamlx

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tony-format/yamlx/tree"
)

// ParseText parses one YAML document into a tree. The document wrapper
// node is kept so that anchors and comments survive a later EncodeText;
// operations resolve it transparently.
func ParseText(text string) (*yaml.Node, error) {
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(text), &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &n, nil
}

// EncodeText renders a tree back to YAML text with two-space indent.
func EncodeText(n *yaml.Node) (string, error) {
	r := tree.Resolve(n)
	if r == nil || r.Kind == 0 {
		return "null\n", nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return buf.String(), nil
}
