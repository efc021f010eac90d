package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type JSON any
type Node struct{ *yaml.Node }

func (y Node) String() string {
	d, err := yaml.Marshal(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *yaml.Node] %v", y.Node)
	}
	return string(d)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *yaml.Node:
			d, err := yaml.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *yaml.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
