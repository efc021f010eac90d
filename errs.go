package yamlx

import "errors"

var (
	// ErrRestructure reports a dotted key whose destination prefix holds
	// a non-mapping value, or a restructure target that is not a mapping.
	ErrRestructure = errors.New("impossible to restructure YAML mapping")

	// ErrMerge reports a merge whose operands are not both mappings.
	ErrMerge = errors.New("impossible to merge YAML values")

	ErrParse     = errors.New("parse error")
	ErrSerialize = errors.New("serialize error")
)
