package spec

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Literal is a scalar value of the document kept as written. Both strings and numbers are accepted,
// e.g. `"uint32_max"`, `7` or `"0x00030001"`.
type Literal string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Literal) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Literal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(ErrSpecParse, "value %s is neither a string nor a number", data)
	}
	*l = Literal(n.String())
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrSpecParse, "line %d: expected a scalar value", node.Line)
	}
	*l = Literal(node.Value)
	return nil
}

// Uint parses the literal as an unsigned integer: decimal, or prefixed with 0x, 0o or 0b.
func (l Literal) Uint() (uint64, error) {
	v, err := strconv.ParseUint(string(l), 0, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrSpecParse, "value %q is not an unsigned integer", string(l))
	}
	return v, nil
}
