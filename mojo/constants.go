package mojo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

// constantSentinels maps the "maximum value of type" sentinels to their Mojo expression.
var constantSentinels = map[string]string{
	"uint32_max": "UInt32.MAX",
	"uint64_max": "UInt64.MAX",
	"usize_max":  "Int.MAX",
}

// constantValue returns the Mojo expression of a constant value.
func constantValue(c *spec.Constant) (string, error) {
	value := strings.TrimSpace(string(c.Value))
	if sentinel, found := constantSentinels[value]; found {
		return sentinel, nil
	}
	if _, err := c.Value.Uint(); err == nil {
		return value, nil
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return "", errors.Wrapf(spec.ErrUnsupportedConstruct, "value %q is neither a number nor a known sentinel", value)
	}
	return value, nil
}

// writeConstant writes a constant as a "comptime" declaration.
func writeConstant(writer io.Writer, c *spec.Constant) error {
	value, err := constantValue(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "\ncomptime %s = %s\n%s", strings.ToUpper(c.Name), value, docString(c.Doc, ""))
	return err
}
