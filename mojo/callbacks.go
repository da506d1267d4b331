package mojo

import (
	"fmt"
	"io"

	"github.com/gomlx/mojowgpu/spec"
)

// writeCallback writes a callback as a function pointer alias named "<Name>Callback".
func (g *Generator) writeCallback(writer io.Writer, cb *spec.Callback) error {
	types, err := g.planner.PlanCallback(cb)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "\n%scomptime %s = %s\n", docComment(cb.Doc), callbackTypeName(cb.Name), fnType(types, noneType))
	return err
}

// writeTypedef writes a typedef as an alias of its mapped type.
func (g *Generator) writeTypedef(writer io.Writer, td *spec.Typedef) error {
	t, err := g.mapper.Type(td.Type, spec.NotPointer, declContext)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "\n%scomptime %s%s = %s\n", docComment(td.Doc), typePrefix, TitleCase(td.Name), t)
	return err
}
