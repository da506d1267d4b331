package mojo

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

// writeObject writes an opaque handle type, its release function and its methods.
func (g *Generator) writeObject(writer io.Writer, obj *spec.Object) error {
	name := TitleCase(obj.Name)
	handle := handleType(obj.Name)
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("\nstruct _%sImpl:\n", name)
	w("%s", docString(obj.Doc, "    "))
	w("    pass\n\n")
	w("comptime %s = FFIPointer[_%sImpl, mut=True]\n\n", handle, name)
	w("\nfn %s_release(handle: %s):\n", obj.Name, handle)
	w("    _ = external_call[\"%s%sRelease\", NoneType, type_of(handle)](handle)\n", symbolPrefix, name)
	if err != nil {
		return err
	}

	for _, method := range obj.Methods {
		if err = g.writeFunction(writer, method, obj); err != nil {
			return errors.WithMessagef(err, "method %q", method.Name)
		}
	}
	return nil
}
