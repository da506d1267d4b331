package mojo

import (
	"fmt"
	"io"

	"github.com/gomlx/mojowgpu/spec"
)

// writeStruct writes a struct with its fields and a keyword constructor where every field has a default.
// Structs that own heap members also get a function releasing them.
func (g *Generator) writeStruct(writer io.Writer, st *spec.Struct) error {
	fields, err := g.planner.PlanStruct(st)
	if err != nil {
		return err
	}

	name := typePrefix + TitleCase(st.Name)
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("\nstruct %s(Copyable, ImplicitlyCopyable, Movable):\n", name)
	w("%s", docString(st.Doc, "    "))
	for _, field := range fields {
		w("    var %s: %s\n", field.Name, field.Type)
	}

	if len(fields) == 0 {
		w("\n    fn __init__(out self):\n        pass\n")
	} else {
		w("\n    fn __init__(\n        out self,\n")
		for _, field := range fields {
			owned := ""
			if field.Owned {
				owned = "var "
			}
			w("        %s%s,\n", owned, field.Declaration())
		}
		w("    ):\n")
		for _, field := range fields {
			transfer := ""
			if field.Owned {
				transfer = "^"
			}
			w("        self.%s = %s%s\n", field.Name, field.Name, transfer)
		}
	}

	if st.FreeMembers {
		w("\n\nfn %s_free_members(value: %s):\n", st.Name, name)
		w("    _ = external_call[\"%s%sFreeMembers\", NoneType, type_of(value)](value)\n", symbolPrefix, TitleCase(st.Name))
	}
	return err
}
