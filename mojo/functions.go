package mojo

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomlx/mojowgpu/spec"
)

// Symbol returns the name of the native symbol of a free function (owner == nil) or a method.
func (g *Generator) Symbol(fn *spec.Function, owner *spec.Object) (string, error) {
	if owner == nil {
		return symbolPrefix + TitleCase(fn.Name), nil
	}
	objectName, err := g.mapper.Type(spec.Descriptor{Category: spec.CategoryObject, Name: owner.Name}, spec.NotPointer,
		Context{BareObject: true})
	if err != nil {
		return "", err
	}
	return symbolPrefix + objectName + TitleCase(fn.Name), nil
}

// writeFunction writes the wrapper of a native function: a "fn" with the planned parameters, whose body is a
// single external_call with the arguments in the native order.
//
// Asynchronous functions are preceded by the type of the callback that receives their results.
func (g *Generator) writeFunction(writer io.Writer, fn *spec.Function, owner *spec.Object) error {
	plan, err := g.planner.PlanFunction(fn, owner)
	if err != nil {
		return err
	}
	symbol, err := g.Symbol(fn, owner)
	if err != nil {
		return err
	}
	name := fn.Name
	if owner != nil {
		name = owner.Name + "_" + fn.Name
	}

	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	if plan.CallbackAlias != "" {
		w("\ncomptime %s = %s\n", plan.CallbackAlias, fnType(plan.CallbackTypes, noneType))
	}
	w("\nfn %s(%s) -> %s:\n", name, joinDeclarations(plan.Decl), plan.Return)
	w("%s", docString(fn.Doc, "    "))

	callTypes := make([]string, 0, len(plan.Call)+2)
	callTypes = append(callTypes, fmt.Sprintf("%q", symbol))
	if plan.Return == noneType {
		callTypes = append(callTypes, "NoneType")
		w("    _ = ")
	} else {
		callTypes = append(callTypes, plan.Return)
		w("    return ")
	}
	for _, arg := range plan.Call {
		callTypes = append(callTypes, "type_of("+arg+")")
	}
	w("external_call[%s](%s)\n", strings.Join(callTypes, ", "), strings.Join(plan.Call, ", "))
	return err
}

// writeFunctionType writes a function type as a function pointer alias. The native side passes the user
// data pointer as the last argument.
func (g *Generator) writeFunctionType(writer io.Writer, fn *spec.Function) error {
	types, ret, err := g.planner.PlanFunctionType(fn)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "\n%scomptime %s = %s\n", docComment(fn.Doc), TitleCase(fn.Name), fnType(types, ret))
	return err
}
