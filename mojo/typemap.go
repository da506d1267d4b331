package mojo

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

const (
	// stringType is a C "const char *".
	stringType = "FFIPointer[Int8, mut=False]"

	// userDataType is the opaque "void *" passed back to callbacks.
	userDataType = "FFIPointer[NoneType, mut=True]"

	// noneType is the return type of functions that return nothing.
	noneType = "None"
)

// Context of a type mapping.
type Context struct {
	// BareObject renders object handles as their bare name ("Buffer"), instead of the handle type ("WGPUBuffer").
	BareObject bool

	// WithOrigin spells out the mutability of every pointer wrapper ("FFIPointer[T, mut=True]"),
	// instead of the short form "FFIPointer[T]".
	WithOrigin bool
}

// Mapper maps type descriptors to Mojo type expressions. Once created it is only read: all mapping methods are pure.
type Mapper struct {
	extensions map[string]bool

	// declared is only set when references are checked: it holds the names declared per category.
	declared map[spec.Category]map[string]bool

	// native holds the Mojo type names declared outside the document, also accepted when references are checked.
	native map[string]bool
}

// NewMapper creates a Mapper that accepts the given extension type tokens, passed through unchanged.
//
// If strictReferences is set, references to entities (like "struct.foo") must name an entity declared in s.
func NewMapper(s *spec.Spec, extensionTypes []string, strictReferences bool) *Mapper {
	m := &Mapper{extensions: make(map[string]bool, len(extensionTypes))}
	for _, ext := range extensionTypes {
		m.extensions[ext] = true
	}
	if strictReferences {
		m.declared = declaredNames(s)
	}
	return m
}

// acceptNative accepts references to the given Mojo type names when references are checked, for types declared
// outside the document.
func (m *Mapper) acceptNative(typeNames []string) {
	if m.native == nil {
		m.native = make(map[string]bool, len(typeNames))
	}
	for _, name := range typeNames {
		m.native[name] = true
	}
}

// checkDeclared returns ErrUnknownTypeReference if references are checked and desc refers to an entity neither
// declared in the document nor natively.
func (m *Mapper) checkDeclared(desc spec.Descriptor) error {
	if !desc.Category.IsReference() || m.declared == nil || m.declared[desc.Category][desc.Name] {
		return nil
	}
	if m.native[referenceTypeName(desc)] {
		return nil
	}
	return errors.Wrapf(spec.ErrUnknownTypeReference, "%q is not declared", desc.String())
}

// referenceTypeName is the Mojo type name of a reference to an entity.
func referenceTypeName(desc spec.Descriptor) string {
	switch desc.Category {
	case spec.CategoryEnum, spec.CategoryBitflag, spec.CategoryFunctionType:
		return TitleCase(desc.Name)
	case spec.CategoryCallback:
		return callbackTypeName(desc.Name)
	default:
		return typePrefix + TitleCase(desc.Name)
	}
}

// declaredNames collects the names of the entities of s that can be referenced by a descriptor.
func declaredNames(s *spec.Spec) map[spec.Category]map[string]bool {
	declared := make(map[spec.Category]map[string]bool)
	add := func(category spec.Category, name string) {
		if declared[category] == nil {
			declared[category] = make(map[string]bool)
		}
		declared[category][name] = true
	}
	for _, e := range s.Enums {
		add(spec.CategoryEnum, e.Name)
	}
	for _, b := range s.Bitflags {
		add(spec.CategoryBitflag, b.Name)
	}
	for _, st := range s.Structs {
		add(spec.CategoryStruct, st.Name)
	}
	for _, o := range s.Objects {
		add(spec.CategoryObject, o.Name)
	}
	for _, ft := range s.FunctionTypes {
		add(spec.CategoryFunctionType, ft.Name)
	}
	for _, cb := range s.Callbacks {
		add(spec.CategoryCallback, cb.Name)
	}
	for _, td := range s.Typedefs {
		add(spec.CategoryTypedef, td.Name)
	}
	return declared
}

// Param maps the type of a parameter, taking into account its pointer tag.
func (m *Mapper) Param(p *spec.ParameterType, ctx Context) (string, error) {
	t, err := m.Type(p.Type, p.Pointer, ctx)
	if err != nil {
		return "", errors.WithMessagef(err, "parameter %q", p.Name)
	}
	return t, nil
}

// Type maps a descriptor to a Mojo type expression.
//
// A pointer tag wraps the type in an FFIPointer, except for "string" and "c_void", which are pointers
// already. Arrays require a pointer tag: they are always passed as a pointer to their first element.
func (m *Mapper) Type(desc spec.Descriptor, pointer spec.PointerKind, ctx Context) (string, error) {
	if err := m.checkDeclared(desc); err != nil {
		return "", err
	}

	var base string
	switch desc.Category {
	case spec.CategoryEnum, spec.CategoryBitflag, spec.CategoryFunctionType:
		base = TitleCase(desc.Name)
	case spec.CategoryCallback:
		base = callbackTypeName(desc.Name)
	case spec.CategoryTypedef, spec.CategoryStruct:
		base = typePrefix + TitleCase(desc.Name)
	case spec.CategoryObject:
		if ctx.BareObject {
			return TitleCase(desc.Name), nil
		}
		base = typePrefix + TitleCase(desc.Name)
	case spec.CategoryPrimitive:
		switch desc.Name {
		case "string":
			return stringType, nil
		case "c_void":
			return fmt.Sprintf("FFIPointer[NoneType, mut=%s]", mutFlag(pointer != spec.Immutable)), nil
		}
		var found bool
		base, found = primitiveToMojo(desc.Name)
		if !found {
			return "", errors.Wrapf(spec.ErrUnknownTypeReference, "unknown primitive type %q", desc.Name)
		}
	case spec.CategoryArray:
		if desc.Elem == nil {
			return "", errors.Wrapf(spec.ErrUnknownTypeReference, "array %q without element type", desc.Name)
		}
		if pointer == spec.NotPointer {
			return "", errors.Wrapf(spec.ErrUnsupportedConstruct, "%q must be passed by pointer", desc.String())
		}
		elemCtx := ctx
		elemCtx.BareObject = false
		elem, err := m.Type(*desc.Elem, spec.NotPointer, elemCtx)
		if err != nil {
			return "", errors.WithMessagef(err, "element of %q", desc.String())
		}
		return pointerTo(elem, pointer, ctx), nil
	case spec.CategoryExtension:
		if !m.extensions[desc.Name] {
			return "", errors.Wrapf(spec.ErrUnknownTypeReference,
				"type %q matches no mapping rule and is not a registered extension type", desc.Name)
		}
		base = desc.Name
	default:
		return "", errors.Wrapf(spec.ErrUnknownTypeReference, "invalid type descriptor %q", desc.String())
	}

	if pointer != spec.NotPointer {
		return pointerTo(base, pointer, ctx), nil
	}
	return base, nil
}

// primitiveToMojo maps the fixed-width primitive types. "string" and "c_void" are handled by the caller.
func primitiveToMojo(name string) (string, bool) {
	switch name {
	case "bool":
		return "Bool", true
	case "uint16":
		return "UInt16", true
	case "int16":
		return "Int16", true
	case "uint32":
		return "UInt32", true
	case "int32":
		return "Int32", true
	case "uint64":
		return "UInt64", true
	case "int64":
		return "Int64", true
	case "float32":
		return "Float32", true
	case "float64":
		return "Float64", true
	case "usize":
		return "Int", true
	default:
		return "", false
	}
}

// pointerTo wraps t in an FFIPointer.
func pointerTo(t string, pointer spec.PointerKind, ctx Context) string {
	if !ctx.WithOrigin {
		return fmt.Sprintf("FFIPointer[%s]", t)
	}
	return fmt.Sprintf("FFIPointer[%s, mut=%s]", t, mutFlag(pointer != spec.Immutable))
}

func mutFlag(mutable bool) string {
	if mutable {
		return "True"
	}
	return "False"
}

// callbackTypeName is the name of the alias emitted for a callback.
func callbackTypeName(name string) string {
	return TitleCase(name) + "Callback"
}

// handleType is the opaque handle type of an object.
func handleType(objectName string) string {
	return typePrefix + TitleCase(objectName)
}
