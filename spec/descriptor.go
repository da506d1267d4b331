package spec

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Category of a type Descriptor.
type Category int

//go:generate go tool enumer -type=Category -trimprefix=Category -transform=snake descriptor.go

const (
	CategoryInvalid Category = iota

	// CategoryPrimitive is one of the fixed primitive names, see Primitives.
	CategoryPrimitive

	CategoryEnum
	CategoryBitflag
	CategoryStruct
	CategoryObject
	CategoryFunctionType
	CategoryCallback
	CategoryTypedef

	// CategoryArray is an `array<T>`, the element type is in Descriptor.Elem.
	CategoryArray

	// CategoryExtension is any other token: vendor specific types bolted on the core API.
	CategoryExtension
)

// IsReference returns whether the category refers to an entity declared in the document by name.
func (c Category) IsReference() bool {
	switch c {
	case CategoryEnum, CategoryBitflag, CategoryStruct, CategoryObject,
		CategoryFunctionType, CategoryCallback, CategoryTypedef:
		return true
	}
	return false
}

// Primitives lists the primitive type names accepted in descriptors.
var Primitives = []string{
	"string", "bool",
	"uint16", "int16", "uint32", "int32", "uint64", "int64",
	"float32", "float64", "usize", "c_void",
}

// Descriptor is the parsed form of a type descriptor string, like "struct.color" or "array<uint32>".
//
// For reference categories Name holds the entity name (without the category prefix), for primitives and
// extensions the token itself.
type Descriptor struct {
	Category Category
	Name     string
	Elem     *Descriptor
}

// String returns the descriptor in the document notation.
func (d Descriptor) String() string {
	switch {
	case d.Category == CategoryArray && d.Elem != nil:
		return fmt.Sprintf("array<%s>", d.Elem)
	case d.Category.IsReference():
		return d.Category.String() + "." + d.Name
	default:
		return d.Name
	}
}

// ParseDescriptor parses a type descriptor string. It fails with ErrSpecParse for empty or malformed
// descriptors. Tokens that are neither references nor primitives are returned as CategoryExtension.
func ParseDescriptor(s string) (Descriptor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Descriptor{}, errors.Wrap(ErrSpecParse, "empty type descriptor")
	}
	if rest, found := strings.CutPrefix(s, "array<"); found {
		inner, found := strings.CutSuffix(rest, ">")
		if !found {
			return Descriptor{}, errors.Wrapf(ErrSpecParse, "type descriptor %q misses the closing \">\"", s)
		}
		elem, err := ParseDescriptor(inner)
		if err != nil {
			return Descriptor{}, errors.WithMessagef(err, "in type descriptor %q", s)
		}
		if elem.Category == CategoryArray {
			return Descriptor{}, errors.Wrapf(ErrSpecParse, "nested arrays are not supported in %q", s)
		}
		return Descriptor{Category: CategoryArray, Name: s, Elem: &elem}, nil
	}
	if prefix, name, found := strings.Cut(s, "."); found {
		if category, err := CategoryString(prefix); err == nil && category.IsReference() {
			if name == "" {
				return Descriptor{}, errors.Wrapf(ErrSpecParse, "type descriptor %q misses the entity name", s)
			}
			return Descriptor{Category: category, Name: name}, nil
		}
	}
	for _, primitive := range Primitives {
		if s == primitive {
			return Descriptor{Category: CategoryPrimitive, Name: s}, nil
		}
	}
	return Descriptor{Category: CategoryExtension, Name: s}, nil
}

// PointerKind tells whether a parameter is passed by pointer, and its mutability.
type PointerKind int

const (
	NotPointer PointerKind = iota
	Mutable
	Immutable
)

// String returns the document notation of the pointer kind.
func (p PointerKind) String() string {
	switch p {
	case NotPointer:
		return ""
	case Mutable:
		return "mutable"
	case Immutable:
		return "immutable"
	default:
		return fmt.Sprintf("PointerKind(%d)", int(p))
	}
}

func parsePointerKind(s string) (PointerKind, error) {
	switch s {
	case "":
		return NotPointer, nil
	case "mutable":
		return Mutable, nil
	case "immutable":
		return Immutable, nil
	}
	return NotPointer, errors.Wrapf(ErrSpecParse, "unknown pointer kind %q", s)
}

// StructKind is the extensibility discriminant of a struct: it defines the chaining field it starts with.
type StructKind int

//go:generate go tool enumer -type=StructKind -trimprefix=StructKind -transform=snake descriptor.go

const (
	StructKindStandalone StructKind = iota
	StructKindBaseIn
	StructKindBaseOut
	StructKindBaseInOrOut
	StructKindExtensionIn
	StructKindExtensionOut
	StructKindExtensionInOrOut
)

// IsBase returns whether the struct starts with a next-in-chain pointer.
func (k StructKind) IsBase() bool {
	return k == StructKindBaseIn || k == StructKindBaseOut || k == StructKindBaseInOrOut
}

// IsExtension returns whether the struct embeds a chain header.
func (k StructKind) IsExtension() bool {
	return k == StructKindExtensionIn || k == StructKindExtensionOut || k == StructKindExtensionInOrOut
}

// IsOutput returns whether the struct is filled by the native library (chained with ChainedStructOut).
func (k StructKind) IsOutput() bool {
	return k == StructKindBaseOut || k == StructKindExtensionOut
}
