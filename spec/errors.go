package spec

import "github.com/pkg/errors"

// Error kinds reported by the loader and by the generators.
// They are always returned wrapped with the context of the offending entity, test for them with errors.Is.
var (
	// ErrSpecParse is returned when the document is not well-formed, or an entity misses a required field.
	ErrSpecParse = errors.New("spec parse error")

	// ErrUnknownTypeReference is returned when a type descriptor matches no mapping rule, or references an
	// entity that is not declared.
	ErrUnknownTypeReference = errors.New("unknown type reference")

	// ErrUnresolvedCompositeFlag is returned when a composite bitflag entry references an unknown sibling.
	ErrUnresolvedCompositeFlag = errors.New("unresolved composite flag")

	// ErrUnsupportedConstruct is returned for combinations the generator has no rule for.
	ErrUnsupportedConstruct = errors.New("unsupported construct")
)
