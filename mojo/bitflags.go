package mojo

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

// maxBitPosition is the highest bit position that fits the UInt32 value of a bitflag.
const maxBitPosition = 32

// bitflagEntry is a bitflag entry with its resolved value.
type bitflagEntry struct {
	ident, doc string
	value      uint64

	// combination lists the identifiers of the siblings of a composite entry.
	combination []string
}

// BitValue returns the value of the flag at the given bit position: 0 for position 0, 2^(position-1) otherwise.
func BitValue(position uint64) (uint64, error) {
	if position > maxBitPosition {
		return 0, errors.Wrapf(spec.ErrUnsupportedConstruct, "bit position %d doesn't fit in 32 bits", position)
	}
	if position == 0 {
		return 0, nil
	}
	return 1 << (position - 1), nil
}

// bitflagEntries resolves the values of the entries of a bitflag, in declaration order. Reserved entries are
// returned with an empty identifier.
//
// Simple entries are assigned first, so composites can refer to siblings declared after them. Composites
// may combine other composites.
func bitflagEntries(b *spec.Bitflag) ([]bitflagEntry, error) {
	entries := make([]bitflagEntry, len(b.Entries))
	byName := make(map[string]int, len(b.Entries))
	for i, entry := range b.Entries {
		if entry == nil {
			continue
		}
		ident, err := entryIdentifier(b.Name, entry.Name)
		if err != nil {
			return nil, err
		}
		if _, found := byName[entry.Name]; found {
			return nil, errors.Wrapf(spec.ErrUnsupportedConstruct, "entry %q is declared more than once", entry.Name)
		}
		byName[entry.Name] = i
		entries[i] = bitflagEntry{ident: ident, doc: entry.Doc}
		if entry.IsComposite() {
			continue
		}
		position := uint64(i)
		if entry.Value != nil {
			position, err = entry.Value.Uint()
			if err != nil {
				return nil, errors.WithMessagef(err, "entry %q", entry.Name)
			}
		}
		entries[i].value, err = BitValue(position)
		if err != nil {
			return nil, errors.WithMessagef(err, "entry %q", entry.Name)
		}
	}

	const (
		unresolved = iota
		resolving
		resolved
	)
	state := make([]int, len(entries))
	var resolve func(i int) error
	resolve = func(i int) error {
		entry := b.Entries[i]
		if entry == nil || !entry.IsComposite() || state[i] == resolved {
			return nil
		}
		if state[i] == resolving {
			return errors.Wrapf(spec.ErrUnresolvedCompositeFlag, "entry %q is part of a cycle of combinations", entry.Name)
		}
		state[i] = resolving
		for _, sibling := range entry.ValueCombination {
			j, found := byName[sibling]
			if !found {
				return errors.Wrapf(spec.ErrUnresolvedCompositeFlag,
					"entry %q combines %q, which is not an entry of the bitflag", entry.Name, sibling)
			}
			if err := resolve(j); err != nil {
				return err
			}
			entries[i].value |= entries[j].value
			entries[i].combination = append(entries[i].combination, entries[j].ident)
		}
		state[i] = resolved
		return nil
	}
	for i := range b.Entries {
		if err := resolve(i); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// writeBitflag writes a bitflag as a trivial struct with the bitwise operators, and one "comptime" member per
// entry. Composite entries are written with their resolved value, followed by the combination as a comment.
func writeBitflag(writer io.Writer, b *spec.Bitflag) error {
	entries, err := bitflagEntries(b)
	if err != nil {
		return err
	}

	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("\n@fieldwise_init\n@register_passable(\"trivial\")\n")
	w("struct %s(Copyable, EqualityComparable, ImplicitlyCopyable, Movable):\n", TitleCase(b.Name))
	w("%s", docString(b.Doc, "    "))
	w("    var value: UInt32\n")
	w(bitflagOperators)
	w("\n")
	for _, entry := range entries {
		if entry.ident == "" {
			// Reserved.
			continue
		}
		w("    comptime %s = Self(%d)", entry.ident, entry.value)
		if len(entry.combination) > 0 {
			w("  # %s", strings.Join(entry.combination, " | "))
		}
		w("\n%s", docString(entry.doc, "    "))
	}
	return err
}

const bitflagOperators = `
    fn __eq__(self, rhs: Self) -> Bool:
        return self.value == rhs.value

    fn __ne__(self, rhs: Self) -> Bool:
        return self.value != rhs.value

    fn __xor__(self, rhs: Self) -> Self:
        return Self(self.value ^ rhs.value)

    fn __and__(self, rhs: Self) -> Self:
        return Self(self.value & rhs.value)

    fn __or__(self, rhs: Self) -> Self:
        return Self(self.value | rhs.value)

    fn __invert__(self) -> Self:
        return Self(~self.value)
`
