package mojo

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

// enumEntry is an enum entry ready to be written.
type enumEntry struct {
	ident, value, doc string
}

// enumEntries assigns the identifiers and values of the entries of an enum.
//
// The value of an entry is its explicit value, or its position in the list. Reserved (nil) entries take a
// position but are not returned. For extended enums a non-zero prefix is placed in the upper 16 bits.
func enumEntries(e *spec.Enum, prefix uint64) ([]enumEntry, error) {
	entries := make([]enumEntry, 0, len(e.Entries))
	seen := make(map[string]bool, len(e.Entries))
	for i, entry := range e.Entries {
		if entry == nil {
			continue
		}
		ident, err := entryIdentifier(e.Name, entry.Name)
		if err != nil {
			return nil, err
		}
		if seen[ident] {
			return nil, errors.Wrapf(spec.ErrUnsupportedConstruct, "entry identifier %q is used more than once", ident)
		}
		seen[ident] = true

		value := strconv.Itoa(i)
		if entry.Value != nil {
			value = string(*entry.Value)
		}
		if e.Extended && prefix != 0 {
			ordinal := uint64(i)
			if entry.Value != nil {
				ordinal, err = entry.Value.Uint()
				if err != nil {
					return nil, errors.WithMessagef(err, "entry %q", entry.Name)
				}
			}
			value = fmt.Sprintf("0x%08X", prefix<<16|ordinal)
		}
		entries = append(entries, enumEntry{ident: ident, value: value, doc: entry.Doc})
	}
	return entries, nil
}

// writeEnum writes an enum as a trivial struct wrapping its UInt32 value, with one "comptime" member per
// entry and a write_to method that prints the entry label.
func writeEnum(writer io.Writer, e *spec.Enum, prefix uint64) error {
	entries, err := enumEntries(e, prefix)
	if err != nil {
		return err
	}

	name := TitleCase(e.Name)
	w := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("\n@fieldwise_init\n@register_passable(\"trivial\")\n")
	w("struct %s(Copyable, EqualityComparable, ImplicitlyCopyable, Movable, Writable):\n", name)
	w("%s", docString(e.Doc, "    "))
	w("    var value: UInt32\n\n")
	w("    fn __eq__(self, rhs: Self) -> Bool:\n        return self.value == rhs.value\n\n")
	for _, entry := range entries {
		w("    comptime %s = Self(%s)\n", entry.ident, entry.value)
		w("%s", docString(entry.doc, "    "))
	}

	w("\n    fn write_to(self, mut w: Some[Writer]):\n")
	if len(entries) == 0 {
		w("        w.write(\"%s(\", self.value, \")\")\n", name)
		return err
	}
	for i, entry := range entries {
		keyword := "if"
		if i > 0 {
			keyword = "elif"
		}
		w("        %s self == Self.%s:\n            w.write(\"%s\")\n", keyword, entry.ident, entry.ident)
	}
	w("        else:\n            w.write(\"%s(\", self.value, \")\")\n", name)
	return err
}
