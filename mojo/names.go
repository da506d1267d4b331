package mojo

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

const (
	// typePrefix is prepended to struct, object and typedef names.
	typePrefix = "WGPU"

	// symbolPrefix is prepended to every native symbol name.
	symbolPrefix = "wgpu"
)

// TitleCase converts a snake_case name to a single CamelCase token: the first letter of every word is
// upper-cased, the other letters lower-cased, and underscores are removed.
// A letter following a digit starts a new word, so "extent_3d" becomes "Extent3D".
func TitleCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	startOfWord := true
	for _, r := range name {
		if r == '_' {
			startOfWord = true
			continue
		}
		if !unicode.IsLetter(r) {
			sb.WriteRune(r)
			startOfWord = true
			continue
		}
		if startOfWord {
			sb.WriteRune(unicode.ToUpper(r))
		} else {
			sb.WriteRune(unicode.ToLower(r))
		}
		startOfWord = false
	}
	return sb.String()
}

// singular strips the plural ending of an array parameter name, used to name its element count.
// Names ending in "ies" get their "y" back ("entries" -> "entry_count"), instead of only losing the last
// character ("entrie_count"). Count names are not part of the native ABI, only their position is.
func singular(name string) string {
	if base, found := strings.CutSuffix(name, "ies"); found && base != "" {
		return base + "y"
	}
	if base, found := strings.CutSuffix(name, "s"); found && base != "" && !strings.HasSuffix(base, "s") {
		return base
	}
	return name
}

// countName is the name of the element count parameter generated for an array parameter.
func countName(arrayName string) string {
	return identifier(singular(arrayName) + "_count")
}

// keywords can't be used as parameter or field names, they get an underscore appended.
var keywords = map[string]bool{
	"alias": true, "and": true, "as": true, "break": true, "comptime": true, "continue": true,
	"def": true, "del": true, "elif": true, "else": true, "except": true, "finally": true, "fn": true,
	"for": true, "from": true, "if": true, "import": true, "in": true, "is": true, "lambda": true,
	"mut": true, "not": true, "or": true, "out": true, "owned": true, "pass": true, "raise": true,
	"raises": true, "ref": true, "return": true, "self": true, "struct": true,
	"trait": true, "try": true, "var": true, "while": true, "with": true, "yield": true,
}

// identifier returns name usable as a parameter or field name.
func identifier(name string) string {
	if keywords[name] {
		return name + "_"
	}
	return name
}

// EntryTransform rewrites the identifier of an enum entry.
type EntryTransform func(identifier string) string

// EnumEntryTransforms lists the enums whose entry identifiers need rewriting, keyed by the enum name.
//
// The texture dimension enums have entries like "2d" or "2d_array", that can't be identifiers:
// the leading digits are moved after the first letter ("d2", "d2_array").
var EnumEntryTransforms = map[string]EntryTransform{
	"texture_view_dimension": SwapDigitPrefix,
	"texture_dimension":      SwapDigitPrefix,
}

// SwapDigitPrefix moves a leading run of digits after the letter that follows it: "2d_array" -> "d2_array".
// Identifiers not starting with a digit are returned unchanged.
func SwapDigitPrefix(ident string) string {
	digits := strings.IndexFunc(ident, func(r rune) bool { return !unicode.IsDigit(r) })
	if digits <= 0 || !unicode.IsLetter(rune(ident[digits])) {
		return ident
	}
	return ident[digits:digits+1] + ident[:digits] + ident[digits+1:]
}

// entryIdentifier returns the identifier of an enum or bitflag entry: its name lower-cased, rewritten by the
// enum's transform, if one is registered.
func entryIdentifier(enumName, entryName string) (string, error) {
	ident := strings.ToLower(entryName)
	if transform, found := EnumEntryTransforms[enumName]; found {
		ident = transform(ident)
	}
	if ident == "" || unicode.IsDigit(rune(ident[0])) {
		return "", errors.Wrapf(spec.ErrUnsupportedConstruct,
			"entry %q of %q yields the identifier %q, which doesn't start with a letter: register a transform in EnumEntryTransforms",
			entryName, enumName, ident)
	}
	return identifier(ident), nil
}

// docString renders a doc as a docstring with the given indentation, or returns "" for empty or "TODO" docs.
func docString(doc, indent string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" || doc == "TODO" {
		return ""
	}
	doc = strings.ReplaceAll(doc, `\`, `\\`)
	doc = strings.ReplaceAll(doc, `"""`, `\"\"\"`)
	var sb strings.Builder
	sb.WriteString(indent + "\"\"\"\n")
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			sb.WriteString(indent + line)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent + "\"\"\"\n")
	return sb.String()
}

// docComment renders a doc as "#" comment lines, used where docstrings are not allowed.
func docComment(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" || doc == "TODO" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			sb.WriteString("#\n")
			continue
		}
		sb.WriteString("# " + line + "\n")
	}
	return sb.String()
}
