package mojo

import (
	_ "embed"
	"regexp"
)

// Declarations specific to wgpu-native, the implementation of webgpu.h the bindings are linked against.
// They are not part of the API description document and are maintained by hand.
var (
	//go:embed native/prologue.mojo
	nativePrologue string

	//go:embed native/enums.mojo
	nativeEnums string

	//go:embed native/bitflags.mojo
	nativeBitflags string

	//go:embed native/cffi.mojo
	nativeDeclarations string
)

const (
	nativeEnumsHeader        = "\n\n# WGPU SPECIFIC ENUMS\n\n\n"
	nativeBitflagsHeader     = "\n\n# WGPU SPECIFIC BITFLAGS\n\n"
	nativeDeclarationsHeader = "\n\n# WGPU SPECIFIC DEFS\n\n"
)

var nativeTypeRegexp = regexp.MustCompile(`(?m)^(?:struct|comptime)\s+(\w+)`)

// nativeTypeNames returns the type names declared by the native enums, bitflags and declarations.
func nativeTypeNames() []string {
	var names []string
	for _, block := range []string{nativeEnums, nativeBitflags, nativeDeclarations} {
		for _, match := range nativeTypeRegexp.FindAllStringSubmatch(block, -1) {
			names = append(names, match[1])
		}
	}
	return names
}
