package spec

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	for _, tc := range []struct {
		input    string
		category Category
		name     string
	}{
		{"enum.texture_format", CategoryEnum, "texture_format"},
		{"bitflag.buffer_usage", CategoryBitflag, "buffer_usage"},
		{"struct.extent_3d", CategoryStruct, "extent_3d"},
		{"object.buffer", CategoryObject, "buffer"},
		{"function_type.proc", CategoryFunctionType, "proc"},
		{"callback.buffer_map", CategoryCallback, "buffer_map"},
		{"typedef.flags", CategoryTypedef, "flags"},
		{"uint32", CategoryPrimitive, "uint32"},
		{"c_void", CategoryPrimitive, "c_void"},
		{"string", CategoryPrimitive, "string"},
		{"WGPUSubmissionIndex", CategoryExtension, "WGPUSubmissionIndex"},
		{"vendor.thing", CategoryExtension, "vendor.thing"},
	} {
		desc, err := ParseDescriptor(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.category, desc.Category, "input %q", tc.input)
		assert.Equal(t, tc.name, desc.Name, "input %q", tc.input)
		assert.Equal(t, tc.input, desc.String())
	}
}

func TestParseDescriptor_Array(t *testing.T) {
	desc, err := ParseDescriptor("array<struct.bind_group_entry>")
	require.NoError(t, err)
	assert.Equal(t, CategoryArray, desc.Category)
	require.NotNil(t, desc.Elem)
	assert.Equal(t, CategoryStruct, desc.Elem.Category)
	assert.Equal(t, "bind_group_entry", desc.Elem.Name)
	assert.Equal(t, "array<struct.bind_group_entry>", desc.String())

	desc, err = ParseDescriptor("array<uint32>")
	require.NoError(t, err)
	assert.Equal(t, CategoryPrimitive, desc.Elem.Category)
}

func TestParseDescriptor_Errors(t *testing.T) {
	for _, input := range []string{"", "   ", "array<uint32", "array<>", "array<array<uint32>>", "struct."} {
		_, err := ParseDescriptor(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, ErrSpecParse), "input %q: %v", input, err)
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "function_type", CategoryFunctionType.String())
	c, err := CategoryString("bitflag")
	require.NoError(t, err)
	assert.Equal(t, CategoryBitflag, c)
	assert.True(t, CategoryObject.IsReference())
	assert.False(t, CategoryPrimitive.IsReference())
	assert.False(t, CategoryArray.IsReference())
}

func TestStructKind(t *testing.T) {
	kind, err := StructKindString("extension_out")
	require.NoError(t, err)
	assert.Equal(t, StructKindExtensionOut, kind)
	assert.True(t, kind.IsExtension())
	assert.True(t, kind.IsOutput())
	assert.False(t, kind.IsBase())

	assert.True(t, StructKindBaseInOrOut.IsBase())
	assert.False(t, StructKindBaseInOrOut.IsOutput())
	assert.False(t, StructKindStandalone.IsBase())
	assert.False(t, StructKindStandalone.IsExtension())

	_, err = StructKindString("chained")
	require.Error(t, err)
}

func TestPointerKind(t *testing.T) {
	for _, kind := range []PointerKind{NotPointer, Mutable, Immutable} {
		parsed, err := parsePointerKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := parsePointerKind("const")
	require.ErrorIs(t, err, ErrSpecParse)
}
