package mojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/mojowgpu/spec"
)

func TestTitleCase(t *testing.T) {
	for input, want := range map[string]string{
		"texture_format":     "TextureFormat",
		"buffer":             "Buffer",
		"extent_3d":          "Extent3D",
		"s_type":             "SType",
		"r8_unorm":           "R8Unorm",
		"depth32float":       "Depth32Float",
		"bc1_rgba_unorm":     "Bc1RgbaUnorm",
		"GLSL_descriptor":    "GlslDescriptor",
		"":                   "",
		"request_adapter__x": "RequestAdapterX",
	} {
		assert.Equal(t, want, TitleCase(input), "TitleCase(%q)", input)
	}
}

func TestSwapDigitPrefix(t *testing.T) {
	for input, want := range map[string]string{
		"1d":         "d1",
		"2d":         "d2",
		"2d_array":   "d2_array",
		"3d":         "d3",
		"cube":       "cube",
		"cube_array": "cube_array",
		"undefined":  "undefined",
		"22":         "22",
	} {
		assert.Equal(t, want, SwapDigitPrefix(input), "SwapDigitPrefix(%q)", input)
	}
}

func TestCountName(t *testing.T) {
	for input, want := range map[string]string{
		"entries":            "entry_count",
		"bind_group_layouts": "bind_group_layout_count",
		"features":           "feature_count",
		"commands":           "command_count",
		"address":            "address_count",
		"data":               "data_count",
	} {
		assert.Equal(t, want, countName(input), "countName(%q)", input)
	}
}

func TestEntryIdentifier(t *testing.T) {
	ident, err := entryIdentifier("texture_dimension", "2D")
	require.NoError(t, err)
	assert.Equal(t, "d2", ident)

	ident, err = entryIdentifier("texture_view_dimension", "2D_array")
	require.NoError(t, err)
	assert.Equal(t, "d2_array", ident)

	ident, err = entryIdentifier("map_mode", "Read")
	require.NoError(t, err)
	assert.Equal(t, "read", ident)

	ident, err = entryIdentifier("compare_function", "not")
	require.NoError(t, err)
	assert.Equal(t, "not_", ident)

	_, err = entryIdentifier("vertex_format", "8bits")
	require.ErrorIs(t, err, spec.ErrUnsupportedConstruct)
	assert.Contains(t, err.Error(), "vertex_format")
}

func TestDocString(t *testing.T) {
	assert.Equal(t, "", docString("TODO", "    "))
	assert.Equal(t, "", docString("  \n", "    "))
	assert.Equal(t, "    \"\"\"\n    Hello\n\n    world.\n    \"\"\"\n", docString("Hello\n\nworld.\n", "    "))
	assert.Equal(t, "\"\"\"\n"+`A \"\"\" quote.`+"\n\"\"\"\n", docString(`A """ quote.`, ""))
	assert.Equal(t, "# Line 1\n#\n# Line 2\n", docComment("Line 1\n\nLine 2"))
	assert.Equal(t, "", docComment("TODO"))
}
