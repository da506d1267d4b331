package mojo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/mojowgpu/spec"
)

// parseSpec parses a YAML API description.
func parseSpec(t *testing.T, doc string) *spec.Spec {
	s, err := spec.Parse([]byte(doc), spec.FormatYAML)
	require.NoError(t, err)
	return s
}

func newTestPlanner(s *spec.Spec) *Planner {
	return NewPlanner(NewMapper(s, DefaultConfig().ExtensionTypes, false))
}

func paramNames(params []Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

const mapAsyncSpec = `
name: webgpu
objects:
  - name: buffer
    methods:
      - name: map_async
        returns_async:
          - name: status
            type: enum.map_async_status
        args:
          - name: offset
            type: usize
          - name: size
            type: usize
            optional: true
`

func TestPlanFunction_MapAsync(t *testing.T) {
	s := parseSpec(t, mapAsyncSpec)
	buffer := s.Objects[0]
	plan, err := newTestPlanner(s).PlanFunction(buffer.Methods[0], buffer)
	require.NoError(t, err)

	assert.Equal(t, []string{"handle", "offset", "callback", "user_data", "size"}, paramNames(plan.Decl))
	assert.Equal(t, "handle: WGPUBuffer, offset: Int, callback: BufferMapAsyncCallback, "+
		"user_data: FFIPointer[NoneType, mut=True], size: Int = 0", joinDeclarations(plan.Decl))
	assert.Equal(t, []string{"handle", "offset", "size", "callback", "user_data"}, plan.Call)
	assert.Equal(t, "None", plan.Return)
	assert.Equal(t, "BufferMapAsyncCallback", plan.CallbackAlias)
	assert.Equal(t, []string{"MapAsyncStatus", "FFIPointer[NoneType, mut=True]"}, plan.CallbackTypes)
}

func TestPlanFunction_RequiredBeforeOptional(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
functions:
  - name: f
    returns:
      type: bool
    args:
      - name: a
        type: uint32
        optional: true
      - name: b
        type: enum.texture_format
      - name: c
        type: bitflag.buffer_usage
        optional: true
      - name: layouts
        type: array<object.bind_group_layout>
        pointer: immutable
      - name: label
        type: string
        optional: true
      - name: descriptor
        type: struct.buffer_descriptor
        pointer: immutable
        optional: true
      - name: d
        type: bool
        optional: true
`)
	plan, err := newTestPlanner(s).PlanFunction(s.Functions[0], nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "layout_count", "layouts", "a", "c", "label", "descriptor", "d"}, paramNames(plan.Decl))
	assert.Equal(t, []string{"a", "b", "c", "layout_count", "layouts", "label", "descriptor", "d"}, plan.Call)
	assert.Equal(t, "Bool", plan.Return)
	assert.Empty(t, plan.CallbackAlias)

	// Once a parameter with a default appears, all the following have one.
	seenDefault := false
	for _, p := range plan.Decl {
		if p.Default != "" {
			seenDefault = true
		} else {
			assert.False(t, seenDefault, "required parameter %q after an optional one", p.Name)
		}
	}

	byName := make(map[string]Param)
	for _, p := range plan.Decl {
		byName[p.Name] = p
	}
	assert.Equal(t, "Int", byName["layout_count"].Type)
	assert.Equal(t, "FFIPointer[WGPUBindGroupLayout, mut=False]", byName["layouts"].Type)
	assert.Equal(t, "0", byName["a"].Default)
	assert.Equal(t, "BufferUsage(0)", byName["c"].Default)
	assert.Equal(t, "{}", byName["label"].Default)
	assert.Equal(t, "{}", byName["descriptor"].Default)
	assert.Equal(t, "FFIPointer[WGPUBufferDescriptor, mut=False]", byName["descriptor"].Type)
	assert.Equal(t, "False", byName["d"].Default)
}

func TestPlanFunction_OptionalArray(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
functions:
  - name: f
    args:
      - name: entries
        type: array<uint32>
        pointer: immutable
        optional: true
`)
	plan, err := newTestPlanner(s).PlanFunction(s.Functions[0], nil)
	require.NoError(t, err)
	assert.Equal(t, "entry_count: Int = 0, entries: FFIPointer[UInt32, mut=False] = {}", joinDeclarations(plan.Decl))
}

func TestPlanFunction_AsyncArray(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
objects:
  - name: instance
    methods:
      - name: enumerate_adapters
        returns_async:
          - name: status
            type: enum.enumerate_status
          - name: adapters
            type: array<object.adapter>
            pointer: immutable
`)
	instance := s.Objects[0]
	plan, err := newTestPlanner(s).PlanFunction(instance.Methods[0], instance)
	require.NoError(t, err)
	assert.Equal(t, "InstanceEnumerateAdaptersCallback", plan.CallbackAlias)
	assert.Equal(t, []string{"EnumerateStatus", "Int", "FFIPointer[WGPUAdapter, mut=False]",
		"FFIPointer[NoneType, mut=True]"}, plan.CallbackTypes)
	assert.Equal(t, []string{"handle", "callback", "user_data"}, paramNames(plan.Decl))
}

func TestPlanFunction_Errors(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
functions:
  - name: optional_async_array
    returns_async:
      - name: adapters
        type: array<object.adapter>
        pointer: immutable
        optional: true
  - name: duplicated
    args:
      - name: user_data
        type: c_void
    returns_async: []
  - name: by_value_array
    args:
      - name: values
        type: array<uint32>
`)
	planner := newTestPlanner(s)
	for _, fn := range s.Functions {
		_, err := planner.PlanFunction(fn, nil)
		require.ErrorIs(t, err, spec.ErrUnsupportedConstruct, "function %q", fn.Name)
	}
}

func TestPlanStruct(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
structs:
  - name: render_pass_descriptor
    type: base_in
    members:
      - name: label
        type: string
        optional: true
      - name: color_attachments
        type: array<struct.render_pass_color_attachment>
        pointer: immutable
      - name: timestamp_writes
        type: struct.render_pass_timestamp_writes
        pointer: immutable
        optional: true
      - name: origin
        type: struct.origin_3d
      - name: on_done
        type: callback.done
      - name: proc
        type: function_type.proc
  - name: surface_source_xlib_window
    type: extension_in
    members:
      - name: window
        type: uint64
  - name: adapter_info_extras
    type: extension_out
  - name: empty
    type: standalone
`)
	planner := newTestPlanner(s)

	fields, err := planner.PlanStruct(s.Structs[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"next_in_chain", "label", "color_attachment_count", "color_attachments",
		"timestamp_writes", "origin", "on_done", "proc"}, paramNames(fields))
	assert.Equal(t, Param{Name: "next_in_chain", Type: "FFIPointer[ChainedStruct, mut=True]", Default: "{}"}, fields[0])
	assert.Equal(t, Param{Name: "color_attachment_count", Type: "Int", Default: "0"}, fields[2])
	assert.Equal(t, Param{Name: "color_attachments", Type: "FFIPointer[WGPURenderPassColorAttachment, mut=False]",
		Default: "{}"}, fields[3])
	assert.Equal(t, Param{Name: "origin", Type: "WGPUOrigin3D", Default: "WGPUOrigin3D()", Owned: true}, fields[5])
	assert.Equal(t, "FFIPointer[NoneType, mut=True]", fields[6].Type)
	assert.Equal(t, "FFIPointer[NoneType, mut=True]", fields[7].Type)
	for _, field := range fields {
		assert.NotEmpty(t, field.Default, "field %q", field.Name)
	}

	fields, err = planner.PlanStruct(s.Structs[1])
	require.NoError(t, err)
	assert.Equal(t, Param{Name: "chain", Type: "ChainedStruct", Default: "{}"}, fields[0])
	assert.Equal(t, Param{Name: "window", Type: "UInt64", Default: "0"}, fields[1])

	fields, err = planner.PlanStruct(s.Structs[2])
	require.NoError(t, err)
	assert.Equal(t, []Param{{Name: "chain", Type: "ChainedStructOut", Default: "{}"}}, fields)

	fields, err = planner.PlanStruct(s.Structs[3])
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestPlanSignatures(t *testing.T) {
	s := parseSpec(t, `
name: webgpu
callbacks:
  - name: request_adapter
    args:
      - name: status
        type: enum.request_adapter_status
      - name: adapter
        type: object.adapter
        optional: true
      - name: message
        type: string
      - name: features
        type: array<enum.feature_name>
        pointer: immutable
function_types:
  - name: enumerate
    args:
      - name: features
        type: array<enum.feature_name>
        pointer: immutable
      - name: flag
        type: bool
        optional: true
    returns:
      type: uint32
`)
	planner := newTestPlanner(s)

	types, err := planner.PlanCallback(s.Callbacks[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"RequestAdapterStatus", "WGPUAdapter", "FFIPointer[Int8, mut=False]",
		"Int", "FFIPointer[FeatureName, mut=False]"}, types)

	types, ret, err := planner.PlanFunctionType(s.FunctionTypes[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"Int", "FFIPointer[FeatureName, mut=False]", "Bool", "FFIPointer[NoneType, mut=True]"}, types)
	assert.Equal(t, "UInt32", ret)
	assert.Equal(t, "fn(Int, FFIPointer[FeatureName, mut=False], Bool, FFIPointer[NoneType, mut=True]) -> UInt32",
		fnType(types, ret))
}
