/*
 *	Copyright 2025 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package spec holds the in-memory model of a WebGPU API description document (webgpu.json or webgpu.yml)
// and the loader that builds it.
//
// The model is built once by Load or Parse and is never mutated afterwards: generators only read it.
// Type references between entities are kept as Descriptor values, resolved by name by the consumers.
package spec

// Spec is the root of a loaded API description.
type Spec struct {
	Copyright  string
	Name       string
	EnumPrefix string

	Constants     []*Constant
	Typedefs      []*Typedef
	Enums         []*Enum
	Bitflags      []*Bitflag
	Structs       []*Struct
	Callbacks     []*Callback
	Functions     []*Function
	Objects       []*Object
	FunctionTypes []*Function
}

// Constant is a named literal, or one of the "maximum value of type" sentinels (e.g. "uint32_max").
type Constant struct {
	Name  string
	Value Literal
	Doc   string
}

// Typedef aliases a type descriptor under a new name.
type Typedef struct {
	Name string
	Doc  string
	Type Descriptor
}

// Enum is an enumeration with ordered entries.
//
// Entries may contain nil values: those are reserved slots, that take an ordinal position but are not emitted.
type Enum struct {
	Name    string
	Doc     string
	Entries []*EnumEntry

	// Extended marks vendor extension enums, as opposed to enums of the core API.
	Extended bool
}

// EnumEntry is one entry of an Enum. Value is nil if the entry takes its ordinal from its position.
type EnumEntry struct {
	Name  string
	Doc   string
	Value *Literal
}

// Bitflag is a set of flags, each one either a bit position or a combination of sibling flags.
type Bitflag struct {
	Name     string
	Doc      string
	Entries  []*BitflagEntry
	Extended bool
}

// BitflagEntry is one entry of a Bitflag.
//
// If ValueCombination is not empty, the entry is a composite: the OR of the named sibling entries.
// Otherwise Value (or the entry position, if Value is nil) is the bit position.
type BitflagEntry struct {
	Name             string
	Doc              string
	Value            *Literal
	ValueCombination []string
}

// IsComposite returns whether the entry is defined as a combination of its siblings.
func (e *BitflagEntry) IsComposite() bool {
	return len(e.ValueCombination) > 0
}

// ParameterType is the universal descriptor used for struct members, function arguments and return values.
type ParameterType struct {
	Name     string
	Doc      string
	Type     Descriptor
	Pointer  PointerKind
	Optional bool
}

// IsArray returns whether the parameter is an `array<T>`, which is expanded to a count and a pointer.
func (p *ParameterType) IsArray() bool {
	return p.Type.Category == CategoryArray
}

// Callback describes a function pointer shape with a calling convention style tag.
type Callback struct {
	Name  string
	Doc   string
	Style string
	Args  []*ParameterType
}

// Function is a free function, an object method or a function type.
type Function struct {
	Name string
	Doc  string

	// Returns is nil for functions that return nothing.
	Returns *ParameterType
	Args    []*ParameterType

	// ReturnsAsync, if not nil, makes the function asynchronous: the values are delivered to a callback.
	ReturnsAsync []*ParameterType
}

// IsAsync returns whether the function delivers its results through a callback.
func (f *Function) IsAsync() bool {
	return f.ReturnsAsync != nil
}

// Struct is a C struct. Kind defines the chaining header it carries.
type Struct struct {
	Name string
	Kind StructKind
	Doc  string

	// FreeMembers is set for structs that own heap members, released by a companion native function.
	FreeMembers bool
	Members     []*ParameterType
}

// Object is an opaque handle type with its methods. Methods implicitly take the handle as first parameter.
type Object struct {
	Name      string
	Doc       string
	Methods   []*Function
	Extended  bool
	Namespace string
}
