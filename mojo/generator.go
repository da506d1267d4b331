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

// Package mojo generates the Mojo FFI declarations of a WebGPU API described by a spec.Spec.
//
// The Generator produces four artifacts: the enums, the bitflags, the constants and the main declarations
// file (_cffi.mojo) with the handle types, structs and the external_call wrappers of every native function.
//
// Type names follow the conventions of webgpu.h: structs, objects and typedefs are prefixed with "WGPU",
// enums and bitflags are CamelCase, and native symbols are prefixed with "wgpu".
package mojo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/gomlx/mojowgpu/spec"
)

// Names of the generated artifacts, in the order they are generated.
const (
	EnumsFileName        = "enums.mojo"
	BitflagsFileName     = "bitflags.mojo"
	ConstantsFileName    = "constants.mojo"
	DeclarationsFileName = "_cffi.mojo"
)

// Config of the Generator.
type Config struct {
	// ExtensionTypes lists the type tokens, outside the document notation, that are accepted as is.
	// They must be declared by the native supplemental declarations.
	ExtensionTypes []string

	// StrictReferences requires every referenced entity ("struct.foo", "enum.bar", ...) to be declared in the
	// document, or by the wgpu-native declarations unless SkipNative is set.
	StrictReferences bool

	// SkipNative disables the wgpu-native specific declarations.
	SkipNative bool
}

// DefaultConfig returns the configuration used to generate the wgpu-native bindings.
func DefaultConfig() Config {
	return Config{
		ExtensionTypes: []string{"WGPUSubmissionIndex"},
	}
}

// Artifact is one generated file.
type Artifact struct {
	Name     string
	Contents string
}

// Generator of Mojo declarations. It only reads the Spec, so Generate can be called any number of times and
// always returns the same output.
type Generator struct {
	spec       *spec.Spec
	config     Config
	enumPrefix uint64
	mapper     *Mapper
	planner    *Planner
}

// NewGenerator creates a Generator for s.
func NewGenerator(s *spec.Spec, config Config) (*Generator, error) {
	g := &Generator{spec: s, config: config}
	if prefix := strings.TrimSpace(s.EnumPrefix); prefix != "" {
		var err error
		g.enumPrefix, err = strconv.ParseUint(prefix, 0, 16)
		if err != nil {
			return nil, errors.Wrapf(spec.ErrSpecParse, "enum_prefix %q is not a 16 bits unsigned integer", s.EnumPrefix)
		}
	}
	g.mapper = NewMapper(s, config.ExtensionTypes, config.StrictReferences)
	if !config.SkipNative {
		g.mapper.acceptNative(nativeTypeNames())
	}
	g.planner = NewPlanner(g.mapper)
	return g, nil
}

// Generate returns the artifacts: enums, bitflags, constants and declarations, in this order.
// Errors name the kind and name of the entity that caused it.
func (g *Generator) Generate() ([]Artifact, error) {
	steps := []struct {
		name  string
		write func(io.Writer) error
	}{
		{EnumsFileName, g.writeEnums},
		{BitflagsFileName, g.writeBitflags},
		{ConstantsFileName, g.writeConstants},
		{DeclarationsFileName, g.writeDeclarations},
	}
	artifacts := make([]Artifact, 0, len(steps))
	for _, step := range steps {
		var sb strings.Builder
		sb.WriteString(g.banner())
		if err := step.write(&sb); err != nil {
			return nil, errors.WithMessagef(err, "generating %s", step.name)
		}
		klog.V(1).Infof("Generated %s: %d bytes", step.name, sb.Len())
		artifacts = append(artifacts, Artifact{Name: step.name, Contents: sb.String()})
	}
	return artifacts, nil
}

// banner is the header of every artifact: the copyright of the document and the generated code marker.
func (g *Generator) banner() string {
	var sb strings.Builder
	if copyright := strings.TrimSpace(g.spec.Copyright); copyright != "" {
		for _, line := range strings.Split(copyright, "\n") {
			line = strings.TrimRight(line, " \t")
			if line == "" {
				sb.WriteString("#\n")
				continue
			}
			sb.WriteString("# " + line + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("# Code generated by wgpu_codegen. DO NOT EDIT.\n")
	return sb.String()
}

// entityError adds the kind and name of the entity being generated to err.
func entityError(err error, kind, name string) error {
	return errors.WithMessagef(err, "%s %q", kind, name)
}

func (g *Generator) writeEnums(writer io.Writer) error {
	for _, e := range g.spec.Enums {
		if err := writeEnum(writer, e, g.enumPrefix); err != nil {
			return entityError(err, "enum", e.Name)
		}
	}
	if g.config.SkipNative {
		return nil
	}
	_, err := io.WriteString(writer, nativeEnumsHeader+nativeEnums)
	return err
}

func (g *Generator) writeBitflags(writer io.Writer) error {
	for _, b := range g.spec.Bitflags {
		if err := writeBitflag(writer, b); err != nil {
			return entityError(err, "bitflag", b.Name)
		}
	}
	if g.config.SkipNative {
		return nil
	}
	_, err := io.WriteString(writer, nativeBitflagsHeader+nativeBitflags)
	return err
}

func (g *Generator) writeConstants(writer io.Writer) error {
	for _, c := range g.spec.Constants {
		if err := writeConstant(writer, c); err != nil {
			return entityError(err, "constant", c.Name)
		}
	}
	return nil
}

// writeDeclarations writes the main declarations file: the imports and chaining structs, followed by the
// typedefs, objects (with their methods), structs, callbacks, free functions and function types.
func (g *Generator) writeDeclarations(writer io.Writer) error {
	if err := g.checkTopLevelNames(); err != nil {
		return err
	}
	if _, err := io.WriteString(writer, "\n"+nativePrologue); err != nil {
		return err
	}
	for _, td := range g.spec.Typedefs {
		if err := g.writeTypedef(writer, td); err != nil {
			return entityError(err, "typedef", td.Name)
		}
	}
	for _, obj := range g.spec.Objects {
		if err := g.writeObject(writer, obj); err != nil {
			return entityError(err, "object", obj.Name)
		}
	}
	for _, st := range g.spec.Structs {
		if err := g.writeStruct(writer, st); err != nil {
			return entityError(err, "struct", st.Name)
		}
	}
	for _, cb := range g.spec.Callbacks {
		if err := g.writeCallback(writer, cb); err != nil {
			return entityError(err, "callback", cb.Name)
		}
	}
	for _, fn := range g.spec.Functions {
		if err := g.writeFunction(writer, fn, nil); err != nil {
			return entityError(err, "function", fn.Name)
		}
	}
	for _, ft := range g.spec.FunctionTypes {
		if err := g.writeFunctionType(writer, ft); err != nil {
			return entityError(err, "function_type", ft.Name)
		}
	}
	if g.config.SkipNative {
		return nil
	}
	_, err := io.WriteString(writer, nativeDeclarationsHeader+nativeDeclarations)
	return err
}

// checkTopLevelNames fails with spec.ErrUnsupportedConstruct if two entities of the document declare the same
// top-level name in the main declarations file, like a callback "buffer_map_async" and the callback type
// synthesized for the asynchronous method "buffer.map_async".
func (g *Generator) checkTopLevelNames() error {
	type declaration struct{ name, entity string }
	var declarations []declaration
	declare := func(entity string, names ...string) {
		for _, name := range names {
			declarations = append(declarations, declaration{name: name, entity: entity})
		}
	}
	declareFunction := func(entity, name string, fn *spec.Function, owner *spec.Object) {
		declare(entity, name)
		if fn.IsAsync() {
			declare(entity, asyncCallbackName(fn, owner))
		}
	}

	for _, td := range g.spec.Typedefs {
		declare(fmt.Sprintf("typedef %q", td.Name), typePrefix+TitleCase(td.Name))
	}
	for _, obj := range g.spec.Objects {
		declare(fmt.Sprintf("object %q", obj.Name), "_"+TitleCase(obj.Name)+"Impl", handleType(obj.Name), obj.Name+"_release")
		for _, method := range obj.Methods {
			declareFunction(fmt.Sprintf("method \"%s.%s\"", obj.Name, method.Name), obj.Name+"_"+method.Name, method, obj)
		}
	}
	for _, st := range g.spec.Structs {
		entity := fmt.Sprintf("struct %q", st.Name)
		declare(entity, typePrefix+TitleCase(st.Name))
		if st.FreeMembers {
			declare(entity, st.Name+"_free_members")
		}
	}
	for _, cb := range g.spec.Callbacks {
		declare(fmt.Sprintf("callback %q", cb.Name), callbackTypeName(cb.Name))
	}
	for _, fn := range g.spec.Functions {
		declareFunction(fmt.Sprintf("function %q", fn.Name), fn.Name, fn, nil)
	}
	for _, ft := range g.spec.FunctionTypes {
		declare(fmt.Sprintf("function_type %q", ft.Name), TitleCase(ft.Name))
	}

	declaredBy := make(map[string]string, len(declarations))
	for _, d := range declarations {
		if previous, found := declaredBy[d.name]; found {
			return errors.Wrapf(spec.ErrUnsupportedConstruct, "%s and %s both declare %q", previous, d.entity, d.name)
		}
		declaredBy[d.name] = d.entity
	}
	return nil
}
