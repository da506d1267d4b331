package mojo

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/gomlx/mojowgpu/spec"
)

// Param is one entry of a planned parameter list or struct field list.
type Param struct {
	Name string
	Type string

	// Default value expression, empty for required parameters.
	Default string

	// Owned is set for structs held by value: they are declared "var" and moved ("^") on assignment.
	Owned bool
}

// Declaration renders the parameter as "name: Type" or "name: Type = default".
func (p Param) Declaration() string {
	decl := p.Name + ": " + p.Type
	if p.Default != "" {
		decl += " = " + p.Default
	}
	return decl
}

// Plan is the planned signature of a native function.
type Plan struct {
	// Decl lists the parameters in declaration order: required ones first, then the async callback and
	// its user data, then the optional ones.
	Decl []Param

	// Call lists the arguments in the order of the native ABI: the object handle, every argument in document
	// order (arrays expanded into count and pointer), then the async callback and its user data.
	Call []string

	// Return type of the function, noneType if it returns nothing.
	Return string

	// CallbackAlias is set for asynchronous functions: it's the name of the synthesized callback type.
	CallbackAlias string

	// CallbackTypes are the parameter types of the synthesized callback, including the trailing user data.
	CallbackTypes []string
}

// Planner builds the parameter lists of functions, struct fields and function pointer signatures.
type Planner struct {
	mapper *Mapper
}

// NewPlanner returns a Planner that maps types with the given mapper.
func NewPlanner(mapper *Mapper) *Planner {
	return &Planner{mapper: mapper}
}

var declContext = Context{WithOrigin: true}

// expand plans one parameter: arrays become a count followed by a pointer to the first element.
// Optional parameters get a default value.
func (pl *Planner) expand(p *spec.ParameterType, ctx Context) ([]Param, error) {
	t, err := pl.mapper.Param(p, ctx)
	if err != nil {
		return nil, err
	}
	param := Param{Name: identifier(p.Name), Type: t}
	if p.Optional {
		param.Default = defaultValue(p, t)
	}
	if !p.IsArray() {
		return []Param{param}, nil
	}
	count := Param{Name: countName(p.Name), Type: "Int"}
	if p.Optional {
		count.Default = "0"
	}
	return []Param{count, param}, nil
}

// defaultValue returns the default value expression of a parameter whose mapped type is t.
func defaultValue(p *spec.ParameterType, t string) string {
	if p.Pointer != spec.NotPointer {
		return "{}"
	}
	switch p.Type.Category {
	case spec.CategoryEnum, spec.CategoryBitflag:
		return t + "(0)"
	case spec.CategoryStruct:
		return t + "()"
	case spec.CategoryPrimitive:
		switch p.Type.Name {
		case "bool":
			return "False"
		case "string", "c_void":
			return "{}"
		default:
			return "0"
		}
	default:
		return "{}"
	}
}

// signatureTypes returns the parameter types of a function pointer signature, in document order.
// Arrays are expanded into their count and pointer types.
//
// Function pointer signatures have no defaults, so optional parameters are not reordered.
func (pl *Planner) signatureTypes(params []*spec.ParameterType, forbidOptionalArrays bool) ([]string, error) {
	types := make([]string, 0, len(params)+1)
	for _, p := range params {
		if forbidOptionalArrays && p.Optional && p.IsArray() {
			return nil, errors.Wrapf(spec.ErrUnsupportedConstruct,
				"optional array %q can't be delivered to an asynchronous callback", p.Name)
		}
		t, err := pl.mapper.Param(p, declContext)
		if err != nil {
			return nil, err
		}
		if p.IsArray() {
			types = append(types, "Int")
		}
		types = append(types, t)
	}
	return types, nil
}

// PlanFunction plans the signature of a free function (owner == nil) or of a method of owner.
func (pl *Planner) PlanFunction(fn *spec.Function, owner *spec.Object) (*Plan, error) {
	plan := &Plan{Return: noneType}
	if fn.Returns != nil {
		if fn.IsAsync() {
			return nil, errors.Wrap(spec.ErrUnsupportedConstruct, "asynchronous functions can't return a value")
		}
		t, err := pl.mapper.Param(fn.Returns, declContext)
		if err != nil {
			return nil, errors.WithMessage(err, "return value")
		}
		plan.Return = t
	}

	var required, optional []Param
	if owner != nil {
		handle := Param{Name: "handle", Type: handleType(owner.Name)}
		required = append(required, handle)
		plan.Call = append(plan.Call, handle.Name)
	}
	for _, arg := range fn.Args {
		params, err := pl.expand(arg, declContext)
		if err != nil {
			return nil, err
		}
		if arg.Optional {
			optional = append(optional, params...)
		} else {
			required = append(required, params...)
		}
		for _, p := range params {
			plan.Call = append(plan.Call, p.Name)
		}
	}

	plan.Decl = required
	if fn.IsAsync() {
		types, err := pl.signatureTypes(fn.ReturnsAsync, true)
		if err != nil {
			return nil, err
		}
		plan.CallbackTypes = append(types, userDataType)
		plan.CallbackAlias = asyncCallbackName(fn, owner)
		plan.Decl = append(plan.Decl,
			Param{Name: "callback", Type: plan.CallbackAlias},
			Param{Name: "user_data", Type: userDataType})
		plan.Call = append(plan.Call, "callback", "user_data")
	}
	plan.Decl = append(plan.Decl, optional...)

	if err := checkUniqueNames(plan.Decl); err != nil {
		return nil, err
	}
	return plan, nil
}

// asyncCallbackName is the name of the callback type synthesized for an asynchronous function.
func asyncCallbackName(fn *spec.Function, owner *spec.Object) string {
	name := TitleCase(fn.Name) + "Callback"
	if owner != nil {
		name = TitleCase(owner.Name) + name
	}
	return name
}

// PlanStruct plans the fields of a struct: the chaining header selected by its kind, then the members.
// Every field has a default value, so structs can be built with keyword arguments.
func (pl *Planner) PlanStruct(st *spec.Struct) ([]Param, error) {
	var fields []Param
	switch st.Kind {
	case spec.StructKindBaseIn, spec.StructKindBaseInOrOut:
		fields = append(fields, Param{Name: "next_in_chain", Type: "FFIPointer[ChainedStruct, mut=True]", Default: "{}"})
	case spec.StructKindBaseOut:
		fields = append(fields, Param{Name: "next_in_chain", Type: "FFIPointer[ChainedStructOut, mut=True]", Default: "{}"})
	case spec.StructKindExtensionIn, spec.StructKindExtensionInOrOut:
		fields = append(fields, Param{Name: "chain", Type: "ChainedStruct", Default: "{}"})
	case spec.StructKindExtensionOut:
		fields = append(fields, Param{Name: "chain", Type: "ChainedStructOut", Default: "{}"})
	}

	for _, member := range st.Members {
		category := member.Type.Category
		if category == spec.CategoryFunctionType || category == spec.CategoryCallback {
			fields = append(fields, Param{Name: identifier(member.Name), Type: userDataType, Default: "{}"})
			continue
		}
		params, err := pl.expand(member, declContext)
		if err != nil {
			return nil, err
		}
		for i := range params {
			switch {
			case params[i].Default != "":
			case member.IsArray() && i == 0:
				params[i].Default = "0"
			default:
				params[i].Default = defaultValue(member, params[i].Type)
			}
		}
		if category == spec.CategoryStruct && member.Pointer == spec.NotPointer {
			params[0].Owned = true
		}
		fields = append(fields, params...)
	}
	if err := checkUniqueNames(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// PlanCallback returns the signature types of a callback: its arguments in document order.
func (pl *Planner) PlanCallback(cb *spec.Callback) ([]string, error) {
	return pl.signatureTypes(cb.Args, false)
}

// PlanFunctionType returns the signature of a function type: its arguments in document order followed by
// the user data pointer, and its return type.
func (pl *Planner) PlanFunctionType(fn *spec.Function) (types []string, ret string, err error) {
	types, err = pl.signatureTypes(fn.Args, false)
	if err != nil {
		return
	}
	types = append(types, userDataType)
	ret = noneType
	if fn.Returns != nil {
		ret, err = pl.mapper.Param(fn.Returns, declContext)
		if err != nil {
			return nil, "", errors.WithMessage(err, "return value")
		}
	}
	return
}

func checkUniqueNames(params []Param) error {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p.Name] {
			return errors.Wrapf(spec.ErrUnsupportedConstruct, "parameter name %q is used more than once", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// joinDeclarations renders a parameter list on a single line.
func joinDeclarations(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Declaration()
	}
	return strings.Join(parts, ", ")
}

// fnType renders a function pointer type.
func fnType(types []string, ret string) string {
	return fmt.Sprintf("fn(%s) -> %s", strings.Join(types, ", "), ret)
}
