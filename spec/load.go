package spec

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Format of the API description document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath returns FormatYAML for ".yml" and ".yaml" files, and FormatJSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	}
	return FormatJSON
}

// Load reads and parses the API description document at path. See Parse.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read API description %q", path)
	}
	s, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to load %q", path)
	}
	klog.V(1).Infof("Loaded %q (%s): %d constants, %d typedefs, %d enums, %d bitflags, %d structs, "+
		"%d callbacks, %d functions, %d objects, %d function types",
		path, s.Name, len(s.Constants), len(s.Typedefs), len(s.Enums), len(s.Bitflags), len(s.Structs),
		len(s.Callbacks), len(s.Functions), len(s.Objects), len(s.FunctionTypes))
	return s, nil
}

// Parse builds a Spec from the document contents.
//
// It is all-or-nothing: any malformed value or missing required field fails the whole parse with an
// error wrapping ErrSpecParse, and no Spec is returned.
func Parse(data []byte, format Format) (*Spec, error) {
	var doc document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		if errors.Is(err, ErrSpecParse) {
			return nil, err
		}
		return nil, errors.Wrapf(ErrSpecParse, "malformed %s document: %v", format, err)
	}
	return doc.build()
}

// document and the *Doc types mirror the schema of webgpu.json/webgpu.yml.
type document struct {
	Copyright     string         `json:"copyright" yaml:"copyright"`
	Name          string         `json:"name" yaml:"name"`
	EnumPrefix    Literal        `json:"enum_prefix" yaml:"enum_prefix"`
	Constants     []*constantDoc `json:"constants" yaml:"constants"`
	Typedefs      []*typedefDoc  `json:"typedefs" yaml:"typedefs"`
	Enums         []*enumDoc     `json:"enums" yaml:"enums"`
	Bitflags      []*bitflagDoc  `json:"bitflags" yaml:"bitflags"`
	Structs       []*structDoc   `json:"structs" yaml:"structs"`
	Callbacks     []*callbackDoc `json:"callbacks" yaml:"callbacks"`
	Functions     []*functionDoc `json:"functions" yaml:"functions"`
	Objects       []*objectDoc   `json:"objects" yaml:"objects"`
	FunctionTypes []*functionDoc `json:"function_types" yaml:"function_types"`
}

type constantDoc struct {
	Name  string  `json:"name" yaml:"name"`
	Value Literal `json:"value" yaml:"value"`
	Doc   string  `json:"doc" yaml:"doc"`
}

type typedefDoc struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc" yaml:"doc"`
	Type string `json:"type" yaml:"type"`
}

type enumDoc struct {
	Name     string          `json:"name" yaml:"name"`
	Doc      string          `json:"doc" yaml:"doc"`
	Entries  []*enumEntryDoc `json:"entries" yaml:"entries"`
	Extended bool            `json:"extended" yaml:"extended"`
}

type enumEntryDoc struct {
	Name  string   `json:"name" yaml:"name"`
	Doc   string   `json:"doc" yaml:"doc"`
	Value *Literal `json:"value" yaml:"value"`
}

type bitflagDoc struct {
	Name     string             `json:"name" yaml:"name"`
	Doc      string             `json:"doc" yaml:"doc"`
	Entries  []*bitflagEntryDoc `json:"entries" yaml:"entries"`
	Extended bool               `json:"extended" yaml:"extended"`
}

type bitflagEntryDoc struct {
	Name             string   `json:"name" yaml:"name"`
	Doc              string   `json:"doc" yaml:"doc"`
	Value            *Literal `json:"value" yaml:"value"`
	ValueCombination []string `json:"value_combination" yaml:"value_combination"`
}

type paramDoc struct {
	Name     string `json:"name" yaml:"name"`
	Doc      string `json:"doc" yaml:"doc"`
	Type     string `json:"type" yaml:"type"`
	Pointer  string `json:"pointer" yaml:"pointer"`
	Optional bool   `json:"optional" yaml:"optional"`
}

type callbackDoc struct {
	Name  string      `json:"name" yaml:"name"`
	Doc   string      `json:"doc" yaml:"doc"`
	Style string      `json:"style" yaml:"style"`
	Args  []*paramDoc `json:"args" yaml:"args"`
}

type functionDoc struct {
	Name    string      `json:"name" yaml:"name"`
	Doc     string      `json:"doc" yaml:"doc"`
	Returns *paramDoc   `json:"returns" yaml:"returns"`
	Args    []*paramDoc `json:"args" yaml:"args"`

	// ReturnsAsync is a pointer so that an explicitly empty list still marks the function as asynchronous.
	ReturnsAsync *[]*paramDoc `json:"returns_async" yaml:"returns_async"`
}

type structDoc struct {
	Name        string      `json:"name" yaml:"name"`
	Type        string      `json:"type" yaml:"type"`
	Doc         string      `json:"doc" yaml:"doc"`
	FreeMembers bool        `json:"free_members" yaml:"free_members"`
	Members     []*paramDoc `json:"members" yaml:"members"`
}

type objectDoc struct {
	Name      string         `json:"name" yaml:"name"`
	Doc       string         `json:"doc" yaml:"doc"`
	Methods   []*functionDoc `json:"methods" yaml:"methods"`
	Extended  bool           `json:"extended" yaml:"extended"`
	Namespace string         `json:"namespace" yaml:"namespace"`
}

// build converts the decoded document to the model, validating required fields.
func (doc *document) build() (*Spec, error) {
	if doc.Name == "" {
		return nil, errors.Wrap(ErrSpecParse, "document misses the API \"name\"")
	}
	s := &Spec{
		Copyright:  doc.Copyright,
		Name:       doc.Name,
		EnumPrefix: string(doc.EnumPrefix),
	}
	for i, c := range doc.Constants {
		if c == nil || c.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "constant #%d misses its name", i)
		}
		if c.Value == "" {
			return nil, errors.Wrapf(ErrSpecParse, "constant %q misses its value", c.Name)
		}
		s.Constants = append(s.Constants, &Constant{Name: c.Name, Value: c.Value, Doc: c.Doc})
	}
	for i, t := range doc.Typedefs {
		if t == nil || t.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "typedef #%d misses its name", i)
		}
		desc, err := ParseDescriptor(t.Type)
		if err != nil {
			return nil, errors.WithMessagef(err, "typedef %q", t.Name)
		}
		s.Typedefs = append(s.Typedefs, &Typedef{Name: t.Name, Doc: t.Doc, Type: desc})
	}
	for i, e := range doc.Enums {
		enum, err := buildEnum(i, e)
		if err != nil {
			return nil, err
		}
		s.Enums = append(s.Enums, enum)
	}
	for i, b := range doc.Bitflags {
		bitflag, err := buildBitflag(i, b)
		if err != nil {
			return nil, err
		}
		s.Bitflags = append(s.Bitflags, bitflag)
	}
	for i, st := range doc.Structs {
		structure, err := buildStruct(i, st)
		if err != nil {
			return nil, err
		}
		s.Structs = append(s.Structs, structure)
	}
	for i, cb := range doc.Callbacks {
		if cb == nil || cb.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "callback #%d misses its name", i)
		}
		args, err := buildParams(cb.Args, "callback", cb.Name)
		if err != nil {
			return nil, err
		}
		s.Callbacks = append(s.Callbacks, &Callback{Name: cb.Name, Doc: cb.Doc, Style: cb.Style, Args: args})
	}
	var err error
	if s.Functions, err = buildFunctions(doc.Functions, "function"); err != nil {
		return nil, err
	}
	for i, o := range doc.Objects {
		if o == nil || o.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "object #%d misses its name", i)
		}
		methods, err := buildFunctions(o.Methods, "method of object "+o.Name)
		if err != nil {
			return nil, err
		}
		s.Objects = append(s.Objects, &Object{
			Name:      o.Name,
			Doc:       o.Doc,
			Methods:   methods,
			Extended:  o.Extended,
			Namespace: o.Namespace,
		})
	}
	if s.FunctionTypes, err = buildFunctions(doc.FunctionTypes, "function type"); err != nil {
		return nil, err
	}
	return s, nil
}

func buildEnum(idx int, e *enumDoc) (*Enum, error) {
	if e == nil || e.Name == "" {
		return nil, errors.Wrapf(ErrSpecParse, "enum #%d misses its name", idx)
	}
	enum := &Enum{Name: e.Name, Doc: e.Doc, Extended: e.Extended, Entries: make([]*EnumEntry, len(e.Entries))}
	for i, entry := range e.Entries {
		if entry == nil {
			// Reserved slot.
			continue
		}
		if entry.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "enum %q entry #%d misses its name", e.Name, i)
		}
		if entry.Value != nil {
			if _, err := entry.Value.Uint(); err != nil {
				return nil, errors.WithMessagef(err, "enum %q entry %q", e.Name, entry.Name)
			}
		}
		enum.Entries[i] = &EnumEntry{Name: entry.Name, Doc: entry.Doc, Value: entry.Value}
	}
	return enum, nil
}

func buildBitflag(idx int, b *bitflagDoc) (*Bitflag, error) {
	if b == nil || b.Name == "" {
		return nil, errors.Wrapf(ErrSpecParse, "bitflag #%d misses its name", idx)
	}
	bitflag := &Bitflag{Name: b.Name, Doc: b.Doc, Extended: b.Extended, Entries: make([]*BitflagEntry, len(b.Entries))}
	for i, entry := range b.Entries {
		if entry == nil {
			continue
		}
		if entry.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "bitflag %q entry #%d misses its name", b.Name, i)
		}
		if entry.Value != nil {
			if len(entry.ValueCombination) > 0 {
				return nil, errors.Wrapf(ErrSpecParse, "bitflag %q entry %q has both a value and a value_combination",
					b.Name, entry.Name)
			}
			if _, err := entry.Value.Uint(); err != nil {
				return nil, errors.WithMessagef(err, "bitflag %q entry %q", b.Name, entry.Name)
			}
		}
		bitflag.Entries[i] = &BitflagEntry{
			Name:             entry.Name,
			Doc:              entry.Doc,
			Value:            entry.Value,
			ValueCombination: entry.ValueCombination,
		}
	}
	return bitflag, nil
}

func buildStruct(idx int, st *structDoc) (*Struct, error) {
	if st == nil || st.Name == "" {
		return nil, errors.Wrapf(ErrSpecParse, "struct #%d misses its name", idx)
	}
	if st.Type == "" {
		return nil, errors.Wrapf(ErrSpecParse, "struct %q misses its type", st.Name)
	}
	kind, err := StructKindString(st.Type)
	if err != nil {
		return nil, errors.Wrapf(ErrSpecParse, "struct %q has unknown type %q", st.Name, st.Type)
	}
	members, err := buildParams(st.Members, "struct", st.Name)
	if err != nil {
		return nil, err
	}
	return &Struct{Name: st.Name, Kind: kind, Doc: st.Doc, FreeMembers: st.FreeMembers, Members: members}, nil
}

func buildFunctions(docs []*functionDoc, kind string) ([]*Function, error) {
	var functions []*Function
	for i, f := range docs {
		if f == nil || f.Name == "" {
			return nil, errors.Wrapf(ErrSpecParse, "%s #%d misses its name", kind, i)
		}
		fn := &Function{Name: f.Name, Doc: f.Doc}
		var err error
		if fn.Args, err = buildParams(f.Args, kind, f.Name); err != nil {
			return nil, err
		}
		if f.Returns != nil {
			if fn.Returns, err = buildParam(f.Returns, kind, f.Name, false); err != nil {
				return nil, errors.WithMessage(err, "return value")
			}
		}
		if f.ReturnsAsync != nil {
			if fn.Returns != nil {
				return nil, errors.Wrapf(ErrSpecParse,
					"%s %q declares both \"returns\" and \"returns_async\": asynchronous functions return through the callback",
					kind, f.Name)
			}
			fn.ReturnsAsync = make([]*ParameterType, 0, len(*f.ReturnsAsync))
			for _, p := range *f.ReturnsAsync {
				param, err := buildParam(p, kind, f.Name, true)
				if err != nil {
					return nil, errors.WithMessage(err, "asynchronous return value")
				}
				fn.ReturnsAsync = append(fn.ReturnsAsync, param)
			}
		}
		functions = append(functions, fn)
	}
	return functions, nil
}

func buildParams(docs []*paramDoc, kind, owner string) ([]*ParameterType, error) {
	params := make([]*ParameterType, 0, len(docs))
	for _, p := range docs {
		param, err := buildParam(p, kind, owner, true)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

func buildParam(p *paramDoc, kind, owner string, requireName bool) (*ParameterType, error) {
	if p == nil {
		return nil, errors.Wrapf(ErrSpecParse, "%s %q has a null parameter", kind, owner)
	}
	if requireName && p.Name == "" {
		return nil, errors.Wrapf(ErrSpecParse, "%s %q has a parameter without name", kind, owner)
	}
	desc, err := ParseDescriptor(p.Type)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s %q parameter %q", kind, owner, p.Name)
	}
	pointer, err := parsePointerKind(p.Pointer)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s %q parameter %q", kind, owner, p.Name)
	}
	return &ParameterType{Name: p.Name, Doc: p.Doc, Type: desc, Pointer: pointer, Optional: p.Optional}, nil
}
