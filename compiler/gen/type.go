package gen

import (
	"fmt"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/compiler/load"
	"github.com/syssam/typestate/schema/field"
)

type (
	// Type represents one target struct, its fields and its builder
	// configuration. It is the validated, immutable input of the
	// lattice builder and the emission engine.
	Type struct {
		*Config
		schema *load.Schema
		// Name holds the target struct name.
		Name string
		// Fields holds all fields of the type, in declaration order.
		Fields []*Field
		fields map[string]*Field
	}

	// Field holds the information of a type field used by the generator.
	Field struct {
		def *load.Field
		typ *Type
		// Name is the field name as declared in the schema.
		Name string
		// Info holds the storage type information of the field.
		Info *field.TypeInfo
		// Required indicates the field participates in the builder
		// state space.
		Required bool
		// bit is the index among the required fields in declaration
		// order, or -1 for optional fields.
		bit int
	}
)

// NewType creates a new type and its fields from the loaded schema.
// Shape conversion only; call Validate for the semantic rules.
func NewType(c *Config, schema *load.Schema) (*Type, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "nil configuration")
	}
	if schema == nil {
		return nil, fmt.Errorf("gen: nil schema")
	}
	t := &Type{
		Config: c,
		schema: schema,
		Name:   schema.Name,
		fields: make(map[string]*Field, len(schema.Fields)),
	}
	bit := 0
	for _, fd := range schema.Fields {
		f := &Field{
			def:      fd,
			typ:      t,
			Name:     fd.Name,
			Info:     fd.Info,
			Required: fd.Required,
			bit:      -1,
		}
		if f.Required {
			f.bit = bit
			bit++
		}
		t.Fields = append(t.Fields, f)
		// Keep the first occurrence; duplicates are reported by Validate.
		if _, ok := t.fields[f.Name]; !ok {
			t.fields[f.Name] = f
		}
	}
	return t, nil
}

// BuilderConfig returns the struct-level builder configuration.
func (t Type) BuilderConfig() typestate.Config { return t.schema.Config }

// TargetName returns the identifier of the target struct.
func (t Type) TargetName() string { return t.Name }

// BuilderName returns the base name of the generated builder states.
func (t Type) BuilderName() string {
	name := pascal(t.Name) + "Builder"
	if t.schema.Config.Unexported {
		name = lowerFirst(name)
	}
	return name
}

// InitializerName returns the name of the zero-argument initializer.
func (t Type) InitializerName() string {
	name := "New" + pascal(t.Name) + "Builder"
	if t.schema.Config.Unexported {
		name = lowerFirst(name)
	}
	return name
}

// BuildMethod returns the effective name of the completion method.
func (t Type) BuildMethod() string {
	if name := t.schema.Config.BuildMethod; name != "" {
		return name
	}
	if t.schema.Config.Unexported {
		return "build"
	}
	return "Build"
}

// TypeParams returns the generic parameters of the target struct.
func (t Type) TypeParams() []typestate.TypeParam {
	return t.schema.Config.TypeParams
}

// ConstMode reports if the schema requests constant-evaluable generation.
func (t Type) ConstMode() bool { return t.schema.Config.Const }

// RequiredFields returns the required fields, in declaration order.
func (t Type) RequiredFields() []*Field {
	var fields []*Field
	for _, f := range t.Fields {
		if f.Required {
			fields = append(fields, f)
		}
	}
	return fields
}

// OptionalFields returns the optional fields, in declaration order.
func (t Type) OptionalFields() []*Field {
	var fields []*Field
	for _, f := range t.Fields {
		if !f.Required {
			fields = append(fields, f)
		}
	}
	return fields
}

// EntryPoint returns the entry-point field, or nil. With multiple
// entry-point fields (rejected by Validate) the first one is returned.
func (t Type) EntryPoint() *Field {
	for _, f := range t.Fields {
		if f.def.EntryPoint {
			return f
		}
	}
	return nil
}

// Receiver returns the receiver name of the generated builder methods.
func (t Type) Receiver() string {
	r := "b"
	// Avoid capturing an inline converter parameter.
	for _, f := range t.Fields {
		if c := f.def.Converter; c != nil && c.Param == r {
			r = "_" + r
		}
	}
	return r
}

// FileName returns the generated file name for the type.
func (t Type) FileName() string {
	return snake(t.Name) + "_builder.go"
}

// EntryPointBit returns the state bit of the entry-point field,
// or -1 when no entry point exists.
func (t Type) EntryPointBit() int {
	if ep := t.EntryPoint(); ep != nil {
		return ep.bit
	}
	return -1
}

// =============================================================================
// Field methods
// =============================================================================

// StructField returns the struct member of the field in the target type.
func (f Field) StructField() string { return pascal(f.Name) }

// BuilderField returns the storage member of the field in the builder
// states.
func (f Field) BuilderField() string { return builderField(f.Name) }

// Bit returns the index of the field among the required fields in
// declaration order, or -1 for optional fields.
func (f Field) Bit() int { return f.bit }

// EntryPoint reports if this field's setter is the construction entry
// point.
func (f Field) EntryPoint() bool { return f.def.EntryPoint }

// SkipSetter reports if no setter is generated for the field.
func (f Field) SkipSetter() bool { return f.def.SkipSetter }

// HasDefault reports if the field carries an explicit default expression.
func (f Field) HasDefault() bool { return f.def.Default != "" }

// DefaultExpr returns the explicit default expression of the field.
func (f Field) DefaultExpr() string { return f.def.Default }

// Converter returns the custom converter of the field, or nil.
func (f Field) Converter() *field.Converter { return f.def.Converter }

// Comment returns the doc comment of the generated setter.
func (f Field) Comment() string { return f.def.Comment }

// Duplicates returns the attributes applied more than once on the field.
func (f Field) Duplicates() []string { return f.def.Duplicates }

// AutoConvertSet reports if the field carries its own auto-convert
// override.
func (f Field) AutoConvertSet() bool { return f.def.AutoConvert != nil }

// AutoConvert returns the effective auto-convert value: the field
// override if present, else the struct-level default.
func (f Field) AutoConvert() bool {
	if f.def.AutoConvert != nil {
		return *f.def.AutoConvert
	}
	return f.typ.schema.Config.AutoConvert
}

// SetterName returns the effective setter name: the custom name if set,
// else the (field-level, else struct-level) prefix applied to the
// PascalCase field name.
func (f Field) SetterName() string {
	if name := f.def.SetterName; name != "" {
		return name
	}
	name := pascal(f.Name)
	prefix := f.def.SetterPrefix
	if prefix == "" {
		prefix = f.typ.schema.Config.SetterPrefix
	}
	if prefix != "" {
		name = pascal(prefix) + name
	}
	if f.typ.schema.Config.Unexported {
		name = lowerFirst(name)
	}
	return name
}

// StateComponent returns the canonical name component of the field for
// a state where it is set (HasX) or unset (MissingX).
func (f Field) StateComponent(set bool) string {
	if set {
		return "Has" + pascal(f.Name)
	}
	return "Missing" + pascal(f.Name)
}
