package field

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Field is the interface implemented by all field builders. It is
// implemented internally and returned by the package constructors
// (String, Int, Time, ...).
type Field interface {
	Descriptor() *Descriptor
}

// Converter describes a single-parameter transformation from the setter
// argument type to the field's storage type. Exactly one of the two forms
// is used:
//
//   - a reference form, naming an existing function (Func),
//   - an inline form, carrying a parameter name and a body expression
//     over it (Param, Expr).
//
// In const mode, inline converters are synthesized into standalone
// top-level functions so the host toolchain can check their
// constant-evaluability.
type Converter struct {
	// Input is the parameter type the setter accepts.
	Input *TypeInfo `json:"input,omitempty" yaml:"input,omitempty"`
	// Func names an existing single-parameter function.
	Func string `json:"func,omitempty" yaml:"func,omitempty"`
	// Param is the parameter name of the inline form.
	Param string `json:"param,omitempty" yaml:"param,omitempty"`
	// Expr is the body expression of the inline form.
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`
}

// Inline reports whether the converter is an inline transformation
// rather than a reference to an existing function.
func (c *Converter) Inline() bool { return c.Func == "" }

// Descriptor holds the parsed configuration of one field. It is the
// passive data handed to compiler/load; all semantic validation happens
// later in compiler/gen.
type Descriptor struct {
	// Name is the field name.
	Name string
	// Info holds the storage type information.
	Info *TypeInfo
	// Required indicates the field must be set before the completion
	// method becomes available. Required fields participate in the
	// builder state space; optional fields never do.
	Required bool
	// Default is the default expression of optional fields.
	// Empty means no explicit default.
	Default string
	// Converter is the custom value transformation, if any.
	Converter *Converter
	// AutoConvert overrides the struct-level auto-convert default.
	// Nil means inherit.
	AutoConvert *bool
	// SetterName overrides the setter method name.
	SetterName string
	// SetterPrefix overrides the struct-level setter prefix.
	SetterPrefix string
	// SkipSetter suppresses setter generation; the field is populated
	// only by its default or converter.
	SkipSetter bool
	// EntryPoint marks the field whose setter replaces the zero-argument
	// initializer as the construction entry point.
	EntryPoint bool
	// Comment is attached as a doc comment to the generated setter.
	Comment string
	// Err holds a builder-time error, reported when the descriptor is
	// loaded.
	Err error

	applied map[string]int
}

func newDescriptor(name string, info *TypeInfo) *Descriptor {
	d := &Descriptor{Name: name, Info: info, applied: make(map[string]int)}
	if name == "" {
		d.Err = fmt.Errorf("field: empty name")
	}
	return d
}

// apply records one application of an attribute. Each attribute is
// recognized at most once per field; a second application surfaces as a
// duplicate-attribute conflict during validation.
func (d *Descriptor) apply(attr string) {
	if d.applied == nil {
		d.applied = make(map[string]int)
	}
	d.applied[attr]++
}

// Duplicates returns the attributes applied more than once, sorted.
func (d *Descriptor) Duplicates() []string {
	var dup []string
	for attr, n := range d.applied {
		if n > 1 {
			dup = append(dup, attr)
		}
	}
	sort.Strings(dup)
	return dup
}

func (d *Descriptor) setRequired() {
	d.apply("required")
	d.Required = true
}

func (d *Descriptor) setDefault(expr string) {
	d.apply("default")
	d.Default = expr
}

func (d *Descriptor) setConverter(c *Converter) {
	d.apply("converter")
	if c.Input == nil || !c.Input.Valid() {
		d.Err = fmt.Errorf("field %s: converter input type is missing or invalid", d.Name)
		return
	}
	d.Converter = c
}

func (d *Descriptor) setAutoConvert(v bool) {
	d.apply("auto_convert")
	d.AutoConvert = &v
}

func (d *Descriptor) setSetterName(name string) {
	d.apply("setter_name")
	d.SetterName = name
}

func (d *Descriptor) setSetterPrefix(prefix string) {
	d.apply("setter_prefix")
	d.SetterPrefix = prefix
}

func (d *Descriptor) setSkipSetter() {
	d.apply("skip_setter")
	d.SkipSetter = true
}

func (d *Descriptor) setEntryPoint() {
	d.apply("entry_point")
	d.EntryPoint = true
}

// String returns a new Field with type string.
func String(name string) *stringBuilder {
	return &stringBuilder{newDescriptor(name, &TypeInfo{Type: TypeString})}
}

// Bool returns a new Field with type bool.
func Bool(name string) *boolBuilder {
	return &boolBuilder{newDescriptor(name, &TypeInfo{Type: TypeBool})}
}

// Bytes returns a new Field with type []byte.
func Bytes(name string) *bytesBuilder {
	return &bytesBuilder{newDescriptor(name, &TypeInfo{Type: TypeBytes})}
}

// Time returns a new Field with type time.Time.
func Time(name string) *timeBuilder {
	return &timeBuilder{newDescriptor(name, &TypeInfo{
		Type:    TypeTime,
		Ident:   "time.Time",
		PkgPath: "time",
	})}
}

// UUID returns a new Field with the given UUID type. The concrete type is
// captured through its reflect information, e.g.:
//
//	field.UUID("id", uuid.UUID{})
func UUID(name string, typ any) *uuidBuilder {
	t := reflect.TypeOf(typ)
	d := newDescriptor(name, &TypeInfo{Type: TypeUUID})
	if t == nil {
		d.Err = fmt.Errorf("field %s: invalid uuid type <nil>", name)
		return &uuidBuilder{d}
	}
	d.Info.Ident = t.String()
	d.Info.PkgPath = t.PkgPath()
	return &uuidBuilder{d}
}

// Other returns a new Field with an arbitrary named Go type:
//
//	field.Other("amount", "decimal.Decimal", "github.com/shopspring/decimal")
func Other(name, ident, pkgPath string) *otherBuilder {
	d := newDescriptor(name, &TypeInfo{Type: TypeOther, Ident: ident, PkgPath: pkgPath})
	if ident == "" {
		d.Err = fmt.Errorf("field %s: missing type literal", name)
	}
	return &otherBuilder{d}
}

// stringBuilder is the builder for string fields.
type stringBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *stringBuilder) Required() *stringBuilder {
	b.desc.setRequired()
	return b
}

// Default sets the default value of the field.
func (b *stringBuilder) Default(v string) *stringBuilder {
	b.desc.setDefault(strconv.Quote(v))
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *stringBuilder) DefaultExpr(expr string) *stringBuilder {
	b.desc.setDefault(expr)
	return b
}

// Convert sets a named converter function for the field.
func (b *stringBuilder) Convert(fn string, input *TypeInfo) *stringBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *stringBuilder) ConvertExpr(param, expr string, input *TypeInfo) *stringBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// AutoConvert enables the widening-conversion setter for the field,
// overriding the struct-level default.
func (b *stringBuilder) AutoConvert() *stringBuilder {
	b.desc.setAutoConvert(true)
	return b
}

// NoAutoConvert disables the widening-conversion setter for the field,
// overriding the struct-level default.
func (b *stringBuilder) NoAutoConvert() *stringBuilder {
	b.desc.setAutoConvert(false)
	return b
}

// SetterName overrides the setter method name.
func (b *stringBuilder) SetterName(name string) *stringBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *stringBuilder) SetterPrefix(prefix string) *stringBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *stringBuilder) SkipSetter() *stringBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point,
// replacing the zero-argument initializer.
func (b *stringBuilder) EntryPoint() *stringBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *stringBuilder) Comment(c string) *stringBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *stringBuilder) Descriptor() *Descriptor {
	return b.desc
}

// boolBuilder is the builder for bool fields.
type boolBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *boolBuilder) Required() *boolBuilder {
	b.desc.setRequired()
	return b
}

// Default sets the default value of the field.
func (b *boolBuilder) Default(v bool) *boolBuilder {
	b.desc.setDefault(strconv.FormatBool(v))
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *boolBuilder) DefaultExpr(expr string) *boolBuilder {
	b.desc.setDefault(expr)
	return b
}

// Convert sets a named converter function for the field.
func (b *boolBuilder) Convert(fn string, input *TypeInfo) *boolBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *boolBuilder) ConvertExpr(param, expr string, input *TypeInfo) *boolBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// AutoConvert enables the widening-conversion setter for the field.
func (b *boolBuilder) AutoConvert() *boolBuilder {
	b.desc.setAutoConvert(true)
	return b
}

// NoAutoConvert disables the widening-conversion setter for the field.
func (b *boolBuilder) NoAutoConvert() *boolBuilder {
	b.desc.setAutoConvert(false)
	return b
}

// SetterName overrides the setter method name.
func (b *boolBuilder) SetterName(name string) *boolBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *boolBuilder) SetterPrefix(prefix string) *boolBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *boolBuilder) SkipSetter() *boolBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point.
func (b *boolBuilder) EntryPoint() *boolBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *boolBuilder) Comment(c string) *boolBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *boolBuilder) Descriptor() *Descriptor {
	return b.desc
}

// bytesBuilder is the builder for []byte fields.
type bytesBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *bytesBuilder) Required() *bytesBuilder {
	b.desc.setRequired()
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *bytesBuilder) DefaultExpr(expr string) *bytesBuilder {
	b.desc.setDefault(expr)
	return b
}

// Convert sets a named converter function for the field.
func (b *bytesBuilder) Convert(fn string, input *TypeInfo) *bytesBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *bytesBuilder) ConvertExpr(param, expr string, input *TypeInfo) *bytesBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// AutoConvert enables the widening-conversion setter for the field.
func (b *bytesBuilder) AutoConvert() *bytesBuilder {
	b.desc.setAutoConvert(true)
	return b
}

// NoAutoConvert disables the widening-conversion setter for the field.
func (b *bytesBuilder) NoAutoConvert() *bytesBuilder {
	b.desc.setAutoConvert(false)
	return b
}

// SetterName overrides the setter method name.
func (b *bytesBuilder) SetterName(name string) *bytesBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *bytesBuilder) SetterPrefix(prefix string) *bytesBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *bytesBuilder) SkipSetter() *bytesBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point.
func (b *bytesBuilder) EntryPoint() *bytesBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *bytesBuilder) Comment(c string) *bytesBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *bytesBuilder) Descriptor() *Descriptor {
	return b.desc
}

// timeBuilder is the builder for time.Time fields.
type timeBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *timeBuilder) Required() *timeBuilder {
	b.desc.setRequired()
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *timeBuilder) DefaultExpr(expr string) *timeBuilder {
	b.desc.setDefault(expr)
	return b
}

// DefaultNow sets the field default to time.Now(), evaluated when Build
// runs.
func (b *timeBuilder) DefaultNow() *timeBuilder {
	b.desc.setDefault("time.Now()")
	return b
}

// Convert sets a named converter function for the field.
func (b *timeBuilder) Convert(fn string, input *TypeInfo) *timeBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *timeBuilder) ConvertExpr(param, expr string, input *TypeInfo) *timeBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// SetterName overrides the setter method name.
func (b *timeBuilder) SetterName(name string) *timeBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *timeBuilder) SetterPrefix(prefix string) *timeBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *timeBuilder) SkipSetter() *timeBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point.
func (b *timeBuilder) EntryPoint() *timeBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *timeBuilder) Comment(c string) *timeBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *timeBuilder) Descriptor() *Descriptor {
	return b.desc
}

// uuidBuilder is the builder for UUID fields.
type uuidBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *uuidBuilder) Required() *uuidBuilder {
	b.desc.setRequired()
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *uuidBuilder) DefaultExpr(expr string) *uuidBuilder {
	b.desc.setDefault(expr)
	return b
}

// DefaultNew sets the field default to a freshly generated UUID,
// evaluated when Build runs.
func (b *uuidBuilder) DefaultNew() *uuidBuilder {
	b.desc.setDefault("uuid.New()")
	return b
}

// Convert sets a named converter function for the field.
func (b *uuidBuilder) Convert(fn string, input *TypeInfo) *uuidBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *uuidBuilder) ConvertExpr(param, expr string, input *TypeInfo) *uuidBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// SetterName overrides the setter method name.
func (b *uuidBuilder) SetterName(name string) *uuidBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *uuidBuilder) SetterPrefix(prefix string) *uuidBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *uuidBuilder) SkipSetter() *uuidBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point.
func (b *uuidBuilder) EntryPoint() *uuidBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *uuidBuilder) Comment(c string) *uuidBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *uuidBuilder) Descriptor() *Descriptor {
	return b.desc
}

// otherBuilder is the builder for fields with arbitrary named Go types.
type otherBuilder struct {
	desc *Descriptor
}

// Required marks the field as required before Build.
func (b *otherBuilder) Required() *otherBuilder {
	b.desc.setRequired()
	return b
}

// DefaultExpr sets the default expression of the field verbatim.
func (b *otherBuilder) DefaultExpr(expr string) *otherBuilder {
	b.desc.setDefault(expr)
	return b
}

// Convert sets a named converter function for the field.
func (b *otherBuilder) Convert(fn string, input *TypeInfo) *otherBuilder {
	b.desc.setConverter(&Converter{Func: fn, Input: input})
	return b
}

// ConvertExpr sets an inline converter expression over the named parameter.
func (b *otherBuilder) ConvertExpr(param, expr string, input *TypeInfo) *otherBuilder {
	b.desc.setConverter(&Converter{Param: param, Expr: expr, Input: input})
	return b
}

// SetterName overrides the setter method name.
func (b *otherBuilder) SetterName(name string) *otherBuilder {
	b.desc.setSetterName(name)
	return b
}

// SetterPrefix overrides the struct-level setter prefix.
func (b *otherBuilder) SetterPrefix(prefix string) *otherBuilder {
	b.desc.setSetterPrefix(prefix)
	return b
}

// SkipSetter suppresses setter generation for the field.
func (b *otherBuilder) SkipSetter() *otherBuilder {
	b.desc.setSkipSetter()
	return b
}

// EntryPoint makes this field's setter the construction entry point.
func (b *otherBuilder) EntryPoint() *otherBuilder {
	b.desc.setEntryPoint()
	return b
}

// Comment sets the doc comment of the generated setter.
func (b *otherBuilder) Comment(c string) *otherBuilder {
	b.desc.Comment = c
	return b
}

// Descriptor implements the Field interface.
func (b *otherBuilder) Descriptor() *Descriptor {
	return b.desc
}
