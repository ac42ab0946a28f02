package typestate

import (
	"github.com/syssam/typestate/schema/field"
)

// Interface is the schema definition contract. Users define a type that
// embeds Schema and overrides the methods they need.
type Interface interface {
	// Type is a dummy method that ensures the type is a schema definition.
	Type()
	// Fields returns the field descriptors of the target struct,
	// in declaration order. Declaration order is significant: builder
	// state names and diagnostics follow it.
	Fields() []field.Field
	// Config returns the struct-level builder configuration.
	Config() Config
}

// Schema is the default implementation of Interface. Embed it in a schema
// definition and override only the methods you need.
type Schema struct{}

// Type implements Interface.
func (Schema) Type() {}

// Fields of the schema. Returns nil by default.
func (Schema) Fields() []field.Field { return nil }

// Config of the schema. Returns the zero configuration by default.
func (Schema) Config() Config { return Config{} }

// TypeParam is one generic type parameter of the target struct, carried
// verbatim onto every generated builder state type.
type TypeParam struct {
	// Name is the parameter identifier (e.g. "T").
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Constraint is the constraint expression (e.g. "comparable",
	// "constraints.Ordered"). Empty means "any".
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"`
}

// Config holds the struct-level builder options. Field-level overrides
// always win over the struct-level defaults declared here.
type Config struct {
	// SetterPrefix is prepended to every setter name that has no
	// field-level name or prefix override (e.g. "With" -> WithHost).
	SetterPrefix string `json:"setter_prefix,omitempty" yaml:"setter_prefix,omitempty"`

	// AutoConvert enables widening-conversion setters for every field
	// that does not override it. An auto-convert setter accepts any type
	// whose underlying kind matches the storage type.
	AutoConvert bool `json:"auto_convert,omitempty" yaml:"auto_convert,omitempty"`

	// BuildMethod overrides the name of the completion method.
	// Empty means "Build".
	BuildMethod string `json:"build_method,omitempty" yaml:"build_method,omitempty"`

	// Const restricts generation to constant-evaluable constructs:
	// auto-convert setters are rejected, and every optional field without
	// a converter must carry an explicit default expression. Whether a
	// converter body is actually constant-evaluable is checked by the
	// downstream toolchain, not by this generator.
	Const bool `json:"const,omitempty" yaml:"const,omitempty"`

	// Unexported lowercases the generated builder type and method names,
	// keeping the builder private to the generated package's importers.
	Unexported bool `json:"unexported,omitempty" yaml:"unexported,omitempty"`

	// TypeParams are the generic parameters of the target struct.
	TypeParams []TypeParam `json:"type_params,omitempty" yaml:"type_params,omitempty"`
}
