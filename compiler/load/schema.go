// Package load converts user schema definitions into the serializable
// model consumed by compiler/gen. Loading performs shape conversion only;
// all semantic validation belongs to the generator.
package load

import (
	"fmt"
	"reflect"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/schema/field"
)

// Schema represents a typestate.Interface that was loaded from a user
// definition or decoded from a schema document.
type Schema struct {
	Name   string           `json:"name,omitempty" yaml:"name,omitempty"`
	Config typestate.Config `json:"config,omitempty" yaml:"config,omitempty"`
	Fields []*Field         `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Field represents a field.Descriptor that was loaded from a user
// definition or decoded from a schema document.
type Field struct {
	Name         string           `json:"name,omitempty" yaml:"name,omitempty"`
	Info         *field.TypeInfo  `json:"type,omitempty" yaml:"type,omitempty"`
	Required     bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Default      string           `json:"default,omitempty" yaml:"default,omitempty"`
	Converter    *field.Converter `json:"converter,omitempty" yaml:"converter,omitempty"`
	AutoConvert  *bool            `json:"auto_convert,omitempty" yaml:"auto_convert,omitempty"`
	SetterName   string           `json:"setter_name,omitempty" yaml:"setter_name,omitempty"`
	SetterPrefix string           `json:"setter_prefix,omitempty" yaml:"setter_prefix,omitempty"`
	SkipSetter   bool             `json:"skip_setter,omitempty" yaml:"skip_setter,omitempty"`
	EntryPoint   bool             `json:"entry_point,omitempty" yaml:"entry_point,omitempty"`
	Comment      string           `json:"comment,omitempty" yaml:"comment,omitempty"`
	// Duplicates lists attributes that were applied more than once on
	// the descriptor. The generator turns each entry into a conflict.
	Duplicates []string `json:"duplicates,omitempty" yaml:"duplicates,omitempty"`
}

// NewSchema creates a loaded schema from a schema definition.
// The schema name is taken from the Go type name of the definition.
func NewSchema(schema typestate.Interface) (*Schema, error) {
	if schema == nil {
		return nil, fmt.Errorf("load: nil schema")
	}
	t := reflect.Indirect(reflect.ValueOf(schema)).Type()
	s := &Schema{
		Name:   t.Name(),
		Config: schema.Config(),
	}
	if s.Name == "" {
		return nil, fmt.Errorf("load: schema type %T has no name", schema)
	}
	for _, f := range schema.Fields() {
		lf, err := NewField(f.Descriptor())
		if err != nil {
			return nil, fmt.Errorf("load: schema %s: %w", s.Name, err)
		}
		s.Fields = append(s.Fields, lf)
	}
	return s, nil
}

// NewField creates a loaded field from a field descriptor.
// It returns an error if the descriptor contains a builder-time error.
func NewField(fd *field.Descriptor) (*Field, error) {
	if fd.Err != nil {
		return nil, fd.Err
	}
	return &Field{
		Name:         fd.Name,
		Info:         fd.Info,
		Required:     fd.Required,
		Default:      fd.Default,
		Converter:    fd.Converter,
		AutoConvert:  fd.AutoConvert,
		SetterName:   fd.SetterName,
		SetterPrefix: fd.SetterPrefix,
		SkipSetter:   fd.SkipSetter,
		EntryPoint:   fd.EntryPoint,
		Comment:      fd.Comment,
		Duplicates:   fd.Duplicates(),
	}, nil
}
