package field

import (
	"fmt"
)

// A Type represents a storage type of a builder field.
type Type uint8

// List of the supported storage types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeString
	TypeBytes
	TypeTime
	TypeUUID
	TypeInt
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeOther
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeString:  "string",
	TypeBytes:   "[]byte",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid.UUID",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint:    "uint",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeOther:   "other",
}

// String returns the Go literal of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a valid storage type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt && t <= TypeFloat64
}

// Basic reports if the type has a basic underlying kind that a
// widening-conversion constraint (`~kind`) can name.
func (t Type) Basic() bool {
	switch t {
	case TypeBool, TypeString, TypeBytes:
		return true
	default:
		return t.Numeric()
	}
}

// ConstraintKind returns the type-set constraint element used by
// auto-convert setters (e.g. "~string"). It returns an empty string for
// types without a basic underlying kind; auto-convert is rejected for
// those during validation.
func (t Type) ConstraintKind() string {
	if !t.Basic() {
		return ""
	}
	return "~" + t.String()
}

// MarshalText implements encoding.TextMarshaler. Types are serialized
// by their Go literal so schema documents stay readable.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() && t != TypeInvalid {
		return nil, fmt.Errorf("field: invalid type %d", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	typ, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

// MarshalYAML encodes the type by its Go literal, matching the text
// form used in JSON schema documents.
func (t Type) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML decodes the type from its Go literal.
func (t *Type) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

// ParseType returns the Type named by s (e.g. "string", "int64", "other").
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if i != int(TypeInvalid) && name == s {
			return Type(i), nil
		}
	}
	return TypeInvalid, fmt.Errorf("field: unknown type %q", s)
}

// TypeInfo holds the information regarding a field's storage type.
type TypeInfo struct {
	Type Type `json:"type,omitempty" yaml:"type,omitempty"`
	// Ident is the Go type literal for TypeOther fields, or a package
	// qualified name (e.g. "time.Time"). Empty for primitive types.
	Ident string `json:"ident,omitempty" yaml:"ident,omitempty"`
	// PkgPath is the import path of the package defining Ident.
	PkgPath string `json:"pkg_path,omitempty" yaml:"pkg_path,omitempty"`
}

// String returns the Go literal of the type.
func (t TypeInfo) String() string {
	if t.Ident != "" {
		return t.Ident
	}
	return t.Type.String()
}

// Valid reports if the given type is a valid field type.
func (t TypeInfo) Valid() bool {
	if t.Type == TypeOther {
		return t.Ident != ""
	}
	return t.Type.Valid()
}

// ConstraintKind returns the auto-convert constraint element of the type.
// Named types (TypeOther, TypeTime, TypeUUID) have no basic underlying
// kind the generator can name, so they return an empty string.
func (t TypeInfo) ConstraintKind() string {
	switch t.Type {
	case TypeOther, TypeTime, TypeUUID:
		return ""
	}
	return t.Type.ConstraintKind()
}
