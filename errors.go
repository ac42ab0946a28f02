package typestate

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for schema analysis.
var (
	// ErrInvalidSchema is the sentinel all schema conflicts match.
	// errors.Is(err, ErrInvalidSchema) reports whether err carries at
	// least one Conflict.
	ErrInvalidSchema = errors.New("typestate: invalid schema")

	// ErrNoSchemas is returned when a generation pass is started with
	// an empty schema set.
	ErrNoSchemas = errors.New("typestate: no schemas to generate")
)

// Rule identifies one validation rule. Rule values are stable and are part
// of the diagnostic contract: frontends may switch on them to render
// custom messages without re-deriving the reason.
type Rule string

// The validation rules enforced before any code is emitted.
const (
	// RuleRequiredDefault: a required field may not carry a default
	// expression. Required means the caller must supply the value.
	RuleRequiredDefault Rule = "required_default"
	// RuleRequiredSkipSetter: a required field may not skip its setter,
	// there would be no way to supply it.
	RuleRequiredSkipSetter Rule = "required_skip_setter"
	// RuleSkipSetterName: skip_setter is incompatible with a custom
	// setter name.
	RuleSkipSetterName Rule = "skip_setter_setter_name"
	// RuleSkipSetterPrefix: skip_setter is incompatible with a setter
	// prefix override.
	RuleSkipSetterPrefix Rule = "skip_setter_setter_prefix"
	// RuleSkipSetterAutoConvert: skip_setter is incompatible with an
	// auto-convert override.
	RuleSkipSetterAutoConvert Rule = "skip_setter_auto_convert"
	// RuleSkipSetterConverter: skip_setter is incompatible with a
	// converter.
	RuleSkipSetterConverter Rule = "skip_setter_converter"
	// RuleConverterAutoConvert: a converter and auto-convert cannot both
	// apply to one setter.
	RuleConverterAutoConvert Rule = "converter_auto_convert"
	// RuleDuplicateAttribute: the same attribute was applied more than
	// once to one field or struct.
	RuleDuplicateAttribute Rule = "duplicate_attribute"
	// RuleDuplicateField: two fields share a name.
	RuleDuplicateField Rule = "duplicate_field"
	// RuleInvalidIdent: a name is not a valid Go identifier.
	RuleInvalidIdent Rule = "invalid_identifier"
	// RuleMultipleEntryPoints: at most one field may be the construction
	// entry point.
	RuleMultipleEntryPoints Rule = "multiple_entry_points"
	// RuleEntryPointNotRequired: the entry-point field must be required.
	RuleEntryPointNotRequired Rule = "entry_point_not_required"
	// RuleEntryPointSkipSetter: the entry-point field cannot skip its
	// setter.
	RuleEntryPointSkipSetter Rule = "entry_point_skip_setter"
	// RuleConstAutoConvert: auto-convert setters require generic
	// dispatch, which const mode forbids.
	RuleConstAutoConvert Rule = "const_auto_convert"
	// RuleConstImplicitDefault: in const mode every optional field
	// without a converter needs an explicit default expression.
	RuleConstImplicitDefault Rule = "const_implicit_default"
	// RuleAutoConvertKind: auto-convert needs a storage type with a
	// basic underlying kind to derive the `~kind` constraint.
	RuleAutoConvertKind Rule = "auto_convert_kind"
	// RuleTooManyRequired: the state space is a 64-bit set over required
	// fields; more than 63 required fields cannot be represented.
	RuleTooManyRequired Rule = "too_many_required"
	// RuleInvalidType: a field has a missing or invalid storage type.
	RuleInvalidType Rule = "invalid_type"
	// RuleSkipSetterNoDefault: a field without a setter needs an
	// explicit default, there is no other way to initialize it.
	RuleSkipSetterNoDefault Rule = "skip_setter_no_default"
)

// Conflict is one schema validation failure, tagged to the schema and
// (when field-level) the field it was detected on.
type Conflict struct {
	// Schema is the name of the offending struct schema.
	Schema string
	// Field is the offending field name. Empty for struct-level conflicts.
	Field string
	// Rule is the violated rule identifier.
	Rule Rule
	// Message is a human-readable explanation.
	Message string
}

// Error returns the error string.
func (c *Conflict) Error() string {
	var b strings.Builder
	b.WriteString("typestate: schema ")
	b.WriteString(c.Schema)
	if c.Field != "" {
		fmt.Fprintf(&b, ": field %q", c.Field)
	}
	fmt.Fprintf(&b, ": %s [%s]", c.Message, c.Rule)
	return b.String()
}

// Is reports whether the target matches the invalid-schema sentinel.
func (c *Conflict) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewConflict returns a field-level conflict. Pass an empty field name
// for struct-level conflicts.
func NewConflict(schemaName, fieldName string, rule Rule, format string, args ...any) *Conflict {
	return &Conflict{
		Schema:  schemaName,
		Field:   fieldName,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}

// Conflicts is the batch of all conflicts found in one validation pass.
// Validation runs to completion before reporting: a non-empty batch holds
// every violation, not just the first.
type Conflicts []*Conflict

// Error returns all conflict messages, one per line.
func (cs Conflicts) Error() string {
	msgs := make([]string, len(cs))
	for i, c := range cs {
		msgs[i] = c.Error()
	}
	return strings.Join(msgs, "\n")
}

// Is reports whether the target matches the invalid-schema sentinel.
func (cs Conflicts) Is(target error) bool {
	return target == ErrInvalidSchema
}

// Schema returns the conflicts tagged to the named schema.
func (cs Conflicts) Schema(name string) Conflicts {
	var out Conflicts
	for _, c := range cs {
		if c.Schema == name {
			out = append(out, c)
		}
	}
	return out
}

// IsConflict reports whether err carries at least one schema conflict.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}
	var c *Conflict
	var cs Conflicts
	return errors.As(err, &c) || errors.As(err, &cs) || errors.Is(err, ErrInvalidSchema)
}
