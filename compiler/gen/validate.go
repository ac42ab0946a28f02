package gen

import (
	"strings"

	"github.com/syssam/typestate"
)

// stateBits is the capacity of the required-field bitset.
const stateBits = 63

// Validate checks the type for internal consistency and attribute
// conflicts. It runs every rule to completion and returns the full batch
// of conflicts as typestate.Conflicts, or nil when the schema is clean.
// A conflicted schema never reaches emission.
func (t *Type) Validate() error {
	var conflicts typestate.Conflicts

	add := func(fieldName string, rule typestate.Rule, format string, args ...any) {
		conflicts = append(conflicts, typestate.NewConflict(t.Name, fieldName, rule, format, args...))
	}

	if !validIdent(t.Name) {
		add("", typestate.RuleInvalidIdent, "schema name %q is not a valid identifier", t.Name)
	}
	if name := t.schema.Config.BuildMethod; name != "" && !validIdent(name) {
		add("", typestate.RuleInvalidIdent, "build method name %q is not a valid identifier", name)
	}
	for _, p := range t.schema.Config.TypeParams {
		if !validIdent(p.Name) {
			add("", typestate.RuleInvalidIdent, "type parameter %q is not a valid identifier", p.Name)
		}
	}

	constMode := t.ConstMode()
	if constMode && t.schema.Config.AutoConvert {
		add("", typestate.RuleConstAutoConvert,
			"auto-convert setters require generic dispatch, which const mode does not permit")
	}
	if n := len(t.RequiredFields()); n > stateBits {
		add("", typestate.RuleTooManyRequired,
			"%d required fields exceed the %d-bit state space", n, stateBits)
	}

	var entryPoints []string
	seen := make(map[string]struct{}, len(t.Fields))
	for _, f := range t.Fields {
		if _, ok := seen[f.Name]; ok {
			add(f.Name, typestate.RuleDuplicateField, "field %q redeclared", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.def.EntryPoint {
			entryPoints = append(entryPoints, f.Name)
		}
		t.validateField(f, constMode, add)
	}
	if len(entryPoints) > 1 {
		add("", typestate.RuleMultipleEntryPoints,
			"at most one entry-point field is allowed, got %s", strings.Join(entryPoints, ", "))
	}

	if len(conflicts) == 0 {
		return nil
	}
	return conflicts
}

func (t *Type) validateField(f *Field, constMode bool, add func(string, typestate.Rule, string, ...any)) {
	if !validIdent(f.Name) {
		add(f.Name, typestate.RuleInvalidIdent, "field name %q is not a valid identifier", f.Name)
	}
	if f.Info == nil || !f.Info.Valid() {
		add(f.Name, typestate.RuleInvalidType, "missing or invalid storage type")
	}
	if name := f.def.SetterName; name != "" && !validIdent(name) {
		add(f.Name, typestate.RuleInvalidIdent, "setter name %q is not a valid identifier", name)
	}
	for _, attr := range f.Duplicates() {
		add(f.Name, typestate.RuleDuplicateAttribute, "attribute %q applied more than once", attr)
	}

	if f.Required {
		if f.HasDefault() {
			add(f.Name, typestate.RuleRequiredDefault,
				"required field cannot have a default value; required means the caller supplies it")
		}
		if f.SkipSetter() {
			add(f.Name, typestate.RuleRequiredSkipSetter,
				"required field cannot skip setter generation; there would be no way to set it")
		}
	}

	if f.SkipSetter() {
		if f.def.SetterName != "" {
			add(f.Name, typestate.RuleSkipSetterName, "skip_setter leaves no setter to rename")
		}
		if f.def.SetterPrefix != "" {
			add(f.Name, typestate.RuleSkipSetterPrefix, "skip_setter leaves no setter to prefix")
		}
		if f.AutoConvertSet() {
			add(f.Name, typestate.RuleSkipSetterAutoConvert, "skip_setter leaves no setter to auto-convert")
		}
		if f.Converter() != nil {
			add(f.Name, typestate.RuleSkipSetterConverter, "skip_setter leaves no setter to convert")
		}
		if !f.Required && !f.HasDefault() {
			add(f.Name, typestate.RuleSkipSetterNoDefault,
				"field without a setter needs an explicit default to be initialized")
		}
	}

	if f.Converter() != nil && f.AutoConvertSet() && f.AutoConvert() {
		add(f.Name, typestate.RuleConverterAutoConvert,
			"a converter and auto-convert cannot both produce the value of one setter")
	}

	if f.def.EntryPoint {
		if !f.Required {
			add(f.Name, typestate.RuleEntryPointNotRequired, "entry-point field must be required")
		}
		if f.SkipSetter() {
			add(f.Name, typestate.RuleEntryPointSkipSetter, "entry-point field cannot skip its setter")
		}
	}

	if constMode {
		if f.AutoConvertSet() && f.AutoConvert() {
			add(f.Name, typestate.RuleConstAutoConvert,
				"auto-convert setters require generic dispatch, which const mode does not permit")
		}
		if !f.Required && f.Converter() == nil && !f.HasDefault() {
			add(f.Name, typestate.RuleConstImplicitDefault,
				"const mode requires an explicit default; generic default construction is not constant-evaluable")
		}
	}

	// Effective auto-convert needs a basic underlying kind to name its
	// `~kind` constraint. The converter and skip cases resolve to other
	// strategies and are exempt.
	if f.AutoConvert() && !f.SkipSetter() && f.Converter() == nil && !constMode {
		if f.Info != nil && f.Info.Valid() && f.Info.ConstraintKind() == "" {
			add(f.Name, typestate.RuleAutoConvertKind,
				"auto-convert needs a storage type with a basic underlying kind, %s has none", f.Info)
		}
	}
}
