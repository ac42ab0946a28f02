package gen

import (
	"github.com/syssam/typestate/schema/field"
)

// Strategy is the value-production strategy of one field. Exactly one
// strategy applies per field, resolved with the precedence
// converter > auto-convert > exact; fields without a setter resolve to
// StrategySkip.
type Strategy uint8

// The value-production strategies.
const (
	// StrategyExact stores the setter argument as-is.
	StrategyExact Strategy = iota
	// StrategyAutoConvert accepts any type of the storage type's
	// underlying kind and converts it.
	StrategyAutoConvert
	// StrategyConverter applies the field's converter to the argument.
	StrategyConverter
	// StrategySkip emits no setter; the field is populated by its
	// default.
	StrategySkip
)

var strategyNames = [...]string{
	StrategyExact:       "exact",
	StrategyAutoConvert: "auto_convert",
	StrategyConverter:   "converter",
	StrategySkip:        "skip",
}

// String returns the strategy name.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return "unknown"
}

// Plan is the resolved value production of one field: the parameter type
// its setter accepts and the way that parameter becomes the stored value.
type Plan struct {
	// Field is the planned field.
	Field *Field
	// Strategy is the resolved production strategy.
	Strategy Strategy
	// Param is the setter parameter type. Nil for StrategySkip.
	Param *field.TypeInfo
	// ParamName is the setter parameter identifier.
	ParamName string
	// Constraint is the type-set constraint element of auto-convert
	// setters (e.g. "~string").
	Constraint string
	// ConvertFunc names the function applied to the argument: a
	// referenced converter function, or the synthesized const-mode
	// helper.
	ConvertFunc string
	// InlineExpr is the inline converter body over ParamName. Set only
	// for non-const inline converters; in const mode the body moves
	// into the synthesized ConvertFunc.
	InlineExpr string
	// Synthesized reports that ConvertFunc is a standalone helper
	// emitted alongside the states. Whether its body is actually
	// constant-evaluable is checked downstream by the host compiler.
	Synthesized bool
	// DefaultExpr is the default materialization of the field. Empty
	// means the storage type's zero value, a path the validator has
	// already ruled out in const mode.
	DefaultExpr string
}

// resolvePlans resolves the value-production plan of every field, in
// declaration order. It assumes the type has been validated.
func resolvePlans(t *Type) []*Plan {
	plans := make([]*Plan, 0, len(t.Fields))
	for _, f := range t.Fields {
		plans = append(plans, resolvePlan(t, f))
	}
	return plans
}

func resolvePlan(t *Type, f *Field) *Plan {
	p := &Plan{Field: f, DefaultExpr: f.DefaultExpr()}
	switch {
	case f.SkipSetter():
		p.Strategy = StrategySkip
	case f.Converter() != nil:
		c := f.Converter()
		p.Strategy = StrategyConverter
		p.Param = c.Input
		p.ParamName = c.Param
		if p.ParamName == "" {
			p.ParamName = "v"
		}
		switch {
		case !c.Inline():
			p.ConvertFunc = c.Func
		case t.ConstMode():
			p.ConvertFunc = t.converterName(f)
			p.Synthesized = true
		default:
			p.InlineExpr = c.Expr
		}
	case f.AutoConvert():
		p.Strategy = StrategyAutoConvert
		p.Param = f.Info
		p.ParamName = "v"
		p.Constraint = f.Info.ConstraintKind()
	default:
		p.Strategy = StrategyExact
		p.Param = f.Info
		p.ParamName = "v"
	}
	return p
}

// converterName returns the name of the synthesized const-mode helper
// for the field's inline converter.
func (t Type) converterName(f *Field) string {
	return camel("convert_" + t.Name + "_" + f.Name)
}

// HasSetter reports if the plan emits a setter at all.
func (p *Plan) HasSetter() bool { return p.Strategy != StrategySkip }

// Generic reports if the plan's setter needs a type parameter and is
// therefore emitted as a package-level function instead of a method.
func (p *Plan) Generic() bool { return p.Strategy == StrategyAutoConvert }
