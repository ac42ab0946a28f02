package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/typestate/schema/field"
)

// Emit validates the type and produces its full declaration set as one
// jennifer file: the target struct, synthesized const-mode converters,
// the initializer (or entry-point constructor), one storage struct per
// reachable state with its transition methods, and the completion method
// on the terminal state. A validation conflict aborts with zero
// declarations.
func Emit(t *Type) (*jen.File, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	lattice := newLattice(t)
	plans := resolvePlans(t)
	byField := make(map[*Field]*Plan, len(plans))
	for _, p := range plans {
		byField[p.Field] = p
	}

	f := jen.NewFilePathName(t.Package, t.PackageName())
	if t.Header != "" {
		f.HeaderComment(t.Header)
	}
	f.HeaderComment("Code generated by typestate. DO NOT EDIT.")

	emitTarget(f, t)
	emitConverters(f, t, plans)
	emitInitializer(f, t, lattice, byField)
	for _, s := range lattice.States {
		emitState(f, t, lattice, s, byField)
	}
	return f, nil
}

// emitTarget emits the record type the builder constructs.
func emitTarget(f *jen.File, t *Type) {
	f.Commentf("%s is the record type constructed by its builder states.", t.Name)
	f.Type().Id(t.Name).Add(typeParamsDecl(t)).StructFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			g.Id(fl.StructField()).Add(typeCode(fl.Info))
		}
	})
}

// emitConverters emits the standalone helpers synthesized from inline
// converters in const mode. Their constant-evaluability is checked by
// the host compiler, not here.
func emitConverters(f *jen.File, t *Type, plans []*Plan) {
	for _, p := range plans {
		if !p.Synthesized {
			continue
		}
		c := p.Field.Converter()
		f.Commentf("%s converts the %s argument of %s.", p.ConvertFunc, p.Field.Name, p.Field.SetterName())
		f.Func().Id(p.ConvertFunc).
			Params(jen.Id(p.ParamName).Add(typeCode(c.Input))).
			Add(typeCode(p.Field.Info)).
			Block(jen.Return(rawExpr(c.Expr)))
	}
}

// emitInitializer emits the construction entry: the zero-argument
// initializer returning the initial state, or, when an entry-point field
// exists, the single-argument constructor on that field's setter.
func emitInitializer(f *jen.File, t *Type, l *Lattice, byField map[*Field]*Plan) {
	initial := l.Initial
	ep := t.EntryPoint()
	if ep == nil {
		f.Commentf("%s returns a %s builder with no required field set.", t.InitializerName(), t.Name)
		f.Func().Id(t.InitializerName()).Add(typeParamsDecl(t)).Params().
			Add(stateRef(t, initial)).
			Block(jen.Return(stateLiteral(t, initial, nil, nil, byField)))
		return
	}
	p := byField[ep]
	params := typeParamsDecl(t)
	if p.Generic() {
		params = genericParamsDecl(t, p)
	}
	f.Commentf("%s starts a %s builder with the %s field already set.", t.EntryConstructorName(), t.Name, ep.Name)
	f.Func().Id(t.EntryConstructorName()).Add(params).
		Params(jen.Id(p.ParamName).Add(paramCode(p))).
		Add(stateRef(t, initial)).
		Block(jen.Return(stateLiteral(t, initial, ep, p, byField)))
}

// emitState emits one state's storage struct, its transition methods,
// its package-level generic setters, and, on the terminal state, the
// completion method.
func emitState(f *jen.File, t *Type, l *Lattice, s *State, byField map[*Field]*Plan) {
	f.Commentf("%s is the %s builder state where %s.", s.Name, t.Name, stateDoc(t, s))
	f.Type().Id(s.Name).Add(typeParamsDecl(t)).StructFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			if storedIn(s, fl) {
				g.Id(fl.BuilderField()).Add(typeCode(fl.Info))
			}
		}
	})
	for _, e := range l.From(s) {
		p := byField[e.Field]
		if !p.HasSetter() {
			continue
		}
		if p.Generic() {
			emitGenericSetter(f, t, e, p)
			continue
		}
		emitSetter(f, t, e, p)
	}
	if s == l.Terminal {
		emitBuild(f, t, s)
	}
}

// emitSetter emits one transition method. Required-field edges return
// the advanced state; optional-field edges return the receiver's own
// type.
func emitSetter(f *jen.File, t *Type, e *Edge, p *Plan) {
	r := t.Receiver()
	doc := p.Field.Comment()
	if doc == "" {
		if e.SelfLoop() {
			doc = fmt.Sprintf("%s sets the optional %s field.", p.Field.SetterName(), p.Field.Name)
		} else {
			doc = fmt.Sprintf("%s sets the required %s field.", p.Field.SetterName(), p.Field.Name)
		}
	}
	f.Comment(doc)
	m := f.Func().Params(jen.Id(r).Add(stateRef(t, e.From))).Id(p.Field.SetterName()).
		Params(jen.Id(p.ParamName).Add(paramCode(p))).
		Add(stateRef(t, e.To))
	if e.SelfLoop() {
		m.Block(
			jen.Id(r).Dot(p.Field.BuilderField()).Op("=").Add(valueExpr(p)),
			jen.Return(jen.Id(r)),
		)
		return
	}
	m.Block(jen.Return(advanceLiteral(t, e, jen.Id(r), p)))
}

// emitGenericSetter emits an auto-convert transition. Go methods cannot
// declare type parameters, so the setter is a package-level function
// named after the state and the setter.
func emitGenericSetter(f *jen.File, t *Type, e *Edge, p *Plan) {
	r := t.Receiver()
	name := e.From.Name + "_" + upperFirst(p.Field.SetterName())
	if t.BuilderConfig().Unexported {
		name = lowerFirst(name)
	}
	f.Commentf("%s sets the %s field from any %s value.", name, p.Field.Name, p.Constraint)
	m := f.Func().Id(name).Add(genericParamsDecl(t, p)).
		Params(
			jen.Id(r).Add(stateRef(t, e.From)),
			jen.Id(p.ParamName).Add(jen.Id(genericParamName(t))),
		).
		Add(stateRef(t, e.To))
	if e.SelfLoop() {
		m.Block(
			jen.Id(r).Dot(p.Field.BuilderField()).Op("=").Add(valueExpr(p)),
			jen.Return(jen.Id(r)),
		)
		return
	}
	m.Block(jen.Return(advanceLiteral(t, e, jen.Id(r), p)))
}

// emitBuild emits the completion method on the terminal state.
func emitBuild(f *jen.File, t *Type, s *State) {
	r := t.Receiver()
	f.Commentf("%s consumes the builder and returns the constructed %s.", t.BuildMethod(), t.Name)
	f.Func().Params(jen.Id(r).Add(stateRef(t, s))).Id(t.BuildMethod()).Params().
		Add(targetRef(t)).
		Block(jen.Return(targetRef(t).ValuesFunc(func(g *jen.Group) {
			for _, fl := range t.Fields {
				g.Id(fl.StructField()).Op(":").Id(r).Dot(fl.BuilderField())
			}
		})))
}

// stateLiteral builds the composite literal of a state reached from
// outside the lattice (initializer or entry constructor): optional
// fields materialize their defaults, and the entry-point field, when
// present, stores the constructor argument.
func stateLiteral(t *Type, s *State, ep *Field, epPlan *Plan, byField map[*Field]*Plan) jen.Code {
	return stateRef(t, s).ValuesFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			switch {
			case fl == ep:
				g.Id(fl.BuilderField()).Op(":").Add(valueExpr(epPlan))
			case storedIn(s, fl) && !fl.Required && byField[fl].DefaultExpr != "":
				g.Id(fl.BuilderField()).Op(":").Add(rawExpr(byField[fl].DefaultExpr))
			}
		}
	})
}

// advanceLiteral builds the composite literal of the state reached by a
// required-field edge: carried fields are copied from the receiver and
// the edge's field stores the produced value.
func advanceLiteral(t *Type, e *Edge, recv jen.Code, p *Plan) jen.Code {
	return stateRef(t, e.To).ValuesFunc(func(g *jen.Group) {
		for _, fl := range t.Fields {
			if !storedIn(e.To, fl) {
				continue
			}
			if fl == e.Field {
				g.Id(fl.BuilderField()).Op(":").Add(valueExpr(p))
				continue
			}
			g.Id(fl.BuilderField()).Op(":").Add(jen.Add(recv).Dot(fl.BuilderField()))
		}
	})
}

// valueExpr maps the setter parameter to the stored value per the
// resolved strategy.
func valueExpr(p *Plan) jen.Code {
	arg := jen.Id(p.ParamName)
	switch p.Strategy {
	case StrategyConverter:
		if p.ConvertFunc != "" {
			return jen.Id(p.ConvertFunc).Call(arg)
		}
		return rawExpr(p.InlineExpr)
	case StrategyAutoConvert:
		return conversionCode(p.Field.Info, arg)
	default:
		return arg
	}
}

// storedIn reports if the field has storage in the given state:
// optional fields always, required fields only when set.
func storedIn(s *State, f *Field) bool {
	return !f.Required || s.ID.Has(f.bit)
}

// stateDoc describes a state for its doc comment.
func stateDoc(t *Type, s *State) string {
	req := t.RequiredFields()
	if len(req) == 0 {
		return "every field is optional"
	}
	var set, missing []string
	for _, f := range req {
		if s.ID.Has(f.bit) {
			set = append(set, f.Name)
		} else {
			missing = append(missing, f.Name)
		}
	}
	switch {
	case len(missing) == 0:
		return fmt.Sprintf("all required fields (%s) are set", strings.Join(set, ", "))
	case len(set) == 0:
		return fmt.Sprintf("the required fields %s are not yet set", strings.Join(missing, ", "))
	default:
		return fmt.Sprintf("%s are set and %s are not", strings.Join(set, ", "), strings.Join(missing, ", "))
	}
}

// EntryConstructorName returns the name of the constructor replacing
// the initializer when an entry-point field exists.
func (t Type) EntryConstructorName() string {
	ep := t.EntryPoint()
	if ep == nil {
		return ""
	}
	name := pascal(t.Name) + upperFirst(ep.SetterName())
	if t.schema.Config.Unexported {
		name = lowerFirst(name)
	}
	return name
}

// typeParamsDecl renders the declaration-site type parameter list of the
// target struct ("[T any]"), or nothing when the struct is not generic.
func typeParamsDecl(t *Type) jen.Code {
	params := t.TypeParams()
	if len(params) == 0 {
		return jen.Null()
	}
	items := make([]jen.Code, len(params))
	for i, p := range params {
		constraint := p.Constraint
		if constraint == "" {
			constraint = "any"
		}
		items[i] = jen.Id(p.Name).Id(constraint)
	}
	return jen.Types(items...)
}

// typeParamsUse renders the use-site type argument list ("[T]").
func typeParamsUse(t *Type) jen.Code {
	params := t.TypeParams()
	if len(params) == 0 {
		return jen.Null()
	}
	items := make([]jen.Code, len(params))
	for i, p := range params {
		items[i] = jen.Id(p.Name)
	}
	return jen.Types(items...)
}

// genericParamName returns the type parameter identifier of auto-convert
// setters, avoiding the struct's own parameters.
func genericParamName(t *Type) string {
	name := "V"
	for _, p := range t.TypeParams() {
		if p.Name == name {
			name = "VV"
		}
	}
	return name
}

// genericParamsDecl renders the declaration-site parameter list of an
// auto-convert function: the struct's own parameters followed by the
// value parameter with its `~kind` constraint.
func genericParamsDecl(t *Type, p *Plan) jen.Code {
	var items []jen.Code
	for _, tp := range t.TypeParams() {
		constraint := tp.Constraint
		if constraint == "" {
			constraint = "any"
		}
		items = append(items, jen.Id(tp.Name).Id(constraint))
	}
	items = append(items, jen.Id(genericParamName(t)).Id(p.Constraint))
	return jen.Types(items...)
}

// stateRef renders a state type reference, instantiated with the
// struct's type parameters when generic.
func stateRef(t *Type, s *State) *jen.Statement {
	return jen.Id(s.Name).Add(typeParamsUse(t))
}

// targetRef renders a target type reference.
func targetRef(t *Type) *jen.Statement {
	return jen.Id(t.Name).Add(typeParamsUse(t))
}

// paramCode renders the setter parameter type: the generic parameter for
// auto-convert setters, the plan's parameter type otherwise.
func paramCode(p *Plan) jen.Code {
	if p.Generic() {
		return jen.Id(genericParamName(p.Field.typ))
	}
	return typeCode(p.Param)
}

// typeCode renders a storage type.
func typeCode(info *field.TypeInfo) jen.Code {
	if info == nil {
		return jen.Id("any")
	}
	switch info.Type {
	case field.TypeBytes:
		return jen.Index().Byte()
	case field.TypeTime:
		return jen.Qual("time", "Time")
	case field.TypeUUID:
		if info.PkgPath != "" {
			return jen.Qual(info.PkgPath, baseIdent(info.Ident))
		}
		return jen.Qual("github.com/google/uuid", "UUID")
	case field.TypeOther:
		if info.PkgPath != "" {
			return jen.Qual(info.PkgPath, baseIdent(info.Ident))
		}
		return rawExpr(info.Ident)
	default:
		return jen.Id(info.Type.String())
	}
}

// conversionCode renders the storage conversion of an auto-convert
// argument (e.g. string(v), ([]byte)(v)).
func conversionCode(info *field.TypeInfo, arg jen.Code) jen.Code {
	if info.Type == field.TypeBytes {
		return jen.Parens(jen.Index().Byte()).Call(arg)
	}
	return jen.Id(info.Type.String()).Call(arg)
}

// rawExpr renders a schema-supplied expression verbatim. Imports it
// references are added by the goimports pass of the writer.
func rawExpr(expr string) *jen.Statement {
	return jen.Op(expr)
}

// baseIdent returns the identifier after the package qualifier.
func baseIdent(ident string) string {
	if i := strings.LastIndexByte(ident, '.'); i >= 0 {
		return ident[i+1:]
	}
	return ident
}
