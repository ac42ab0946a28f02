package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/compiler/load"
	"github.com/syssam/typestate/schema/field"
)

func TestResolveExact(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("host")},
	})
	plans := resolvePlans(typ)
	require.Len(t, plans, 1)
	p := plans[0]
	assert.Equal(t, StrategyExact, p.Strategy)
	assert.Equal(t, field.TypeString, p.Param.Type)
	assert.Equal(t, "v", p.ParamName)
	assert.True(t, p.HasSetter())
	assert.False(t, p.Generic())
}

func TestResolveAutoConvert(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{AutoConvert: true},
		Fields: []*load.Field{requiredField("host")},
	})
	p := resolvePlans(typ)[0]
	assert.Equal(t, StrategyAutoConvert, p.Strategy)
	assert.Equal(t, "~string", p.Constraint)
	assert.True(t, p.Generic())
}

func TestResolveConverterPrecedence(t *testing.T) {
	// A converter wins over inherited auto-convert.
	f := &load.Field{
		Name:     "timeout",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt64},
		Converter: &field.Converter{
			Func:  "parseTimeout",
			Input: &field.TypeInfo{Type: field.TypeString},
		},
	}
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{AutoConvert: true},
		Fields: []*load.Field{f},
	})
	p := resolvePlans(typ)[0]
	assert.Equal(t, StrategyConverter, p.Strategy)
	assert.Equal(t, "parseTimeout", p.ConvertFunc)
	assert.Equal(t, field.TypeString, p.Param.Type)
	assert.Equal(t, "v", p.ParamName)
	assert.False(t, p.Generic())
}

func TestResolveInlineConverter(t *testing.T) {
	f := &load.Field{
		Name:     "timeout",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt},
		Converter: &field.Converter{
			Param: "s",
			Expr:  "len(s)",
			Input: &field.TypeInfo{Type: field.TypeString},
		},
	}
	typ := newTestType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})
	p := resolvePlans(typ)[0]
	assert.Equal(t, StrategyConverter, p.Strategy)
	assert.Equal(t, "s", p.ParamName)
	assert.Equal(t, "len(s)", p.InlineExpr)
	assert.Empty(t, p.ConvertFunc)
	assert.False(t, p.Synthesized)
}

func TestResolveConstSynthesizesInline(t *testing.T) {
	f := &load.Field{
		Name:     "timeout_ms",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt},
		Converter: &field.Converter{
			Param: "s",
			Expr:  "s * 1000",
			Input: &field.TypeInfo{Type: field.TypeInt},
		},
	}
	typ := newTestType(t, &load.Schema{
		Name:   "ServerConfig",
		Config: typestate.Config{Const: true},
		Fields: []*load.Field{f},
	})
	p := resolvePlans(typ)[0]
	assert.Equal(t, StrategyConverter, p.Strategy)
	assert.True(t, p.Synthesized)
	assert.Equal(t, "convertServerConfigTimeoutMs", p.ConvertFunc)
	assert.Empty(t, p.InlineExpr)
}

func TestResolveSkip(t *testing.T) {
	f := stringField("secret")
	f.SkipSetter = true
	f.Default = `"hidden"`
	typ := newTestType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})
	p := resolvePlans(typ)[0]
	assert.Equal(t, StrategySkip, p.Strategy)
	assert.Nil(t, p.Param)
	assert.False(t, p.HasSetter())
	assert.Equal(t, `"hidden"`, p.DefaultExpr)
}

func TestResolveDeclarationOrder(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			stringField("comment"),
			requiredField("port"),
		},
	})
	plans := resolvePlans(typ)
	require.Len(t, plans, 3)
	assert.Equal(t, "host", plans[0].Field.Name)
	assert.Equal(t, "comment", plans[1].Field.Name)
	assert.Equal(t, "port", plans[2].Field.Name)
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "exact", StrategyExact.String())
	assert.Equal(t, "auto_convert", StrategyAutoConvert.String())
	assert.Equal(t, "converter", StrategyConverter.String())
	assert.Equal(t, "skip", StrategySkip.String())
	assert.Equal(t, "unknown", Strategy(42).String())
}
