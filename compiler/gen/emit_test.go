package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/compiler/load"
	"github.com/syssam/typestate/schema/field"
)

// renderType emits the schema and returns the formatted source. Render
// runs the output through the Go formatter, so a malformed emission
// fails here, not in the consumer's build.
func renderType(t *testing.T, schema *load.Schema) string {
	t.Helper()
	typ := newTestType(t, schema)
	f, err := Emit(typ)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	return buf.String()
}

func TestEmitTwoRequired(t *testing.T) {
	age := &load.Field{Name: "age", Info: &field.TypeInfo{Type: field.TypeInt}, Default: "0"}
	src := renderType(t, &load.Schema{
		Name: "User",
		Fields: []*load.Field{
			requiredField("name"),
			requiredField("email"),
			age,
		},
	})

	// The target struct.
	assert.Contains(t, src, "type User struct")
	assert.Contains(t, src, "Name string")
	assert.Contains(t, src, "Age int")

	// Four states over the two required fields, named in declaration
	// order.
	for _, state := range []string{
		"type UserBuilder_MissingName_MissingEmail struct",
		"type UserBuilder_HasName_MissingEmail struct",
		"type UserBuilder_MissingName_HasEmail struct",
		"type UserBuilder_HasName_HasEmail struct",
	} {
		assert.Contains(t, src, state)
	}

	// The initializer starts all-missing and materializes the optional
	// default.
	assert.Contains(t, src, "func NewUserBuilder() UserBuilder_MissingName_MissingEmail")
	assert.Contains(t, src, "age: 0")

	// Required setters advance the state; each order converges.
	assert.Contains(t, src, "func (b UserBuilder_MissingName_MissingEmail) Name(v string) UserBuilder_HasName_MissingEmail")
	assert.Contains(t, src, "func (b UserBuilder_MissingName_MissingEmail) Email(v string) UserBuilder_MissingName_HasEmail")
	assert.Contains(t, src, "func (b UserBuilder_HasName_MissingEmail) Email(v string) UserBuilder_HasName_HasEmail")
	assert.Contains(t, src, "func (b UserBuilder_MissingName_HasEmail) Name(v string) UserBuilder_HasName_HasEmail")

	// The optional setter is a self-loop on every state.
	assert.Contains(t, src, "func (b UserBuilder_MissingName_MissingEmail) Age(v int) UserBuilder_MissingName_MissingEmail")
	assert.Contains(t, src, "func (b UserBuilder_HasName_HasEmail) Age(v int) UserBuilder_HasName_HasEmail")

	// Build exists only on the terminal state.
	assert.Contains(t, src, "func (b UserBuilder_HasName_HasEmail) Build() User")
	assert.Equal(t, 1, strings.Count(src, ") Build() User"))
	assert.NotContains(t, src, "func (b UserBuilder_MissingName_MissingEmail) Build")
}

func TestEmitZeroRequired(t *testing.T) {
	retries := &load.Field{Name: "retries", Info: &field.TypeInfo{Type: field.TypeInt}, Default: "3"}
	src := renderType(t, &load.Schema{
		Name:   "Client",
		Fields: []*load.Field{retries},
	})

	// A single state that is both initial and terminal.
	assert.Contains(t, src, "type ClientBuilder struct")
	assert.NotContains(t, src, "ClientBuilder_")
	assert.Contains(t, src, "func NewClientBuilder() ClientBuilder")
	assert.Contains(t, src, "retries: 3")
	assert.Contains(t, src, "func (b ClientBuilder) Retries(v int) ClientBuilder")
	assert.Contains(t, src, "func (b ClientBuilder) Build() Client")
}

func TestEmitCarriesFieldsAcrossStates(t *testing.T) {
	src := renderType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			requiredField("port"),
			stringField("comment"),
		},
	})
	// Advancing copies previously set storage.
	assert.Contains(t, src, "host: b.host")
	assert.Contains(t, src, "comment: b.comment")
}

func TestEmitEntryPoint(t *testing.T) {
	host := requiredField("host")
	host.EntryPoint = true
	src := renderType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{host, requiredField("port")},
	})

	// The entry constructor replaces the initializer and pre-sets host.
	assert.Contains(t, src, "func ConfigHost(v string) ConfigBuilder_HasHost_MissingPort")
	assert.NotContains(t, src, "NewConfigBuilder")
	// States missing the entry bit are never emitted.
	assert.NotContains(t, src, "ConfigBuilder_MissingHost_MissingPort")
	assert.NotContains(t, src, "ConfigBuilder_MissingHost_HasPort")
	assert.Contains(t, src, "func (b ConfigBuilder_HasHost_MissingPort) Port(v string) ConfigBuilder_HasHost_HasPort")
}

func TestEmitAutoConvert(t *testing.T) {
	src := renderType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{AutoConvert: true},
		Fields: []*load.Field{requiredField("host")},
	})

	// Auto-convert setters are package-level generic functions; methods
	// cannot declare type parameters.
	assert.Contains(t, src, "func ConfigBuilder_MissingHost_Host[V ~string](b ConfigBuilder_MissingHost, v V) ConfigBuilder_HasHost")
	assert.Contains(t, src, "host: string(v)")
}

func TestEmitNamedConverter(t *testing.T) {
	f := &load.Field{
		Name:     "timeout",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt64},
		Converter: &field.Converter{
			Func:  "parseTimeout",
			Param: "s",
			Input: &field.TypeInfo{Type: field.TypeString},
		},
	}
	src := renderType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})

	// The setter accepts the converter's input type and applies it.
	assert.Contains(t, src, "Timeout(s string)")
	assert.Contains(t, src, "timeout: parseTimeout(s)")
}

func TestEmitInlineConverter(t *testing.T) {
	f := &load.Field{
		Name:     "size",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt},
		Converter: &field.Converter{
			Param: "s",
			Expr:  "len(s)",
			Input: &field.TypeInfo{Type: field.TypeString},
		},
	}
	src := renderType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})
	assert.Contains(t, src, "size: len(s)")
}

func TestEmitConstSynthesizesConverter(t *testing.T) {
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
	src := renderType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{Const: true},
		Fields: []*load.Field{f},
	})

	// The inline body becomes a standalone function so the host
	// toolchain can check it.
	assert.Contains(t, src, "func convertConfigTimeoutMs(s int) int")
	assert.Contains(t, src, "return s * 1000")
	assert.Contains(t, src, "timeoutMs: convertConfigTimeoutMs(s)")
}

func TestEmitSkipSetterDefault(t *testing.T) {
	secret := stringField("secret")
	secret.SkipSetter = true
	secret.Default = `"hidden"`
	src := renderType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("host"), secret},
	})

	// No setter, but the default is materialized and the field carried.
	assert.NotContains(t, src, ") Secret(")
	assert.Contains(t, src, `secret: "hidden"`)
	assert.Contains(t, src, "secret: b.secret")
	assert.Contains(t, src, "Secret: b.secret")
}

func TestEmitUnexported(t *testing.T) {
	src := renderType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{Unexported: true},
		Fields: []*load.Field{requiredField("host")},
	})
	assert.Contains(t, src, "type configBuilder_MissingHost struct")
	assert.Contains(t, src, "func newConfigBuilder() configBuilder_MissingHost")
	assert.Contains(t, src, ") host(v string) configBuilder_HasHost")
	assert.Contains(t, src, ") build() Config")
}

func TestEmitTypeParams(t *testing.T) {
	f := &load.Field{
		Name:     "value",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeOther, Ident: "T"},
	}
	src := renderType(t, &load.Schema{
		Name:   "Box",
		Config: typestate.Config{TypeParams: []typestate.TypeParam{{Name: "T"}}},
		Fields: []*load.Field{f},
	})

	// Type parameters propagate to the target, every state, the
	// initializer and the transitions.
	assert.Contains(t, src, "type Box[T any] struct")
	assert.Contains(t, src, "type BoxBuilder_MissingValue[T any] struct")
	assert.Contains(t, src, "func NewBoxBuilder[T any]() BoxBuilder_MissingValue[T]")
	assert.Contains(t, src, "func (b BoxBuilder_MissingValue[T]) Value(v T) BoxBuilder_HasValue[T]")
	assert.Contains(t, src, "func (b BoxBuilder_HasValue[T]) Build() Box[T]")
}

func TestEmitBuildMethodOverride(t *testing.T) {
	src := renderType(t, &load.Schema{
		Name:   "Request",
		Config: typestate.Config{BuildMethod: "Send", SetterPrefix: "with"},
		Fields: []*load.Field{requiredField("url")},
	})
	assert.Contains(t, src, ") Send() Request")
	assert.Contains(t, src, ") WithURL(v string) ")
	assert.NotContains(t, src, ") Build()")
}

func TestEmitConflictAborts(t *testing.T) {
	f := requiredField("host")
	f.Default = `"x"`
	typ := newTestType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})
	_, err := Emit(typ)
	require.Error(t, err)
	assert.True(t, typestate.IsConflict(err))
}

func TestEmitHeader(t *testing.T) {
	typ, err := NewType(&Config{
		Package: "example.com/test/builders",
		Target:  "builders",
		Header:  "Copyright Acme Inc.",
	}, &load.Schema{Name: "Config", Fields: []*load.Field{requiredField("host")}})
	require.NoError(t, err)
	f, err := Emit(typ)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	assert.Contains(t, buf.String(), "Copyright Acme Inc.")
	assert.Contains(t, buf.String(), "Code generated by typestate. DO NOT EDIT.")
}
