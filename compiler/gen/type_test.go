package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/compiler/load"
	"github.com/syssam/typestate/schema/field"
)

func TestNewType(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			stringField("comment"),
			requiredField("port"),
		},
	})
	require.Len(t, typ.Fields, 3)
	// Bits follow declaration order among required fields only.
	assert.Equal(t, 0, typ.Fields[0].Bit())
	assert.Equal(t, -1, typ.Fields[1].Bit())
	assert.Equal(t, 1, typ.Fields[2].Bit())
	assert.Len(t, typ.RequiredFields(), 2)
	assert.Len(t, typ.OptionalFields(), 1)

	_, err := NewType(nil, &load.Schema{Name: "Config"})
	assert.Error(t, err)
	assert.True(t, IsConfigError(err))
	_, err = NewType(testConfig(), nil)
	assert.Error(t, err)
}

func TestTypeNames(t *testing.T) {
	typ := newTestType(t, &load.Schema{Name: "ServerConfig"})
	assert.Equal(t, "ServerConfig", typ.TargetName())
	assert.Equal(t, "ServerConfigBuilder", typ.BuilderName())
	assert.Equal(t, "NewServerConfigBuilder", typ.InitializerName())
	assert.Equal(t, "Build", typ.BuildMethod())
	assert.Equal(t, "server_config_builder.go", typ.FileName())
}

func TestTypeUnexported(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{Unexported: true},
		Fields: []*load.Field{requiredField("host")},
	})
	assert.Equal(t, "configBuilder", typ.BuilderName())
	assert.Equal(t, "newConfigBuilder", typ.InitializerName())
	assert.Equal(t, "build", typ.BuildMethod())
	assert.Equal(t, "host", typ.Fields[0].SetterName())
}

func TestTypeBuildMethodOverride(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{BuildMethod: "Finish"},
	})
	assert.Equal(t, "Finish", typ.BuildMethod())
}

func TestFieldSetterName(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		typ := newTestType(t, &load.Schema{
			Name:   "Config",
			Fields: []*load.Field{requiredField("max_retries")},
		})
		assert.Equal(t, "MaxRetries", typ.Fields[0].SetterName())
	})
	t.Run("struct prefix", func(t *testing.T) {
		typ := newTestType(t, &load.Schema{
			Name:   "Config",
			Config: typestate.Config{SetterPrefix: "with"},
			Fields: []*load.Field{requiredField("host")},
		})
		assert.Equal(t, "WithHost", typ.Fields[0].SetterName())
	})
	t.Run("field prefix wins over struct prefix", func(t *testing.T) {
		f := requiredField("host")
		f.SetterPrefix = "set"
		typ := newTestType(t, &load.Schema{
			Name:   "Config",
			Config: typestate.Config{SetterPrefix: "with"},
			Fields: []*load.Field{f},
		})
		assert.Equal(t, "SetHost", typ.Fields[0].SetterName())
	})
	t.Run("custom name is verbatim", func(t *testing.T) {
		f := requiredField("host")
		f.SetterName = "Hostname"
		typ := newTestType(t, &load.Schema{
			Name:   "Config",
			Config: typestate.Config{SetterPrefix: "with"},
			Fields: []*load.Field{f},
		})
		assert.Equal(t, "Hostname", typ.Fields[0].SetterName())
	})
}

func TestFieldStateComponent(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("api_key")},
	})
	f := typ.Fields[0]
	assert.Equal(t, "HasAPIKey", f.StateComponent(true))
	assert.Equal(t, "MissingAPIKey", f.StateComponent(false))
}

func TestFieldAutoConvertInheritance(t *testing.T) {
	explicit := requiredField("host")
	off := false
	explicit.AutoConvert = &off
	inherit := requiredField("port")
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Config: typestate.Config{AutoConvert: true},
		Fields: []*load.Field{explicit, inherit},
	})
	assert.False(t, typ.Fields[0].AutoConvert())
	assert.True(t, typ.Fields[0].AutoConvertSet())
	assert.True(t, typ.Fields[1].AutoConvert())
	assert.False(t, typ.Fields[1].AutoConvertSet())
}

func TestTypeReceiver(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("host")},
	})
	assert.Equal(t, "b", typ.Receiver())

	// An inline converter parameter named "b" shifts the receiver.
	f := &load.Field{
		Name:     "size",
		Required: true,
		Info:     &field.TypeInfo{Type: field.TypeInt},
		Converter: &field.Converter{
			Param: "b",
			Expr:  "len(b)",
			Input: &field.TypeInfo{Type: field.TypeString},
		},
	}
	typ = newTestType(t, &load.Schema{Name: "Config", Fields: []*load.Field{f}})
	assert.Equal(t, "_b", typ.Receiver())
}

func TestTypeEntryPoint(t *testing.T) {
	host := requiredField("host")
	host.EntryPoint = true
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("port"), host},
	})
	ep := typ.EntryPoint()
	require.NotNil(t, ep)
	assert.Equal(t, "host", ep.Name)
	assert.Equal(t, 1, typ.EntryPointBit())
	assert.Equal(t, "ConfigHost", typ.EntryConstructorName())

	typ = newTestType(t, &load.Schema{Name: "Config", Fields: []*load.Field{requiredField("port")}})
	assert.Nil(t, typ.EntryPoint())
	assert.Equal(t, -1, typ.EntryPointBit())
	assert.Empty(t, typ.EntryConstructorName())
}
