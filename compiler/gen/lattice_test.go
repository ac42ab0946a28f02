package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/typestate/compiler/load"
)

func TestStateID(t *testing.T) {
	var id StateID
	assert.False(t, id.Has(0))
	assert.Equal(t, 0, id.Count())

	id = id.With(0).With(2)
	assert.True(t, id.Has(0))
	assert.False(t, id.Has(1))
	assert.True(t, id.Has(2))
	assert.Equal(t, 2, id.Count())

	// Optional fields carry bit -1 and never read as set.
	assert.False(t, id.Has(-1))
}

func TestLatticeTwoRequired(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			requiredField("port"),
		},
	})
	l := newLattice(typ)

	require.Len(t, l.States, 4)
	assert.Equal(t, "ConfigBuilder_MissingHost_MissingPort", l.States[0].Name)
	assert.Equal(t, "ConfigBuilder_HasHost_MissingPort", l.States[1].Name)
	assert.Equal(t, "ConfigBuilder_MissingHost_HasPort", l.States[2].Name)
	assert.Equal(t, "ConfigBuilder_HasHost_HasPort", l.States[3].Name)
	assert.Equal(t, l.States[0], l.Initial)
	assert.Equal(t, l.States[3], l.Terminal)

	// Two required-field edges out of every non-terminal state, in
	// declaration order. No optional fields, so no self-loops.
	require.Len(t, l.Edges, 4)
	assert.Equal(t, "host", l.Edges[0].Field.Name)
	assert.Equal(t, l.States[0], l.Edges[0].From)
	assert.Equal(t, l.States[1], l.Edges[0].To)
	assert.Equal(t, "port", l.Edges[1].Field.Name)
	assert.Equal(t, l.States[2], l.Edges[1].To)
	for _, e := range l.Edges {
		assert.False(t, e.SelfLoop())
	}
}

func TestLatticeOrderIndependence(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			requiredField("port"),
		},
	})
	l := newLattice(typ)

	// host-then-port and port-then-host converge on the same state.
	viaHost := l.Initial.ID.With(0).With(1)
	viaPort := l.Initial.ID.With(1).With(0)
	assert.Equal(t, viaHost, viaPort)
	assert.Equal(t, l.Terminal, l.State(viaHost))
}

func TestLatticeOptionalSelfLoops(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name: "Config",
		Fields: []*load.Field{
			requiredField("host"),
			stringField("comment"),
		},
	})
	l := newLattice(typ)

	require.Len(t, l.States, 2)
	assert.Equal(t, "ConfigBuilder_MissingHost", l.States[0].Name)
	assert.Equal(t, "ConfigBuilder_HasHost", l.States[1].Name)

	// One self-loop per state for the optional field.
	var loops int
	for _, e := range l.Edges {
		if e.SelfLoop() {
			loops++
			assert.Equal(t, "comment", e.Field.Name)
		}
	}
	assert.Equal(t, 2, loops)
}

func TestLatticeZeroRequired(t *testing.T) {
	f := stringField("retries")
	f.Default = "3"
	typ := newTestType(t, &load.Schema{Name: "Client", Fields: []*load.Field{f}})
	l := newLattice(typ)

	require.Len(t, l.States, 1)
	assert.Equal(t, l.Initial, l.Terminal)
	assert.Equal(t, "ClientBuilder", l.Initial.Name)
	// The lone optional field still gets its self-loop setter.
	require.Len(t, l.Edges, 1)
	assert.True(t, l.Edges[0].SelfLoop())
}

func TestLatticeSkippedSetterHasNoEdge(t *testing.T) {
	f := stringField("secret")
	f.SkipSetter = true
	f.Default = `"hidden"`
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("host"), f},
	})
	l := newLattice(typ)

	for _, e := range l.Edges {
		assert.NotEqual(t, "secret", e.Field.Name)
	}
}

func TestLatticeEntryPoint(t *testing.T) {
	host := requiredField("host")
	host.EntryPoint = true
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{host, requiredField("port")},
	})
	l := newLattice(typ)

	// States without the host bit are unreachable: the entry
	// constructor sets it before any state exists.
	require.Len(t, l.States, 2)
	assert.Equal(t, "ConfigBuilder_HasHost_MissingPort", l.Initial.Name)
	assert.Equal(t, "ConfigBuilder_HasHost_HasPort", l.Terminal.Name)
	assert.Nil(t, l.State(0))
	assert.Nil(t, l.State(StateID(0).With(1)))

	// The remaining edge sets port.
	require.Len(t, l.Edges, 1)
	assert.Equal(t, "port", l.Edges[0].Field.Name)
}

func TestLatticeStateLookup(t *testing.T) {
	typ := newTestType(t, &load.Schema{
		Name:   "Config",
		Fields: []*load.Field{requiredField("host")},
	})
	l := newLattice(typ)
	assert.NotNil(t, l.State(0))
	assert.NotNil(t, l.State(1))
	assert.Nil(t, l.State(2))

	from := l.From(l.Initial)
	require.Len(t, from, 1)
	assert.Equal(t, "host", from[0].Field.Name)
}
