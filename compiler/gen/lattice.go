package gen

import (
	"math/bits"
	"strings"
)

// StateID is a bitset over the required fields of a type, in declaration
// order: bit i set means the i-th required field has been supplied.
// Optional fields never participate in state.
type StateID uint64

// Has reports if the given required-field bit is set.
func (s StateID) Has(bit int) bool { return bit >= 0 && s&(1<<bit) != 0 }

// With returns the state with the given required-field bit set.
func (s StateID) With(bit int) StateID { return s | 1<<bit }

// Count returns the number of supplied required fields.
func (s StateID) Count() int { return bits.OnesCount64(uint64(s)) }

// State is one node of the lattice: a concrete builder type holding all
// optional fields plus the required fields set in it.
type State struct {
	// ID is the bitset identity of the state.
	ID StateID
	// Name is the canonical type name of the state, built from the
	// builder base name followed by a Has/Missing marker per required
	// field in declaration order.
	Name string
}

// Edge is one transition of the lattice. Required-field edges advance
// From to To by setting the field's bit; optional-field edges are
// self-loops.
type Edge struct {
	From, To *State
	Field    *Field
}

// SelfLoop reports if the edge does not change the state.
func (e *Edge) SelfLoop() bool { return e.From == e.To }

// Lattice is the full state space of one type: 2^n states over its n
// required fields, the transition edges between them, and the initial
// and terminal states. It is derived once per generation pass and
// discarded after emission.
type Lattice struct {
	typ      *Type
	required []*Field
	// states is the flat arena indexed by StateID. Entries are nil for
	// states made unreachable by an entry-point field.
	states []*State
	// States holds the reachable states in ascending StateID order.
	States []*State
	// Edges holds every transition, enumerated per state in ascending
	// StateID order and per field in declaration order.
	Edges []*Edge
	// Initial is the construction entry state: all-unset, or with the
	// entry-point field's bit pre-set.
	Initial *State
	// Terminal is the unique all-set state hosting the completion
	// method. With no required fields, Initial and Terminal are the
	// same single state.
	Terminal *State
}

// newLattice enumerates the state space of the validated type.
func newLattice(t *Type) *Lattice {
	req := t.RequiredFields()
	epBit := t.EntryPointBit()
	size := 1 << len(req)
	l := &Lattice{
		typ:      t,
		required: req,
		states:   make([]*State, size),
	}
	for id := StateID(0); id < StateID(size); id++ {
		// States without the entry-point bit cannot be reached: the
		// entry constructor already sets it. They keep their ID slot
		// so indexing stays position-stable.
		if epBit >= 0 && !id.Has(epBit) {
			continue
		}
		s := &State{ID: id, Name: l.stateName(id)}
		l.states[id] = s
		l.States = append(l.States, s)
	}
	initial := StateID(0)
	if epBit >= 0 {
		initial = initial.With(epBit)
	}
	l.Initial = l.states[initial]
	l.Terminal = l.states[size-1]
	for _, s := range l.States {
		for _, f := range t.Fields {
			switch {
			case f.Required && !s.ID.Has(f.bit):
				l.Edges = append(l.Edges, &Edge{From: s, To: l.states[s.ID.With(f.bit)], Field: f})
			case !f.Required && !f.SkipSetter():
				l.Edges = append(l.Edges, &Edge{From: s, To: s, Field: f})
			}
		}
	}
	return l
}

// State returns the state with the given ID, or nil when the ID is out
// of range or unreachable.
func (l *Lattice) State(id StateID) *State {
	if int(id) >= len(l.states) {
		return nil
	}
	return l.states[id]
}

// From returns the edges leaving the given state, in field declaration
// order.
func (l *Lattice) From(s *State) []*Edge {
	var edges []*Edge
	for _, e := range l.Edges {
		if e.From == s {
			edges = append(edges, e)
		}
	}
	return edges
}

// stateName builds the canonical state type name. Each required field
// contributes a Has or Missing marker in declaration order, so names are
// stable regardless of traversal order. With no required fields the name
// is the builder base name itself.
func (l *Lattice) stateName(id StateID) string {
	if len(l.required) == 0 {
		return l.typ.BuilderName()
	}
	parts := make([]string, 0, len(l.required)+1)
	parts = append(parts, l.typ.BuilderName())
	for _, f := range l.required {
		parts = append(parts, f.StateComponent(id.Has(f.bit)))
	}
	return strings.Join(parts, "_")
}
