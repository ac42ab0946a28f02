package gen

import (
	"errors"

	"github.com/syssam/typestate"
	"github.com/syssam/typestate/compiler/load"
)

// Graph holds the validated generation model of one pass: every loaded
// schema converted to its Type, in the order the schemas were loaded.
type Graph struct {
	*Config
	// Nodes holds the types of the graph.
	Nodes []*Type
}

// NewGraph creates a new graph from the given schemas. Shape errors
// (nil config, no schemas) fail fast; semantic conflicts are reported
// later, per type, by the generation pass.
func NewGraph(c *Config, schemas ...*load.Schema) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "nil configuration")
	}
	if len(schemas) == 0 {
		return nil, typestate.ErrNoSchemas
	}
	g := &Graph{Config: c, Nodes: make([]*Type, 0, len(schemas))}
	for _, s := range schemas {
		t, err := NewType(c, s)
		if err != nil {
			return nil, err
		}
		g.Nodes = append(g.Nodes, t)
	}
	return g, nil
}

// Type returns the node with the given schema name, or nil.
func (g *Graph) Type(name string) *Type {
	for _, t := range g.Nodes {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Validate runs the semantic rules over every node and returns all
// conflicts found, batched across schemas.
func (g *Graph) Validate() error {
	var all typestate.Conflicts
	for _, t := range g.Nodes {
		if err := t.Validate(); err != nil {
			var conflicts typestate.Conflicts
			if !errors.As(err, &conflicts) {
				return err
			}
			all = append(all, conflicts...)
		}
	}
	if len(all) > 0 {
		return all
	}
	return nil
}
