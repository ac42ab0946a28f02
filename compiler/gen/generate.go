package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"github.com/syssam/typestate/compiler/load"
)

// generateWorkers bounds the number of files rendered concurrently.
const generateWorkers = 4

// Generate runs a full pass over the given schemas: model construction,
// validation, lattice enumeration, emission and file writing. Options
// configure the output package, target directory and feature flags.
//
// Validation conflicts abort the pass before any file is written, so a
// target directory is never left with a partial, conflicting build.
func Generate(schemas []*load.Schema, opts ...Option) error {
	c, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	if c.Target == "" {
		return NewConfigError("Target", nil, "target directory is required")
	}
	if c.Package == "" {
		return NewConfigError("Package", nil, "package path is required")
	}
	g, err := NewGraph(c, schemas...)
	if err != nil {
		return err
	}
	return g.Gen()
}

// Gen validates the graph and writes one builder file per node into the
// target directory, rendering files in parallel.
func (g *Graph) Gen() error {
	if err := g.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(g.Target, 0o755); err != nil {
		return NewGenerationError("", g.Target, "create target directory", err)
	}
	var eg errgroup.Group
	eg.SetLimit(generateWorkers)
	for _, t := range g.Nodes {
		t := t
		eg.Go(func() error {
			return g.genType(t)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if g.FeatureEnabled(FeatureSnapshot.Name) {
		if err := g.writeSnapshot(); err != nil {
			return err
		}
	}
	return nil
}

// genType renders one node into its builder file.
func (g *Graph) genType(t *Type) error {
	f, err := Emit(t)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError(t.Name, t.FileName(), "render", err)
	}
	path := filepath.Join(g.Target, t.FileName())
	// Raw default and converter expressions may reference packages the
	// emitter never saw. The goimports pass resolves them and normalizes
	// the import block.
	src, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError(t.Name, t.FileName(), "format source", err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return NewGenerationError(t.Name, t.FileName(), "write file", err)
	}
	return nil
}

// Lattice returns the builder state space of the named schema without
// emitting code. Frontends use it to report state counts and reachable
// transitions.
func (g *Graph) Lattice(name string) (*Lattice, error) {
	t := g.Type(name)
	if t == nil {
		return nil, fmt.Errorf("gen: unknown schema %q", name)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return newLattice(t), nil
}
