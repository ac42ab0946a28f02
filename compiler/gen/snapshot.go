package gen

import (
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/typestate/compiler/load"
)

// snapshotFile is the name of the encoded schema copy written next to
// the generated code when the snapshot feature is enabled.
const snapshotFile = "typestate_snapshot.bin"

// snapshotVersion is bumped on incompatible changes to the snapshot
// layout. Readers reject snapshots from a different version rather than
// guessing.
const snapshotVersion = 1

// Snapshot is the persisted schema model of one generation pass.
type Snapshot struct {
	Version int            `msgpack:"version"`
	Package string         `msgpack:"package"`
	Schemas []*load.Schema `msgpack:"schemas"`
}

// writeSnapshot encodes the graph's schemas beside the generated code.
func (g *Graph) writeSnapshot() error {
	snap := &Snapshot{
		Version: snapshotVersion,
		Package: g.Package,
	}
	for _, t := range g.Nodes {
		snap.Schemas = append(snap.Schemas, t.schema)
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return NewGenerationError("", snapshotFile, "encode snapshot", err)
	}
	path := filepath.Join(g.Target, snapshotFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewGenerationError("", snapshotFile, "write snapshot", err)
	}
	return nil
}

// ReadSnapshot decodes the snapshot written by a previous pass into the
// given target directory. It returns os.ErrNotExist when no snapshot
// was written there.
func ReadSnapshot(target string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(target, snapshotFile))
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, NewGenerationError("", snapshotFile, "decode snapshot", err)
	}
	if snap.Version != snapshotVersion {
		return nil, NewGenerationError("", snapshotFile, "unsupported snapshot version", nil)
	}
	return &snap, nil
}
