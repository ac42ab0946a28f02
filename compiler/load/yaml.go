package load

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a stream of YAML schema documents. Each document in
// the stream describes one schema.
func DecodeYAML(r io.Reader) ([]*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var schemas []*Schema
	for {
		s := &Schema{}
		if err := dec.Decode(s); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("load: decode schema document: %w", err)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("load: schema document %d: missing name", len(schemas)+1)
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// FromFile loads schema documents from a single YAML file.
func FromFile(path string) ([]*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open %s: %w", path, err)
	}
	defer f.Close()
	schemas, err := DecodeYAML(f)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	return schemas, nil
}

// FromDir loads schema documents from every .yaml/.yml file in dir,
// in lexical file order so the result is stable across runs.
func FromDir(dir string) ([]*Schema, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load: walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	var schemas []*Schema
	for _, p := range paths {
		s, err := FromFile(p)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s...)
	}
	return schemas, nil
}
