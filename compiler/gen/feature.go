package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// FeatureSnapshot stores a snapshot of the loaded schemas beside the
	// generated code, so a later run can detect schema drift without
	// reloading the definitions.
	FeatureSnapshot = Feature{
		Name:        "snapshot",
		Stage:       Experimental,
		Default:     false,
		Description: "Snapshot stores an encoded copy of the schema model next to the generated code",
		cleanup: func(c *Config) error {
			return os.RemoveAll(filepath.Join(c.Target, snapshotFile))
		},
	}

	// AllFeatures holds all feature flags.
	AllFeatures = []Feature{
		FeatureSnapshot,
	}
)

// FeatureStage describes the stage of a feature flag.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are in alpha state.
	Alpha

	// Beta features are in beta state.
	Beta

	// Stable features are stable.
	Stable
)

// A Feature of the code generation.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	cleanup func(*Config) error
}

// ParseFeatures returns the features in the given comma-separated list.
func ParseFeatures(s string) ([]Feature, error) {
	if s == "" {
		return nil, nil
	}
	var features []Feature
Names:
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		for _, f := range AllFeatures {
			if f.Name == name {
				features = append(features, f)
				continue Names
			}
		}
		return nil, fmt.Errorf("gen: unknown feature flag %q", name)
	}
	return features, nil
}
