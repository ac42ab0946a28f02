package gen

import (
	"maps"
	"strings"
)

// Config holds the global generation settings shared by all schemas in
// one pass.
type Config struct {
	// Package is the Go import path of the generated package
	// (e.g. "github.com/org/project/config").
	Package string
	// Target is the output directory.
	Target string
	// Header is an optional comment placed at the top of every
	// generated file, before the generated-code marker.
	Header string
	// Features holds the enabled feature flags.
	Features []Feature
	// Annotations carries frontend-specific metadata through the pass
	// untouched.
	Annotations map[string]any
}

// Option configures code generation.
type Option func(*Config) error

// NewConfig builds a configuration from the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithPackage sets the output package import path.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		c.Features = append(c.Features, features...)
		return nil
	}
}

// WithAnnotations merges the given annotations into the configuration.
func WithAnnotations(annotations map[string]any) Option {
	return func(c *Config) error {
		if c.Annotations == nil {
			c.Annotations = make(map[string]any)
		}
		maps.Copy(c.Annotations, annotations)
		return nil
	}
}

// FeatureEnabled reports if the given feature name was enabled.
func (c *Config) FeatureEnabled(name string) bool {
	for _, f := range c.Features {
		if f.Name == name {
			return true
		}
	}
	return false
}

// PackageName returns the short package name of the generated package.
func (c *Config) PackageName() string {
	if c.Package == "" {
		return ""
	}
	if i := strings.LastIndexByte(c.Package, '/'); i >= 0 {
		return c.Package[i+1:]
	}
	return c.Package
}
