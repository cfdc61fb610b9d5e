// Package config loads the YAML configuration of the ttlfmt command.
package config

import (
	"fmt"
	"os"

	"github.com/geoknoesis/rdf-turtle/internal/logging"
	"github.com/geoknoesis/rdf-turtle/rdf"
	"gopkg.in/yaml.v3"
)

// Config is the ttlfmt configuration.
type Config struct {
	// Namespaces are registered on top of the built-in vocabularies, in order.
	Namespaces []Namespace `yaml:"namespaces,omitempty"`
	// Flags is a legacy serializer flag string ("m" for minimal prefixes).
	Flags string `yaml:"flags,omitempty"`
	// Minimal disables prefix invention.
	Minimal bool `yaml:"minimal,omitempty"`
	// Base overrides the document IRI of a single input.
	Base     string `yaml:"base,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	// Jobs bounds parallel parsing and writing; 0 means one per CPU.
	Jobs   int    `yaml:"jobs,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
}

// Namespace binds a prefix label to a namespace IRI.
type Namespace struct {
	Prefix string `yaml:"prefix"`
	IRI    string `yaml:"iri"`
}

// Limits bounds the Turtle reader. Zero values use the reader defaults.
type Limits struct {
	MaxInputBytes int64 `yaml:"max_input_bytes,omitempty"`
	MaxStatements int   `yaml:"max_statements,omitempty"`
	MaxDepth      int   `yaml:"max_depth,omitempty"`
}

// Default returns the configuration used without a file.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads and validates a configuration file.
// The path is provided by the CLI user, so file inclusion is expected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a configuration. Missing keys keep their
// Default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative: %d", c.Jobs)
	}
	if c.Base != "" {
		if err := rdf.ValidateNamespace(c.Base); err != nil {
			return fmt.Errorf("base: %w", err)
		}
	}
	for i, ns := range c.Namespaces {
		if ns.Prefix == "" {
			return fmt.Errorf("namespace %d: prefix is required", i)
		}
		if err := rdf.ValidateNamespace(ns.IRI); err != nil {
			return fmt.Errorf("namespace %q: %w", ns.Prefix, err)
		}
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	return nil
}

// Registry returns the built-in vocabularies extended with the configured
// namespaces. A namespace that conflicts with an existing binding is an
// error.
func (c *Config) Registry() (*rdf.Registry, error) {
	reg := rdf.DefaultRegistry()
	for _, ns := range c.Namespaces {
		if err := reg.Register(ns.Prefix, ns.IRI); err != nil {
			return nil, fmt.Errorf("namespace %q: %w", ns.Prefix, err)
		}
	}
	return reg, nil
}

// SerializeOptions returns the serializer options selected by the
// configuration.
func (c *Config) SerializeOptions() []rdf.Option {
	opts := []rdf.Option{rdf.OptFlags(c.Flags)}
	if c.Minimal {
		opts = append(opts, rdf.OptMinimalPrefixes())
	}
	return opts
}

// ParseOptions returns the reader limits selected by the configuration.
func (c *Config) ParseOptions() []rdf.ParseOption {
	return []rdf.ParseOption{
		rdf.OptMaxInputBytes(c.Limits.MaxInputBytes),
		rdf.OptMaxStatements(c.Limits.MaxStatements),
		rdf.OptMaxDepth(c.Limits.MaxDepth),
	}
}

// ParseLimit returns the effective input size limit in bytes, or 0 when
// the limit is disabled.
func (c *Config) ParseLimit() int64 {
	switch n := c.Limits.MaxInputBytes; {
	case n < 0:
		return 0
	case n == 0:
		return rdf.DefaultMaxInputBytes
	default:
		return n
	}
}
