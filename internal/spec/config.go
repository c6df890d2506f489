package spec

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the registry configuration file: a mapping from type name to the
// override object its Specification is built from.
type Config struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// Types maps resource type names to their overrides.
	Types map[string]Override `yaml:"types"`
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	if cfg.Types == nil {
		cfg.Types = map[string]Override{}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// TypeNames returns the configured type names, sorted.
func (c *Config) TypeNames() []string {
	return slices.Sorted(maps.Keys(c.Types))
}

// Compile builds a Specification for every configured type.
func (c *Config) Compile() (map[string]*Specification, error) {
	result := make(map[string]*Specification, len(c.Types))

	for _, name := range c.TypeNames() {
		s, err := New(name, c.Types[name])
		if err != nil {
			return nil, err
		}

		result[name] = s
	}

	return result, nil
}
