// Package config provides layered configuration for Pigment: built-in
// defaults overridden by the user config file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pigmentlab/pigment/internal/colour"
)

// Config holds user-tunable settings.
type Config struct {
	// Vocabulary is the default colour-naming vocabulary.
	Vocabulary string `yaml:"vocabulary"`

	// DatasetDir is the directory holding the imported artwork dataset.
	DatasetDir string `yaml:"dataset_dir"`

	// Colours is the default palette size for extraction.
	Colours int `yaml:"colours"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Vocabulary: colour.DefaultVocabulary,
		Colours:    8,
	}
}

// LoadFromFile reads a config file. A missing file is returned as the
// underlying os error so callers can distinguish it from a parse error.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is derived from the user home directory
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Vocabulary != "" {
		c.Vocabulary = other.Vocabulary
	}
	if other.DatasetDir != "" {
		c.DatasetDir = other.DatasetDir
	}
	if other.Colours != 0 {
		c.Colours = other.Colours
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if !colour.KnownVocabulary(c.Vocabulary) {
		return fmt.Errorf("config: unknown vocabulary %q", c.Vocabulary)
	}
	if c.Colours < 1 || c.Colours > 256 {
		return fmt.Errorf("config: colours must be within 1-256, got %d", c.Colours)
	}
	return nil
}
