package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Loader assembles the effective configuration from defaults and the
// user config file.
type Loader struct {
	logger hclog.Logger
}

// NewLoader creates a config loader.
func NewLoader(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{logger: logger}
}

// DefaultPath returns the user config file location,
// $XDG_CONFIG_HOME/pigment/config.yaml or ~/.config/pigment/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pigment", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pigment", "config.yaml"), nil
}

// Load returns defaults overlaid with the config file at path. An empty
// path means the default location; a missing file is not an error.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			l.logger.Debug("no config path available, using defaults", "error", err)
			return cfg, nil
		}
	}

	fileCfg, err := LoadFromFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			l.logger.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	l.logger.Debug("loaded config file", "path", path)
	cfg.Merge(fileCfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
