// Package config loads the optional pigame configuration file.
//
// The file lives at ~/.config/pigame/config.yaml (XDG_CONFIG_HOME is
// honored) and only holds display preferences and practice defaults.
// A missing file is not an error: every field has a default, and CLI
// flags always override the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file looked up inside the pigame config directory.
const configFileName = "config.yaml"

// DefaultPracticeLives is the number of wrong keystrokes a practice
// session tolerates before it ends.
const DefaultPracticeLives = 3

// Config holds all pigame configuration.
type Config struct {
	// Colorblind switches mismatch marking from red to underline by
	// default. The -c flag forces it on for a single run.
	Colorblind bool `yaml:"colorblind"`

	// Verbose enables verbose output by default, as if -v were given.
	Verbose bool `yaml:"verbose"`

	// Practice holds practice-mode defaults.
	Practice PracticeConfig `yaml:"practice"`
}

// PracticeConfig configures the interactive practice mode.
type PracticeConfig struct {
	// Lives is the number of mistakes allowed per session. Values < 1
	// fall back to DefaultPracticeLives.
	Lives int `yaml:"lives"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Practice: PracticeConfig{Lives: DefaultPracticeLives},
	}
}

// Dir returns the pigame configuration directory, creating nothing.
// Resolution order: $XDG_CONFIG_HOME/pigame, then ~/.config/pigame.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pigame"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pigame"), nil
}

// Load reads the config file from the standard location. A missing file
// yields Default() with no error; a malformed file is an error.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(filepath.Join(dir, configFileName))
}

// LoadFrom reads and parses the config file at an explicit path.
// Used directly by tests; Load wires in the standard location.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Practice.Lives < 1 {
		cfg.Practice.Lives = DefaultPracticeLives
	}
	return cfg, nil
}
