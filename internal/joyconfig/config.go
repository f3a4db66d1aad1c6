// Package joyconfig implements the optional startup configuration file
// (§4.8 "MODULE: flags & context"): a YAML document, read once before any
// user program runs, that seeds the four runtime control flags and lists
// quotation files to preload into the dictionary. Structured like
// internal/ext/config.go's funxy.yaml loader (struct-with-yaml-tags,
// LoadConfig/FindConfig walking up from a directory) — the same
// `gopkg.in/yaml.v3` dependency, repurposed from Go-binding declarations to
// runtime startup defaults.
package joyconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level joy.yaml document.
type Config struct {
	// Echo/Autoput/Undeferror/Trace seed the matching runtime control flag
	// (§3) before the program's own command-line flags or primitives
	// adjust them. Pointers distinguish "absent" from "explicitly false".
	Echo       *bool `yaml:"echo,omitempty"`
	Autoput    *bool `yaml:"autoput,omitempty"`
	Undeferror *bool `yaml:"undeferror,omitempty"`
	Trace      *bool `yaml:"trace,omitempty"`

	// Preload lists paths to Joy source files whose definitions are loaded
	// into the dictionary before the main program runs, in listed order.
	Preload []string `yaml:"preload,omitempty"`
}

// LoadConfig reads and parses a joy.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses joy.yaml content from bytes. path is used only for
// error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// FindConfig searches for joy.yaml (or joy.yml) starting from dir and
// walking up to parent directories, the way ext.FindConfig locates
// funxy.yaml. Returns "" with a nil error if no config exists
// anywhere above dir — the config file is always optional.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"joy.yaml", "joy.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// BoolOr returns *p if p is non-nil, else fallback — used when applying a
// config-seeded flag on top of the zero default.
func BoolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
