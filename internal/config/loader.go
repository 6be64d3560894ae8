// Package config loads session tuning from YAML files.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/amalg/bomb-arena/internal/game"
)

// Loader loads session configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load reads a YAML file, overlays it on game.DefaultConfig and validates the result.
// Keys missing from the file keep their default values.
func (l *Loader) Load(name string) (game.Config, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return game.Config{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return game.Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (game.Config, error) {
	cfg := game.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return game.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return Normalize(cfg)
}

// Normalize rounds even board dimensions up to the next odd number, which the
// wall grid needs, and validates the result.
func Normalize(cfg game.Config) (game.Config, error) {
	if cfg.Cols%2 == 0 {
		cfg.Cols++
	}
	if cfg.Rows%2 == 0 {
		cfg.Rows++
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFile loads a config from a path, or returns the defaults when path is empty.
func LoadFile(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}
