// Package project locates and loads the optional cexpand.toml manifest that
// pins per-project expansion defaults.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config mirrors the [expand] section of cexpand.toml. Zero values mean "not
// configured"; command-line flags always win over manifest values.
type Config struct {
	Expand ExpandConfig `toml:"expand"`

	// Path is where the manifest was found, for error messages. Not part of
	// the TOML schema.
	Path string `toml:"-"`
}

type ExpandConfig struct {
	// Defines are NAME or NAME=VALUE predefinitions, same as -D.
	Defines []string `toml:"defines"`
	// IncludeDirs extend the include search path, same as -I. Relative
	// entries are resolved against the manifest's directory.
	IncludeDirs []string `toml:"include_dirs"`
	// OutputSuffix replaces the default ".expanded.c" suffix.
	OutputSuffix string `toml:"output_suffix"`
}

// FindConfig walks up from startDir to locate cexpand.toml.
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cexpand.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and decodes a manifest. Include directories are rebased onto
// the manifest's directory so discovery from a subdirectory still works.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	cfg.Path = path

	base := filepath.Dir(path)
	for i, dir := range cfg.Expand.IncludeDirs {
		if !filepath.IsAbs(dir) {
			cfg.Expand.IncludeDirs[i] = filepath.Join(base, dir)
		}
	}
	return &cfg, nil
}

// Discover finds and loads the manifest governing startDir. A missing
// manifest is not an error; the returned config is nil.
func Discover(startDir string) (*Config, error) {
	path, ok, err := FindConfig(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return Load(path)
}
