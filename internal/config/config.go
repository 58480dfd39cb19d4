// Package config loads router configuration from TOML or YAML files
// with environment overrides. A missing file is not an error; the
// defaults describe a stock Vim installation.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Config holds every tunable the router reads.
type Config struct {
	// Binary is an explicit editor executable path. When set, binary
	// discovery is skipped entirely.
	Binary string `toml:"binary" yaml:"binary"`

	// GUIBinaries are candidate executable names tried first in GUI
	// mode.
	GUIBinaries []string `toml:"gui_binaries" yaml:"gui_binaries"`

	// ConsoleBinaries are candidate command-line executable names.
	ConsoleBinaries []string `toml:"console_binaries" yaml:"console_binaries"`

	// SearchDirs are probed in order for the candidate names.
	SearchDirs []string `toml:"search_dirs" yaml:"search_dirs"`

	// ListTimeoutMS bounds the serverlist query, in milliseconds.
	ListTimeoutMS int `toml:"list_timeout_ms" yaml:"list_timeout_ms"`

	// HookScript is an optional Lua script consulted before launch.
	HookScript string `toml:"hook_script" yaml:"hook_script"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		GUIBinaries:     []string{"gvim", "mvim"},
		ConsoleBinaries: []string{"vim"},
		SearchDirs: []string{
			"/usr/local/bin",
			"/opt/homebrew/bin",
			"/opt/local/bin",
			"/usr/bin",
			"/Applications/MacVim.app/Contents/bin",
		},
		ListTimeoutMS: 3000,
		LogLevel:      "info",
	}
}

// ListTimeout returns the serverlist query timeout as a duration.
func (c Config) ListTimeout() time.Duration {
	if c.ListTimeoutMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.ListTimeoutMS) * time.Millisecond
}

// Load reads the config file at path over the defaults. A file that
// does not exist leaves the defaults untouched. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	return LoadWithFS(DefaultFS(), path)
}

// LoadWithFS is Load with an injectable file system for tests.
func LoadWithFS(fs FileSystem, path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var loader FileLoader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		loader = NewTOMLLoader(fs)
	case ".yaml", ".yml":
		loader = NewYAMLLoader(fs)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	if err := loader.LoadFrom(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
