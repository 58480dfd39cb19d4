package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader decodes TOML configuration files.
type TOMLLoader struct {
	fs FileSystem
}

// NewTOMLLoader creates a TOML loader over the given file system.
func NewTOMLLoader(fs FileSystem) *TOMLLoader {
	return &TOMLLoader{fs: fs}
}

// LoadFrom decodes the TOML file at path into cfg.
func (l *TOMLLoader) LoadFrom(path string, cfg *Config) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}
