package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes YAML configuration files.
type YAMLLoader struct {
	fs FileSystem
}

// NewYAMLLoader creates a YAML loader over the given file system.
func NewYAMLLoader(fs FileSystem) *YAMLLoader {
	return &YAMLLoader{fs: fs}
}

// LoadFrom decodes the YAML file at path into cfg.
func (l *YAMLLoader) LoadFrom(path string, cfg *Config) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}
