package config

import (
	"io/fs"
	"os"
)

// FileLoader reads configuration from a file into cfg.
type FileLoader interface {
	// LoadFrom decodes the file at path into cfg. A missing file is not
	// an error and leaves cfg unchanged.
	LoadFrom(path string, cfg *Config) error
}

// FileSystem abstracts file access so loaders can be tested against an
// in-memory tree.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}
