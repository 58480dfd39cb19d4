// Package launch locates the editor binary and executes a command plan
// against it. It performs no routing decisions of its own.
package launch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/vimrelay/internal/config"
)

// Discovery errors. Both are terminal: the router exits with a
// diagnostic rather than attempting a degraded launch.
var (
	// ErrBinaryNotFound means no candidate directory yielded an editor
	// executable.
	ErrBinaryNotFound = errors.New("no usable editor binary found")

	// ErrBinaryNotExecutable means a candidate exists but lacks execute
	// permission.
	ErrBinaryNotExecutable = errors.New("editor binary is not executable")
)

// Binary is a resolved editor executable.
type Binary struct {
	// Path is the executable path.
	Path string

	// GUI marks a binary resolved from the GUI candidate set. A console
	// binary serving a GUI invocation needs -g at launch.
	GUI bool
}

// Discover resolves the editor executable. An explicit override in the
// configuration wins; otherwise the search directories are probed in
// order for the candidate names, GUI names first when gui is set.
func Discover(cfg config.Config, gui bool) (Binary, error) {
	if cfg.Binary != "" {
		fi, err := os.Stat(cfg.Binary)
		if err != nil {
			return Binary{}, fmt.Errorf("%s: %w", cfg.Binary, ErrBinaryNotFound)
		}
		if !executable(fi) {
			return Binary{}, fmt.Errorf("%s: %w", cfg.Binary, ErrBinaryNotExecutable)
		}
		return Binary{Path: cfg.Binary, GUI: isGUIName(cfg, cfg.Binary)}, nil
	}

	var candidates []candidate
	if gui {
		for _, name := range cfg.GUIBinaries {
			candidates = append(candidates, candidate{name, true})
		}
	}
	for _, name := range cfg.ConsoleBinaries {
		candidates = append(candidates, candidate{name, false})
	}

	foundUnusable := ""
	for _, dir := range cfg.SearchDirs {
		for _, c := range candidates {
			path := filepath.Join(dir, c.name)
			fi, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !executable(fi) {
				if foundUnusable == "" {
					foundUnusable = path
				}
				continue
			}
			return Binary{Path: path, GUI: c.gui}, nil
		}
	}

	if foundUnusable != "" {
		return Binary{}, fmt.Errorf("%s: %w", foundUnusable, ErrBinaryNotExecutable)
	}
	return Binary{}, ErrBinaryNotFound
}

type candidate struct {
	name string
	gui  bool
}

func executable(fi fs.FileInfo) bool {
	return fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}

func isGUIName(cfg config.Config, path string) bool {
	base := filepath.Base(path)
	for _, name := range cfg.GUIBinaries {
		if base == name {
			return true
		}
	}
	return false
}
