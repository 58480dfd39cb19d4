package server

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Lister yields the currently advertised server names.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// ExecLister queries the editor binary itself with --serverlist. This is
// the router's single read of the externally-owned server registry.
type ExecLister struct {
	// Binary is the resolved editor executable path.
	Binary string

	// Timeout bounds the query. Zero means DefaultListTimeout.
	Timeout time.Duration
}

// DefaultListTimeout bounds the serverlist query when no timeout is
// configured.
const DefaultListTimeout = 3 * time.Second

// List runs `<binary> --serverlist` and parses one name per line.
// A failing or silent query yields an empty directory, not an error:
// an editor build without clientserver support exits non-zero here, and
// the router should fall back to a local launch rather than refuse.
func (l ExecLister) List(ctx context.Context) ([]string, error) {
	timeout := l.Timeout
	if timeout == 0 {
		timeout = DefaultListTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, l.Binary, "--serverlist")
	out, err := cmd.Output()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("serverlist query timed out after %s", timeout)
	}
	if err != nil {
		return nil, nil
	}

	return ParseList(string(out)), nil
}

// ParseList splits serverlist output into names, one per line, dropping
// blanks.
func ParseList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names
}
