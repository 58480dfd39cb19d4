// Package argv classifies a raw Vim argument vector for remote routing.
//
// The classifier partitions arguments into forwardable flags, file
// operands and a server-name selection, or bails out entirely when the
// caller is already driving a remote session with Vim's own remote,
// split or tab flags. It recognizes a fixed subset of Vim's option
// surface (see tables.go); unknown flags are dropped rather than
// forwarded, since they may not be safe to replay against a different
// editor build.
package argv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingValue indicates a flag that requires a value appeared as the
// final token. Classification rejects the whole vector rather than
// silently truncating.
var ErrMissingValue = errors.New("flag requires a value")

// Classified holds the routed form of an argument vector.
type Classified struct {
	// ServerName is the value of --servername, if supplied. Empty means
	// the target is chosen from the discovered server list.
	ServerName string

	// Flags are the recognized passthrough flags (and their values) in
	// original order, unescaped.
	Flags []string

	// Files are the file operands in original order, unescaped.
	Files []string
}

// Result is the outcome of classification: either a Classified vector,
// or the untouched original vector when the caller is managing its own
// remote session.
type Result struct {
	// Managed is the classified form. Nil when the vector is unmanaged.
	Managed *Classified

	// Unmanaged carries the original argument vector verbatim when a
	// remote, split or tab flag was seen. The router replays it as-is.
	Unmanaged []string
}

// UserManaged reports whether classification bailed out to the original
// vector.
func (r Result) UserManaged() bool {
	return r.Managed == nil
}

// Classify scans the argument vector left to right in a single pass.
// The input slice is not modified. A recognized one-argument flag with
// no following value returns an error wrapping ErrMissingValue.
func Classify(raw []string) (Result, error) {
	c := &Classified{}

	for i := 0; i < len(raw); {
		tok := raw[i]
		switch {
		case tok == "--servername":
			if i+1 >= len(raw) {
				return Result{}, fmt.Errorf("--servername: %w", ErrMissingValue)
			}
			c.ServerName = raw[i+1]
			i += 2

		case strings.HasPrefix(tok, "--servername="):
			c.ServerName = strings.TrimPrefix(tok, "--servername=")
			i++

		case userManaged(tok):
			// The caller is orchestrating remote windows itself; all
			// classification so far is discarded and the original
			// vector is replayed verbatim.
			return Result{Unmanaged: raw}, nil

		case IsZeroArgFlag(tok):
			c.Flags = append(c.Flags, tok)
			i++

		case IsOneArgFlag(tok):
			if i+1 >= len(raw) {
				return Result{}, fmt.Errorf("%s: %w", tok, ErrMissingValue)
			}
			c.Flags = append(c.Flags, tok, raw[i+1])
			i += 2

		case strings.HasPrefix(tok, "-"):
			// Unrecognized flag, dropped. Likely version-specific noise
			// that is not safe to forward to a remote server.
			i++

		default:
			c.Files = append(c.Files, tok)
			i++
		}
	}

	return Result{Managed: c}, nil
}

// userManaged reports whether the token is one of Vim's own remote,
// page, split or vertical-split flags.
func userManaged(tok string) bool {
	return strings.HasPrefix(tok, "--remote") ||
		strings.HasPrefix(tok, "-p") ||
		strings.HasPrefix(tok, "-o") ||
		strings.HasPrefix(tok, "-O")
}
