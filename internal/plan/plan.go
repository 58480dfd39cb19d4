// Package plan turns a classified invocation into the single command
// plan the launcher executes: attach to a running server, open against
// a server to be created, or launch locally.
package plan

import (
	"github.com/dshills/vimrelay/internal/argv"
	"github.com/dshills/vimrelay/internal/invoke"
	"github.com/dshills/vimrelay/internal/server"
)

// Kind discriminates the plan variants.
type Kind int

const (
	// KindLocal launches the editor directly, replaying the caller's
	// original arguments.
	KindLocal Kind = iota
	// KindSend sends a key sequence to a running server.
	KindSend
	// KindOpen opens files via the silent remote-open channel, creating
	// the server first if it is not running.
	KindOpen
)

// String returns a short name for the plan kind.
func (k Kind) String() string {
	switch k {
	case KindSend:
		return "remote-send"
	case KindOpen:
		return "remote-open"
	default:
		return "local"
	}
}

// Plan is the single artifact handed to the launcher. Exactly one plan
// is produced per invocation.
type Plan struct {
	// Kind selects the variant; the fields below are populated per kind.
	Kind Kind

	// Target is the resolved server name. Empty only for KindLocal.
	Target string

	// SendKeys is the payload for KindSend.
	SendKeys string

	// Files are the operands for KindOpen, in the caller's order. Empty
	// for the create-only variant.
	Files []string

	// Tab selects the tab-silent open spelling for KindOpen.
	Tab bool

	// Create marks a KindOpen against a server that is not yet running.
	Create bool

	// Raw is the caller's verbatim argument vector for KindLocal.
	Raw []string
}

// OpenFlag returns the remote-open flag spelling for a KindOpen plan.
func (p Plan) OpenFlag() string {
	if p.Tab {
		return "--remote-tab-silent"
	}
	return "--remote-silent"
}

// Build computes the plan for one invocation. workdir anchors relative
// file paths for the single-file send payload; it is passed explicitly
// rather than read from the process.
func Build(res argv.Result, mode invoke.Mode, dir server.Directory, workdir string) Plan {
	if res.UserManaged() {
		// The caller is driving its own remote session; get out of the
		// way entirely.
		return Plan{Kind: KindLocal, Raw: res.Unmanaged}
	}

	c := res.Managed
	target := dir.ResolveTarget(c.ServerName)
	tab := mode.OpenWith == invoke.OpenTabedit

	if !dir.IsActive(target) {
		return Plan{
			Kind:   KindOpen,
			Target: target,
			Files:  c.Files,
			Tab:    tab,
			Create: true,
		}
	}

	switch len(c.Files) {
	case 0:
		return Plan{
			Kind:     KindSend,
			Target:   target,
			SendKeys: NewSendKeys().Foreground().String(),
		}
	case 1:
		// The bulk remote-open channel cannot place a file in a split
		// or tab, so a lone file goes through send-keys with the
		// resolved open verb instead.
		keys := NewSendKeys().
			Foreground().
			Command(mode.OpenWith.String(), AbsPath(workdir, c.Files[0])).
			String()
		return Plan{Kind: KindSend, Target: target, SendKeys: keys}
	default:
		return Plan{
			Kind:   KindOpen,
			Target: target,
			Files:  c.Files,
			Tab:    tab,
		}
	}
}
