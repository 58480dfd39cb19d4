// Package invoke derives editor launch modes from the name the router
// was invoked as. Installing the router under symlink aliases (vim, gvim,
// rview, gvimdiff, ...) selects GUI, restricted, diff, view and ex modes
// without any flags, matching the Vim family's own name conventions.
package invoke

import "strings"

// OpenWith selects the window-placement verb used when opening a single
// file in an already-running server.
type OpenWith int

const (
	// OpenEdit opens the file in the current window.
	OpenEdit OpenWith = iota
	// OpenSplit opens the file in a horizontal split.
	OpenSplit
	// OpenTabedit opens the file in a new tab.
	OpenTabedit
	// OpenVsplit opens the file in a vertical split.
	OpenVsplit
)

// String returns the Vim command verb for the placement mode.
func (o OpenWith) String() string {
	switch o {
	case OpenSplit:
		return "split"
	case OpenTabedit:
		return "tabedit"
	case OpenVsplit:
		return "vsplit"
	default:
		return "edit"
	}
}

// Mode captures everything the invoked name implies about how the editor
// should be launched. It is derived once per invocation and never mutated.
type Mode struct {
	// GUI selects the graphical binary (or -g on the console one).
	GUI bool
	// Restricted disables shell access (-Z).
	Restricted bool
	// Diff starts in diff-compare mode (-dO).
	Diff bool
	// View starts read-only (-R).
	View bool
	// Ex starts in line-editor mode (-e).
	Ex bool
	// OpenWith is the placement verb for single-file remote opens.
	OpenWith OpenWith
}

// Resolve derives a Mode from the base name the program was invoked as.
// Unmatched names yield the zero Mode. The match is case-sensitive and
// has no failure path.
//
// Mode suffixes (vimdiff, view, ex) are matched before the single-letter
// open-with suffix so that names like "gview" never read their trailing
// letter as a placement verb.
func Resolve(name string) Mode {
	var m Mode

	switch {
	case strings.HasPrefix(name, "rm"), strings.HasPrefix(name, "rg"):
		m.GUI = true
		m.Restricted = true
	case strings.HasPrefix(name, "m"), strings.HasPrefix(name, "g"):
		m.GUI = true
	case strings.HasPrefix(name, "r"):
		m.Restricted = true
	}

	switch {
	case strings.HasSuffix(name, "vimdiff"):
		m.Diff = true
	case strings.HasSuffix(name, "view"):
		m.View = true
	case strings.HasSuffix(name, "ex"):
		m.Ex = true
	default:
		switch {
		case strings.HasSuffix(name, "s"):
			m.OpenWith = OpenSplit
		case strings.HasSuffix(name, "t"):
			m.OpenWith = OpenTabedit
		case strings.HasSuffix(name, "v"):
			m.OpenWith = OpenVsplit
		}
	}

	return m
}

// LaunchFlags returns the passthrough flags the mode implies, in the
// order Vim conventionally receives them. The GUI flag is included only
// when consoleBinary is true; a GUI binary does not need -g.
func (m Mode) LaunchFlags(consoleBinary bool) []string {
	var flags []string
	if m.GUI && consoleBinary {
		flags = append(flags, "-g")
	}
	if m.Restricted {
		flags = append(flags, "-Z")
	}
	if m.Diff {
		flags = append(flags, "-dO")
	}
	if m.View {
		flags = append(flags, "-R")
	}
	if m.Ex {
		flags = append(flags, "-e")
	}
	return flags
}
