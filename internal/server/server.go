// Package server tracks the Vim servers advertised on the local display
// and resolves which one an invocation should target.
package server

import "strings"

// DefaultName is the server name the Vim family registers when none is
// given explicitly.
const DefaultName = "VIM"

// Directory is the set of currently advertised server names, in
// discovery order. The first entry is the default pick when the caller
// did not name a server.
type Directory struct {
	names []string
}

// NewDirectory wraps a discovered name list. The slice is copied;
// discovery order is preserved.
func NewDirectory(names []string) Directory {
	return Directory{names: append([]string(nil), names...)}
}

// Names returns the advertised names in discovery order.
func (d Directory) Names() []string {
	return append([]string(nil), d.names...)
}

// IsActive reports whether name is currently advertised. The comparison
// is case-sensitive: Vim reports registered names verbatim, so an
// uppercased selection only matches an uppercase registration.
func (d Directory) IsActive(name string) bool {
	for _, n := range d.names {
		if n == name {
			return true
		}
	}
	return false
}

// ResolveTarget picks the server an invocation should address. An
// explicit name wins and is uppercased, matching how Vim normalizes
// --servername on registration. Otherwise the first discovered server
// is used with its case preserved, falling back to DefaultName when
// nothing is running.
func (d Directory) ResolveTarget(explicit string) string {
	if explicit != "" {
		return strings.ToUpper(explicit)
	}
	if len(d.names) > 0 {
		return d.names[0]
	}
	return DefaultName
}
