package invoke

import (
	"reflect"
	"testing"
)

func TestResolveGUIPrefixes(t *testing.T) {
	tests := []struct {
		name string
		gui  bool
	}{
		{"gvim", true},
		{"mvim", true},
		{"rgvim", true},
		{"rmvim", true},
		{"vim", false},
		{"rvim", false},
		{"view", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name).GUI; got != tt.gui {
			t.Errorf("Resolve(%q).GUI = %v, want %v", tt.name, got, tt.gui)
		}
	}
}

func TestResolveRestrictedPrefix(t *testing.T) {
	tests := []struct {
		name       string
		restricted bool
	}{
		{"rvim", true},
		{"rview", true},
		{"rgvim", true},
		{"rmvim", true},
		{"vim", false},
		{"gvim", false},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name).Restricted; got != tt.restricted {
			t.Errorf("Resolve(%q).Restricted = %v, want %v", tt.name, got, tt.restricted)
		}
	}
}

func TestResolveModeSuffixes(t *testing.T) {
	tests := []struct {
		name string
		want Mode
	}{
		{"vimdiff", Mode{Diff: true}},
		{"gvimdiff", Mode{GUI: true, Diff: true}},
		{"view", Mode{View: true}},
		{"gview", Mode{GUI: true, View: true}},
		{"rgview", Mode{GUI: true, Restricted: true, View: true}},
		{"ex", Mode{Ex: true}},
		{"gex", Mode{GUI: true, Ex: true}},
		{"vim", Mode{}},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// Names ending in a mode suffix must not fall through to the trailing
// open-with letter: "view" is View, not Vsplit.
func TestResolveModeSuffixSuppressesOpenWith(t *testing.T) {
	for _, name := range []string{"view", "gview", "vimdiff", "ex"} {
		if got := Resolve(name).OpenWith; got != OpenEdit {
			t.Errorf("Resolve(%q).OpenWith = %v, want OpenEdit", name, got)
		}
	}
}

func TestResolveOpenWithSuffixes(t *testing.T) {
	tests := []struct {
		name string
		want OpenWith
	}{
		{"vims", OpenSplit},
		{"vimt", OpenTabedit},
		{"vimv", OpenVsplit},
		{"gvims", OpenSplit},
		{"vim", OpenEdit},
		{"gvim", OpenEdit},
	}

	for _, tt := range tests {
		if got := Resolve(tt.name).OpenWith; got != tt.want {
			t.Errorf("Resolve(%q).OpenWith = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOpenWithString(t *testing.T) {
	tests := []struct {
		mode OpenWith
		want string
	}{
		{OpenEdit, "edit"},
		{OpenSplit, "split"},
		{OpenTabedit, "tabedit"},
		{OpenVsplit, "vsplit"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("OpenWith(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestLaunchFlags(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		console bool
		want    []string
	}{
		{"plain", Mode{}, true, nil},
		{"gui console", Mode{GUI: true}, true, []string{"-g"}},
		{"gui binary", Mode{GUI: true}, false, nil},
		{"restricted", Mode{Restricted: true}, true, []string{"-Z"}},
		{"diff", Mode{Diff: true}, true, []string{"-dO"}},
		{"view", Mode{View: true}, true, []string{"-R"}},
		{"ex", Mode{Ex: true}, true, []string{"-e"}},
		{
			"restricted gui diff",
			Mode{GUI: true, Restricted: true, Diff: true},
			true,
			[]string{"-g", "-Z", "-dO"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.LaunchFlags(tt.console); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LaunchFlags(%v) = %v, want %v", tt.console, got, tt.want)
			}
		})
	}
}
