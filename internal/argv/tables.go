package argv

// Recognized flag tables. These are configuration data mirroring Vim's
// option surface, not routing behavior; extend them when the target
// editor grows options worth forwarding.

// ZeroArgFlags are passthrough flags that take no value.
var ZeroArgFlags = map[string]struct{}{
	"--help":       {},
	"--version":    {},
	"--serverlist": {},
	"--literal":    {},
	"--nofork":     {},
	"--noplugin":   {},
	"-A":           {},
	"-b":           {},
	"-C":           {},
	"-D":           {},
	"-E":           {},
	"-f":           {},
	"-F":           {},
	"-h":           {},
	"-H":           {},
	"-l":           {},
	"-L":           {},
	"-m":           {},
	"-M":           {},
	"-n":           {},
	"-N":           {},
	"-v":           {},
	"-V":           {},
	"-x":           {},
	"-X":           {},
}

// OneArgFlags are passthrough flags that consume the following token as
// their value.
var OneArgFlags = map[string]struct{}{
	"--cmd":       {},
	"--role":      {},
	"--socketid":  {},
	"--display":   {},
	"-c":          {},
	"-i":          {},
	"-s":          {},
	"-S":          {},
	"-T":          {},
	"-u":          {},
	"-U":          {},
	"-w":          {},
	"-W":          {},
	"-display":    {},
	"-geometry":   {},
	"-geom":       {},
	"-font":       {},
	"-fn":         {},
	"-foreground": {},
	"-fg":         {},
	"-background": {},
	"-bg":         {},
}

// IsZeroArgFlag reports whether tok is a recognized no-value flag.
func IsZeroArgFlag(tok string) bool {
	_, ok := ZeroArgFlags[tok]
	return ok
}

// IsOneArgFlag reports whether tok is a recognized flag that takes a
// following value.
func IsOneArgFlag(tok string) bool {
	_, ok := OneArgFlags[tok]
	return ok
}
