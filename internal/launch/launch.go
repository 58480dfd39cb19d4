package launch

import (
	"syscall"

	"github.com/dshills/vimrelay/internal/argv"
	"github.com/dshills/vimrelay/internal/invoke"
	"github.com/dshills/vimrelay/internal/plan"
)

// Argv assembles the final argument vector for the editor, argv[0]
// included. Order: mode launch flags, --servername for the resolved
// target, the filtered passthrough flags, then the plan payload last.
// The assembly is deterministic and performs no further decisions.
func Argv(bin Binary, mode invoke.Mode, p plan.Plan, flags []string) []string {
	args := []string{bin.Path}
	args = append(args, mode.LaunchFlags(!bin.GUI)...)

	switch p.Kind {
	case plan.KindLocal:
		args = append(args, p.Raw...)

	case plan.KindSend:
		args = append(args, "--servername", p.Target)
		args = append(args, flags...)
		args = append(args, "--remote-send", p.SendKeys)

	case plan.KindOpen:
		args = append(args, "--servername", p.Target)
		args = append(args, flags...)
		if len(p.Files) > 0 {
			args = append(args, p.OpenFlag())
			args = append(args, p.Files...)
		}
	}

	return args
}

// CommandString renders the argument vector as a shell command line for
// logging. The exec path never goes through a shell.
func CommandString(args []string) string {
	return argv.QuoteJoin(args)
}

// Exec replaces the current process image with the editor. On success
// it does not return; the editor's exit status becomes the router's.
func Exec(args []string, env []string) error {
	return syscall.Exec(args[0], args, env)
}
