// Package router wires the routing stages together: invocation mode,
// argument classification, server discovery, plan construction and the
// final handoff to the editor. One Router serves one invocation.
package router

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/dshills/vimrelay/internal/argv"
	"github.com/dshills/vimrelay/internal/config"
	"github.com/dshills/vimrelay/internal/hook"
	"github.com/dshills/vimrelay/internal/invoke"
	"github.com/dshills/vimrelay/internal/launch"
	"github.com/dshills/vimrelay/internal/plan"
	"github.com/dshills/vimrelay/internal/server"
)

// Options configures a Router. InvokedName, Args and Workdir are the
// process-wide inputs, passed explicitly instead of read from globals.
type Options struct {
	// InvokedName is the base name the program was invoked as.
	InvokedName string

	// Args is the raw argument vector, program name excluded.
	Args []string

	// Workdir anchors relative file paths in remote-send payloads.
	Workdir string

	// Config is the loaded router configuration.
	Config config.Config

	// Logger receives routing decisions. Nil means NullLogger.
	Logger *Logger

	// Lister overrides the serverlist query. Nil uses an ExecLister
	// against the discovered binary.
	Lister server.Lister

	// Execer overrides the final process handoff. Nil uses launch.Exec.
	Execer func(args, env []string) error
}

// Router routes one invocation to a running Vim server or a fresh
// launch.
type Router struct {
	opts Options
	log  *Logger
}

// New creates a Router for one invocation.
func New(opts Options) *Router {
	log := opts.Logger
	if log == nil {
		log = NullLogger
	}
	return &Router{opts: opts, log: log}
}

// Run executes the full routing sequence. On success it does not
// return: the process image is replaced by the editor. Every returned
// error is terminal.
func (r *Router) Run(ctx context.Context) error {
	mode := invoke.Resolve(r.opts.InvokedName)
	r.log.Debug("invoked as %q: gui=%v restricted=%v diff=%v view=%v ex=%v open=%s",
		r.opts.InvokedName, mode.GUI, mode.Restricted, mode.Diff, mode.View, mode.Ex, mode.OpenWith)

	res, err := argv.Classify(r.opts.Args)
	if err != nil {
		return NewOperationError("classify", "", err)
	}

	bin, err := launch.Discover(r.opts.Config, mode.GUI)
	if err != nil {
		return NewOperationError("discover", "", err)
	}
	r.log.Debug("editor binary: %s (gui=%v)", bin.Path, bin.GUI)

	var dir server.Directory
	if !res.UserManaged() {
		// The single registry read of an invocation. A failed query is
		// treated as an empty directory so the fresh-launch path still
		// works against editors without clientserver support.
		names, err := r.list(ctx, bin)
		if err != nil {
			r.log.Warn("serverlist query failed: %v", err)
		}
		dir = server.NewDirectory(names)
		r.log.Debug("active servers: %v", dir.Names())
	}

	p := plan.Build(res, mode, dir, r.opts.Workdir)
	p = r.applyHook(p, res)
	r.log.Debug("plan: %s target=%q", p.Kind, p.Target)

	var flags []string
	if !res.UserManaged() && p.Kind != plan.KindLocal {
		flags = res.Managed.Flags
	}

	args := launch.Argv(bin, mode, p, flags)
	r.log.Debug("exec: %s", launch.CommandString(args))

	if !bin.GUI && !term.IsTerminal(int(os.Stdout.Fd())) {
		r.log.Warn("standard output is not a terminal")
	}

	execer := r.opts.Execer
	if execer == nil {
		execer = launch.Exec
	}
	if err := execer(args, os.Environ()); err != nil {
		return NewOperationError("exec", bin.Path, err)
	}
	return nil
}

func (r *Router) list(ctx context.Context, bin launch.Binary) ([]string, error) {
	if r.opts.Lister != nil {
		return r.opts.Lister.List(ctx)
	}
	lister := server.ExecLister{Binary: bin.Path, Timeout: r.opts.Config.ListTimeout()}
	return lister.List(ctx)
}

// applyHook consults the optional Lua hook. Hook failures are logged
// and ignored; a hook must not be able to break routing.
func (r *Router) applyHook(p plan.Plan, res argv.Result) plan.Plan {
	script := r.opts.Config.HookScript
	if script == "" {
		return p
	}

	o, err := hook.Run(script, p)
	if err != nil {
		r.log.Warn("%v", err)
		return p
	}
	if o.IsZero() {
		return p
	}

	if o.ForceLocal && p.Kind != plan.KindLocal {
		raw := append(append([]string(nil), res.Managed.Flags...), res.Managed.Files...)
		r.log.Debug("hook forced local launch")
		return plan.Plan{Kind: plan.KindLocal, Raw: raw}
	}
	if o.Server != "" && p.Kind != plan.KindLocal {
		r.log.Debug("hook retargeted %q -> %q", p.Target, o.Server)
		p.Target = o.Server
	}
	return p
}
