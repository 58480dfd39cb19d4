// Package main is the entry point for the vimrelay invocation router.
//
// vimrelay is installed under the usual Vim alias names (vim, gvim,
// mvim, rview, gvimdiff, ...). On each invocation it decides whether to
// hand the arguments to an already-running Vim server or to launch a
// fresh instance, then replaces itself with the editor process.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/vimrelay/internal/config"
	"github.com/dshills/vimrelay/internal/router"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := config.DefaultFS()
	cfg, err := config.LoadWithFS(fs, config.Path(fs, os.Getenv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vimrelay: %v\n", err)
		return 1
	}
	config.ApplyEnv(&cfg, os.Getenv)

	logger := router.NewLogger(router.ParseLogLevel(cfg.LogLevel), os.Stderr).
		WithField("invocation", invocationID())

	workdir, err := os.Getwd()
	if err != nil {
		workdir = string(os.PathSeparator)
	}

	r := router.New(router.Options{
		InvokedName: filepath.Base(os.Args[0]),
		Args:        os.Args[1:],
		Workdir:     workdir,
		Config:      cfg,
		Logger:      logger,
	})

	// On success Run does not return; the editor owns the process from
	// here and its exit status becomes ours.
	if err := r.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "vimrelay: %v\n", err)
		return 1
	}
	return 0
}

// invocationID tags log lines from one invocation so interleaved runs
// can be told apart.
func invocationID() string {
	return uuid.New().String()[:8]
}
