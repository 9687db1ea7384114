// Package main provides the entry point for the fcc-db CLI tool.
package main

import (
	"context"
	"os"

	"github.com/N7DR/fcc-db/cmd/fcc-db/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		// No logger yet; plain stderr is all we have
		app.ExitOnError(err)
	}

	// Cancel on SIGINT/SIGTERM so a half-written merge stops cleanly
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}
}
