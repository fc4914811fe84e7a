// Package main provides the CLI entrypoint for unwrapgen.
//
// unwrapgen turns declarations built from observable wrappers into plain
// declarations:
//   - Reads YAML declaration documents or annotated Go packages
//   - Strips ObservableCell and reference-counting wrappers recursively
//   - Renames containers with the configured renamer
//   - Writes YAML, declaration text or Go output
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"unwrapgen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
