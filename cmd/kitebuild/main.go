// Package main provides the entry point for the kitebuild CLI.
package main

import (
	"context"
	"os"

	"github.com/kitecorp/kitebuild/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "" //nolint:gochecknoglobals // Set by -ldflags
	commit  = "" //nolint:gochecknoglobals // Set by -ldflags
	date    = "" //nolint:gochecknoglobals // Set by -ldflags
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitError)
	}
}
