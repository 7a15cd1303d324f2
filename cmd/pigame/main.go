// Package main is the entry point for the pigame CLI.
//
// The binary evaluates a player's memorized version of π against a table
// of verified digits. All functionality lives in the internal/cli package,
// which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process and default to the hardcoded fallback values
// in development builds.
package main

import (
	"github.com/docdyhr/pigame/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "1.6.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
