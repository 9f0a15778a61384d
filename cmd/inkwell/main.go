// Package main is the entry point for the inkwell CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/inkwell/internal/cli"
	"github.com/yaklabco/inkwell/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	code := cli.ExitCode(err)
	if err != nil && !errors.Is(err, cli.ErrNotCanonical) {
		// ErrNotCanonical is an exit-code signal, not a failure.
		logging.Default().Error("command failed", logging.FieldError, err)
	}
	return code
}
