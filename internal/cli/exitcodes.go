package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// Exit codes for inkwell.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNotCanonical indicates fmt --check found files that would change.
	ExitNotCanonical = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// UsageError marks invalid command-line usage (bad flags, wrong argument
// count) so ExitCode can tell it apart from runtime failures.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError marks a configuration load or validation failure.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by command execution to a process exit
// code.
func ExitCode(err error) int {
	var usageErr *UsageError
	var configErr *ConfigError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotCanonical):
		return ExitNotCanonical
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &configErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// usageArgs wraps a cobra positional-args validator so its failures carry
// the invalid-usage exit code.
func usageArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}
