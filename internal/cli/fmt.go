package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/editor"
	"github.com/yaklabco/inkwell/pkg/fsutil"
)

// ErrNotCanonical signals fmt --check found files that would change. It maps
// to an exit code in main rather than an error message.
var ErrNotCanonical = errors.New("files are not canonical")

type fmtFlags struct {
	write bool
	check bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Canonicalize document sources",
		Long: `Rewrite document sources in canonical form: the result of parsing,
normalizing, and serializing. Canonical form is stable, so running fmt
twice never changes a file twice.

Without -w the canonical source is printed to stdout. With --check no
output is written; the exit code is 1 if any file would change.

Examples:
  inkwell fmt note.txt            # print canonical source
  inkwell fmt -w note.txt         # rewrite in place
  inkwell fmt --check docs/*.txt  # CI gate`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero if any file is not canonical")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	st, err := newSetup(cmd)
	if err != nil {
		return err
	}
	logger := logging.Default()
	out := cmd.OutOrStdout()

	changed := 0
	for _, path := range args {
		content, mode, err := fsutil.ReadFile(path)
		if err != nil {
			return err
		}

		state := editor.CreateState(st.rt, string(content), nil)
		canonical := state.Source

		switch {
		case flags.check:
			if canonical != string(content) {
				changed++
				fmt.Fprintln(out, path)
			}

		case flags.write:
			if canonical == string(content) {
				continue
			}
			if st.cfg.Backups.Enabled {
				if _, err := fsutil.CreateBackup(path); err != nil {
					return err
				}
			}
			written, err := fsutil.WriteAtomicIfChanged(path, []byte(canonical), mode)
			if err != nil {
				return err
			}
			if written {
				logger.Info("rewrote file", logging.FieldPath, path)
			}

		default:
			fmt.Fprint(out, canonical)
		}
	}

	if flags.check && changed > 0 {
		return ErrNotCanonical
	}
	return nil
}
