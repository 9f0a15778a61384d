// Package cli provides the Cobra command structure for inkwell.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root inkwell command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "A rich-text editing engine for plain-text markup",
		Long: `inkwell is the engine behind a rich-text editor that stores documents
as plain-text markup. It parses markup into a document tree, serializes
the tree back to canonical markup, and maintains the cursor/source
position map that editors need to translate between what the user sees
and what is stored.

The CLI exposes the engine for debugging and batch work: inspecting
parsed documents and their position maps, canonicalizing files, and
importing CommonMark.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
