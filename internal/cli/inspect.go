package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/internal/ui/pretty"
	"github.com/yaklabco/inkwell/pkg/editor"
)

type inspectFlags struct {
	boundaries bool
	canonical  bool
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Parse a document and show its tree and position map",
		Long: `Parse a document and print its tree. With --boundaries, also print
the cursor boundary table: for every cursor offset, the source offsets it
resolves to under backward and forward affinity.

Reads from stdin when no file is given or the file is "-".

Examples:
  inkwell inspect note.txt
  inkwell inspect --boundaries note.txt
  echo '**bold**' | inkwell inspect --boundaries`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.boundaries, "boundaries", false, "print the cursor boundary table")
	cmd.Flags().BoolVar(&flags.canonical, "canonical", false, "print the canonical source")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, flags *inspectFlags) error {
	st, err := newSetup(cmd)
	if err != nil {
		return err
	}

	source, err := readInput(args)
	if err != nil {
		return err
	}

	state := editor.CreateState(st.rt, source, nil)
	logging.Default().Debug("inspect",
		logging.FieldSourceLen, len(state.Source),
		logging.FieldCursorLen, state.Map.CursorLen(),
		logging.FieldBlocks, len(state.Doc.Blocks),
	)

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout))
	out := cmd.OutOrStdout()

	fmt.Fprint(out, styles.FormatTree(state.Doc))

	if flags.canonical {
		fmt.Fprintf(out, "\n%s\n%s\n", styles.Bold.Render("Canonical source:"), state.Source)
	}

	if flags.boundaries {
		width := terminalWidth()
		fmt.Fprint(out, "\n", styles.FormatBoundaries(state.Map, width))
	}
	return nil
}

// readInput reads the single optional file argument, treating "-" and no
// argument as stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}
