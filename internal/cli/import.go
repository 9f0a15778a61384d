package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/importer"
)

func newImportCommand() *cobra.Command {
	var noDetect bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Convert CommonMark into canonical document source",
		Long: `Parse CommonMark (plus GFM strikethrough) and print the equivalent
document in canonical source form. Constructs the document model cannot
represent are flattened to text or dropped with a warning.

Fenced code blocks without an info string get a guessed language tag
unless --no-detect is set.

Reads from stdin when no file is given or the file is "-".`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, noDetect)
		},
	}

	cmd.Flags().BoolVar(&noDetect, "no-detect", false, "do not guess languages for untagged code blocks")

	return cmd
}

func runImport(cmd *cobra.Command, args []string, noDetect bool) error {
	st, err := newSetup(cmd)
	if err != nil {
		return err
	}

	markdown, err := readInput(args)
	if err != nil {
		return err
	}

	opts := []importer.Option{importer.WithLogger(logging.Default())}
	if noDetect || !st.cfg.Import.DetectLanguage {
		opts = append(opts, importer.WithoutLanguageDetection())
	}

	imported := importer.New(opts...).Import(markdown)
	normalized := st.rt.Normalize(imported)
	source, _ := st.rt.Serialize(normalized)

	fmt.Fprintln(cmd.OutOrStdout(), source)
	return nil
}
