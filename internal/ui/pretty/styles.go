// Package pretty provides Lipgloss-based styled output for the CLI: the
// document tree view and the cursor boundary table.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components
	NodeKind lipgloss.Style
	NodeText lipgloss.Style
	NodeData lipgloss.Style
	TreeRune lipgloss.Style

	// Boundary table components
	TableHeader lipgloss.Style
	Offset      lipgloss.Style
	Backward    lipgloss.Style
	Forward     lipgloss.Style
	Ambiguous   lipgloss.Style

	// Misc
	Success lipgloss.Style
	Failure lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles creates a Styles set for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return &Styles{
		NodeKind: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		NodeText: lipgloss.NewStyle(),
		NodeData: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TreeRune: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Offset:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Backward:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Forward:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Ambiguous:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		NodeKind:    plain,
		NodeText:    plain,
		NodeData:    plain,
		TreeRune:    plain,
		TableHeader: plain,
		Offset:      plain,
		Backward:    plain,
		Forward:     plain,
		Ambiguous:   plain,
		Success:     plain,
		Failure:     plain,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines whether to color output for the given mode and
// writer. Modes are "auto" (default), "always", and "never". Auto enables
// color only on a TTY with NO_COLOR unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
