package pretty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/inkwell/pkg/cursormap"
)

const (
	defaultTermWidth = 100
	contextRadius    = 12
)

// FormatBoundaries renders the cursor boundary table for a map: one row per
// cursor offset with its backward and forward source resolutions and a
// snippet of the source around the boundary. termWidth <= 0 means a default.
func (s *Styles) FormatBoundaries(m *cursormap.Map, termWidth int) string {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}

	var b strings.Builder
	b.WriteString(s.TableHeader.Render(pad("CURSOR", 8) + pad("BACK", 6) + pad("FWD", 6) + "CONTEXT"))
	b.WriteString("\n")

	for c := 0; c <= m.CursorLen(); c++ {
		boundary := m.Boundary(c)

		row := s.Offset.Render(pad(fmt.Sprintf("%d", c), 8))
		back := pad(fmt.Sprintf("%d", boundary.SourceBackward), 6)
		fwd := pad(fmt.Sprintf("%d", boundary.SourceForward), 6)
		if boundary.Ambiguous() {
			row += s.Ambiguous.Render(back) + s.Ambiguous.Render(fwd)
		} else {
			row += s.Backward.Render(back) + s.Forward.Render(fwd)
		}

		row += s.Dim.Render(snippet(m.Source(), boundary.SourceBackward, termWidth-20))
		b.WriteString(row)
		b.WriteString("\n")
	}
	return b.String()
}

// snippet shows the source around offset with a caret marking the boundary.
// Wide runes make byte counts useless for alignment, so the clip is measured
// with runewidth.
func snippet(source string, offset, maxWidth int) string {
	// The radius is a byte count and can land mid-rune; widen the clip to
	// the enclosing rune boundaries so the quoted text stays valid UTF-8.
	start := offset - contextRadius
	if start < 0 {
		start = 0
	}
	for start > 0 && !utf8.RuneStart(source[start]) {
		start--
	}
	end := offset + contextRadius
	if end > len(source) {
		end = len(source)
	}
	for end < len(source) && !utf8.RuneStart(source[end]) {
		end++
	}

	text := source[start:offset] + "‸" + source[offset:end]
	text = strings.ReplaceAll(text, "\n", "⏎")
	if maxWidth > 0 {
		text = runewidth.Truncate(text, maxWidth, "…")
	}
	return fmt.Sprintf("%q", text)
}

// pad right-pads cell to width, accounting for wide runes.
func pad(cell string, width int) string {
	gap := width - runewidth.StringWidth(cell)
	if gap < 1 {
		gap = 1
	}
	return cell + strings.Repeat(" ", gap)
}
