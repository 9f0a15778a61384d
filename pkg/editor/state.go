package editor

import (
	"fmt"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/cursormap"
	"github.com/yaklabco/inkwell/pkg/doc"
)

// State is the complete immutable snapshot the rest of the system operates
// on: the canonical source string, the parsed document, the cursor/source
// map derived from serializing that document, and the current selection.
// A new State is created, never patched, on every accepted edit or selection
// update.
type State struct {
	Source    string
	Doc       *doc.Doc
	Map       *cursormap.Map
	Selection Selection
	Runtime   *Runtime
}

// CreateState derives a state from a source string: parse, normalize,
// serialize (which rebuilds the authoritative map), then clamp the given
// selection onto the new cursor space. A nil selection defaults to a
// collapsed caret at 0.
func CreateState(rt *Runtime, source string, sel *Selection) *State {
	parsed := rt.Parse(source)
	normalized := rt.Normalize(parsed)
	out, m := rt.Serialize(normalized)

	st := &State{
		Source:  out,
		Doc:     normalized,
		Map:     m,
		Runtime: rt,
	}
	if sel != nil {
		st.Selection = clampSelection(*sel, m.CursorLen())
	}
	return st
}

// SelectionMeta describes where a selection update came from, for host-side
// bookkeeping and debug logging. The core does not interpret it.
type SelectionMeta struct {
	// Origin names the input path that produced the update (e.g. "pointer",
	// "keyboard").
	Origin string
}

// UpdateSelection returns a new state carrying the given selection, clamped
// to the current cursor space. The document, source, and map are shared with
// the input state; both remain valid.
func UpdateSelection(st *State, sel Selection, meta SelectionMeta) *State {
	st.Runtime.logger.Debug("selection update",
		logging.FieldSelection, fmt.Sprintf("[%d,%d)", sel.Start, sel.End),
		logging.FieldAffinity, sel.Affinity.String(),
		"origin", meta.Origin)

	next := *st
	next.Selection = clampSelection(sel, st.Map.CursorLen())
	return &next
}
