package editor

import (
	"unicode/utf8"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/cursormap"
	"github.com/yaklabco/inkwell/pkg/doc"
)

// ApplyEdit translates a cursor-space command into a source mutation and
// returns the re-derived state. Extensions get first refusal through the
// OnEdit chain; the generic text edit handles whatever no extension claims.
// A command that changes nothing (Backspace at offset 0, an unclaimed
// extension command) returns an equivalent state: callers must not treat a
// no-op as an error.
func ApplyEdit(cmd Command, st *State) *State {
	for _, ext := range st.Runtime.exts {
		if h, ok := ext.(EditHandler); ok {
			if res := h.OnEdit(cmd, st); res != nil {
				return CreateState(st.Runtime, res.Source, &res.Selection)
			}
		}
	}

	switch c := cmd.(type) {
	case Insert:
		return applyInsert(st, c.Text)
	case InsertLineBreak:
		return applyLineBreak(st)
	case DeleteBackward:
		return applyDeleteBackward(st)
	case DeleteForward:
		return applyDeleteForward(st)
	case ToggleInline:
		return applyToggle(st, c.Kind)
	default:
		st.Runtime.logger.Warn("no handler claimed command", logging.FieldCommand, cmd.CommandName())
		return st
	}
}

// applyInsert replaces the selection with literal text. A non-collapsed
// selection resolves its left edge forward and its right edge backward, so
// replacing selected content never consumes the markers beside it.
func applyInsert(st *State, text string) *State {
	lo, hi := st.Selection.Ordered()

	var left, right int
	if lo == hi {
		left = resolveCaret(st, lo)
		right = left
	} else {
		left = st.Map.CursorToSource(lo, cursormap.Forward)
		right = st.Map.CursorToSource(hi, cursormap.Backward)
	}
	return spliceState(st, left, right, text, lo+utf8.RuneCountInString(text))
}

// applyLineBreak splits the block containing the selection into two sibling
// blocks, keeping the wrapper stack on both sides so a break inside
// formatting never strips the formatting. A selection the structural split
// cannot express (spanning sibling blocks, covering a block atom) falls
// back to replacing it with a bare separator.
func applyLineBreak(st *State) *State {
	lo, hi := st.Selection.Ordered()

	blocks, ok := splitBlocks(st.Runtime, st.Doc.Blocks, lo, hi)
	if !ok {
		return applyInsert(st, blockSeparator)
	}

	source, _ := st.Runtime.Serialize(&doc.Doc{Blocks: blocks})
	// Content before lo keeps its cursor width across the split, so the
	// caret lands just past the new separator.
	sel := Caret(lo + 1)
	return CreateState(st.Runtime, source, &sel)
}

// splitBlocks rewrites the block containing the cursor range [lo, hi) as two
// sibling halves split at the range edges, descending into wrappers so a
// break inside a quote stays inside the quote. Returns false when no single
// block contains the whole range.
func splitBlocks(rt *Runtime, blocks []doc.Block, lo, hi int) ([]doc.Block, bool) {
	cur := 0
	for i, b := range blocks {
		if i > 0 {
			cur++ // block separator unit
		}
		w := rt.blockWidth(b)
		start, end := cur, cur+w
		cur = end
		if lo < start || hi > end {
			continue
		}

		var halves []doc.Block
		switch v := b.(type) {
		case *doc.Paragraph:
			before, after := splitInlines(v.Content, lo-start, hi-start)
			halves = []doc.Block{&doc.Paragraph{Content: before}, &doc.Paragraph{Content: after}}
		case *doc.BlockWrapper:
			inner, ok := splitBlocks(rt, v.Blocks, lo-start, hi-start)
			if !ok {
				return nil, false
			}
			halves = []doc.Block{&doc.BlockWrapper{Kind: v.Kind, Blocks: inner, Data: v.Data}}
		case *doc.BlockAtom:
			// Atoms are indivisible: a break at an edge opens an empty
			// line beside the atom, anything else falls back.
			if lo != hi {
				return nil, false
			}
			if lo == start {
				halves = []doc.Block{&doc.Paragraph{}, v}
			} else {
				halves = []doc.Block{v, &doc.Paragraph{}}
			}
		}

		out := make([]doc.Block, 0, len(blocks)+1)
		out = append(out, blocks[:i]...)
		out = append(out, halves...)
		out = append(out, blocks[i+1:]...)
		return out, true
	}
	return nil, false
}

func applyDeleteBackward(st *State) *State {
	lo, hi := st.Selection.Ordered()
	if lo == hi {
		if lo == 0 {
			return st
		}
		lo--
	}
	return deleteRange(st, lo, hi)
}

func applyDeleteForward(st *State) *State {
	lo, hi := st.Selection.Ordered()
	if lo == hi {
		if hi == st.Map.CursorLen() {
			return st
		}
		hi++
	}
	return deleteRange(st, lo, hi)
}

func deleteRange(st *State, lo, hi int) *State {
	left := st.Map.CursorToSource(lo, cursormap.Forward)
	right := st.Map.CursorToSource(hi, cursormap.Backward)
	return spliceState(st, left, right, "", lo)
}

// resolveCaret picks the source offset for a collapsed caret. An explicit
// selection affinity is honored verbatim; the default policy lands outside
// the adjacent marker, so plain typing next to a wrapper edge does not grow
// the wrapper.
func resolveCaret(st *State, c int) int {
	b := st.Map.Boundary(c)
	if !b.Ambiguous() {
		return b.SourceForward
	}
	switch st.Selection.Affinity {
	case AffinityBackward:
		return b.SourceBackward
	case AffinityForward:
		return b.SourceForward
	}
	if wrapperEndsAt(st.Runtime, st.Doc, c) {
		// Past the closing marker of the wrapper that ends here.
		return b.SourceForward
	}
	// Before the opening marker of a wrapper starting here, and the stable
	// choice everywhere else.
	return b.SourceBackward
}

// spliceState replaces source bytes [left, right) with text and re-derives
// the state. curCaret is the caret's cursor offset in the spliced content,
// kept alongside the byte offset for the case where canonicalization
// invalidates byte offsets.
func spliceState(st *State, left, right int, text string, curCaret int) *State {
	source := st.Source[:left] + text + st.Source[right:]
	return deriveState(st, source, left+len(text), curCaret)
}

// deriveState builds the state for a spliced source string. When the splice
// is already canonical its byte offsets are still valid, and the caret
// re-enters through SourceToCursor for an exact affinity. When normalization
// rewrote the source the byte offset is stale, but cursor space only counts
// visible content, which the rewrite preserves: the caret re-enters by
// cursor offset instead, clamped in case the rewrite shrank the document.
func deriveState(st *State, source string, srcCaret, curCaret int) *State {
	next := CreateState(st.Runtime, source, nil)

	if next.Source == source {
		cur, aff := next.Map.SourceToCursor(srcCaret)
		next.Selection = Selection{Start: cur, End: cur, Affinity: mapAffinity(aff)}
		return next
	}

	next.Selection = Caret(clampOffset(curCaret, next.Map.CursorLen()))
	return next
}
