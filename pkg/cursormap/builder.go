// Package cursormap implements the bidirectional mapping between source
// space (byte offsets into the persisted syntax string) and cursor space
// (one unit per visible rune, one per block separator, a fixed width per
// atom). Syntax markers occupy source space only, which makes some cursor
// boundaries ambiguous: the map records both the forward and the backward
// source offset for every boundary so callers can disambiguate with an
// affinity hint.
package cursormap

import "strings"

// runKind classifies a contiguous span of the source string by how it
// participates in cursor space.
type runKind uint8

const (
	// runSourceOnly is syntax that carries no cursor units (markers).
	runSourceOnly runKind = iota

	// runText is visible text: one cursor unit per rune, in lockstep.
	runText

	// runAtom is an indivisible span mapping to a fixed cursor width.
	runAtom
)

// run is a classified span. Runs are contiguous and non-overlapping in both
// coordinate spaces, covering the full source and the full cursor range.
type run struct {
	kind     runKind
	srcStart int // byte offset, inclusive
	srcEnd   int // byte offset, exclusive
	curStart int // cursor offset, inclusive (== curEnd for source-only)
	curEnd   int // cursor offset, exclusive
}

// Builder accumulates source text and its cursor-space classification in a
// single linear pass. Serializers, core and extension alike, emit through a
// Builder; nested results splice in via AppendSerialized.
type Builder struct {
	src    strings.Builder
	runs   []run
	srcLen int
	curLen int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendSourceOnly appends syntax characters that carry no cursor unit.
// Only the source offset advances.
func (b *Builder) AppendSourceOnly(text string) {
	if text == "" {
		return
	}
	b.src.WriteString(text)
	b.pushRun(run{
		kind:     runSourceOnly,
		srcStart: b.srcLen,
		srcEnd:   b.srcLen + len(text),
		curStart: b.curLen,
		curEnd:   b.curLen,
	})
	b.srcLen += len(text)
}

// AppendText appends visible content: every rune advances the source offset
// and the cursor offset in lockstep.
func (b *Builder) AppendText(text string) {
	if text == "" {
		return
	}
	width := 0
	for range text {
		width++
	}
	b.src.WriteString(text)
	b.pushRun(run{
		kind:     runText,
		srcStart: b.srcLen,
		srcEnd:   b.srcLen + len(text),
		curStart: b.curLen,
		curEnd:   b.curLen + width,
	})
	b.srcLen += len(text)
	b.curLen += width
}

// AppendCursorAtom appends a source span that maps to exactly width cursor
// units as one indivisible unit. Used for atoms (conventionally width 1) and
// for the newline separator between blocks. A non-positive width degrades to
// AppendSourceOnly.
func (b *Builder) AppendCursorAtom(sourceText string, width int) {
	if width <= 0 {
		b.AppendSourceOnly(sourceText)
		return
	}
	b.src.WriteString(sourceText)
	b.runs = append(b.runs, run{
		kind:     runAtom,
		srcStart: b.srcLen,
		srcEnd:   b.srcLen + len(sourceText),
		curStart: b.curLen,
		curEnd:   b.curLen + width,
	})
	b.srcLen += len(sourceText)
	b.curLen += width
}

// AppendSerialized splices a previously built sub-result into this builder,
// re-basing its source and cursor offsets.
func (b *Builder) AppendSerialized(f Fragment) {
	if f.source == "" && f.cursorLen == 0 {
		return
	}
	b.src.WriteString(f.source)
	for _, r := range f.runs {
		b.pushRun(run{
			kind:     r.kind,
			srcStart: r.srcStart + b.srcLen,
			srcEnd:   r.srcEnd + b.srcLen,
			curStart: r.curStart + b.curLen,
			curEnd:   r.curEnd + b.curLen,
		})
	}
	b.srcLen += len(f.source)
	b.curLen += f.cursorLen
}

// pushRun appends a run, merging it into the previous run when both are the
// same mergeable kind. Atoms never merge: their spans stay indivisible.
func (b *Builder) pushRun(r run) {
	if n := len(b.runs); n > 0 && r.kind != runAtom {
		prev := &b.runs[n-1]
		if prev.kind == r.kind && prev.srcEnd == r.srcStart {
			prev.srcEnd = r.srcEnd
			prev.curEnd = r.curEnd
			return
		}
	}
	b.runs = append(b.runs, r)
}

// Build finalizes the builder into an immutable Fragment. The builder must
// not be used afterwards.
func (b *Builder) Build() Fragment {
	return Fragment{
		source:    b.src.String(),
		runs:      b.runs,
		cursorLen: b.curLen,
	}
}

// Fragment is the immutable result of one builder pass: a source string plus
// its run classification. Fragments compose via Builder.AppendSerialized and
// finalize into a queryable Map.
type Fragment struct {
	source    string
	runs      []run
	cursorLen int
}

// Source returns the accumulated source string.
func (f Fragment) Source() string { return f.source }

// CursorLen returns the total number of cursor units in the fragment.
func (f Fragment) CursorLen() int { return f.cursorLen }
