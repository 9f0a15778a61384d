package cursormap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkwell/pkg/cursormap"
)

// boldMap builds the map for "**bold**": a marker, four runes of text, a
// marker. It is the canonical ambiguous-boundary layout.
func boldMap(t *testing.T) *cursormap.Map {
	t.Helper()
	b := cursormap.NewBuilder()
	b.AppendSourceOnly("**")
	b.AppendText("bold")
	b.AppendSourceOnly("**")
	return b.Build().Map()
}

func TestMap_BoldBoundaries(t *testing.T) {
	t.Parallel()

	m := boldMap(t)
	require.Equal(t, 4, m.CursorLen())
	require.Equal(t, 8, m.SourceLen())
	require.Equal(t, "**bold**", m.Source())

	tests := []struct {
		cursor    int
		backward  int
		forward   int
		ambiguous bool
	}{
		{cursor: 0, backward: 0, forward: 2, ambiguous: true},
		{cursor: 1, backward: 3, forward: 3, ambiguous: false},
		{cursor: 2, backward: 4, forward: 4, ambiguous: false},
		{cursor: 3, backward: 5, forward: 5, ambiguous: false},
		{cursor: 4, backward: 6, forward: 8, ambiguous: true},
	}

	for _, tc := range tests {
		b := m.Boundary(tc.cursor)
		assert.Equal(t, tc.backward, b.SourceBackward, "cursor %d backward", tc.cursor)
		assert.Equal(t, tc.forward, b.SourceForward, "cursor %d forward", tc.cursor)
		assert.Equal(t, tc.ambiguous, b.Ambiguous(), "cursor %d ambiguity", tc.cursor)
	}
}

func TestMap_CursorToSource(t *testing.T) {
	t.Parallel()

	m := boldMap(t)

	assert.Equal(t, 0, m.CursorToSource(0, cursormap.Backward))
	assert.Equal(t, 2, m.CursorToSource(0, cursormap.Forward))
	assert.Equal(t, 6, m.CursorToSource(4, cursormap.Backward))
	assert.Equal(t, 8, m.CursorToSource(4, cursormap.Forward))

	// Interior positions resolve identically under both affinities.
	for c := 1; c <= 3; c++ {
		assert.Equal(t,
			m.CursorToSource(c, cursormap.Backward),
			m.CursorToSource(c, cursormap.Forward),
			"cursor %d", c)
	}
}

func TestMap_SourceToCursor(t *testing.T) {
	t.Parallel()

	m := boldMap(t)

	tests := []struct {
		source   int
		cursor   int
		affinity cursormap.Affinity
	}{
		{source: 0, cursor: 0, affinity: cursormap.Backward},
		{source: 1, cursor: 0, affinity: cursormap.Forward},
		{source: 2, cursor: 0, affinity: cursormap.Forward},
		{source: 3, cursor: 1, affinity: cursormap.Forward},
		{source: 5, cursor: 3, affinity: cursormap.Forward},
		{source: 6, cursor: 4, affinity: cursormap.Backward},
		{source: 7, cursor: 4, affinity: cursormap.Forward},
		{source: 8, cursor: 4, affinity: cursormap.Forward},
	}

	for _, tc := range tests {
		c, aff := m.SourceToCursor(tc.source)
		assert.Equal(t, tc.cursor, c, "source %d", tc.source)
		assert.Equal(t, tc.affinity, aff, "source %d", tc.source)
	}
}

func TestMap_RoundTripInterior(t *testing.T) {
	t.Parallel()

	m := boldMap(t)

	// Every cursor offset survives a trip through source space when the
	// affinity it came back with is replayed.
	for c := 0; c <= m.CursorLen(); c++ {
		src := m.CursorToSource(c, cursormap.Backward)
		back, aff := m.SourceToCursor(src)
		assert.Equal(t, c, back, "cursor %d via backward", c)
		assert.Equal(t, src, m.CursorToSource(back, aff), "cursor %d affinity replay", c)
	}
}

func TestMap_AtomSpansAreIndivisible(t *testing.T) {
	t.Parallel()

	// "a" + image atom + "b": the atom occupies one cursor unit over an
	// eleven-byte source span.
	b := cursormap.NewBuilder()
	b.AppendText("a")
	b.AppendCursorAtom("![x](y.png)", 1)
	b.AppendText("b")
	m := b.Build().Map()

	require.Equal(t, 3, m.CursorLen())

	// The boundary before the atom and after it.
	assert.Equal(t, 1, m.CursorToSource(1, cursormap.Backward))
	assert.Equal(t, 1, m.CursorToSource(1, cursormap.Forward))
	assert.Equal(t, 12, m.CursorToSource(2, cursormap.Backward))
	assert.Equal(t, 12, m.CursorToSource(2, cursormap.Forward))

	// Any interior source offset resolves to the atom's start.
	for src := 2; src < 12; src++ {
		c, aff := m.SourceToCursor(src)
		assert.Equal(t, 1, c, "source %d", src)
		assert.Equal(t, cursormap.Forward, aff, "source %d", src)
	}
}

func TestMap_SeparatorAtom(t *testing.T) {
	t.Parallel()

	// "a\nb" with the newline as a one-unit separator atom.
	b := cursormap.NewBuilder()
	b.AppendText("a")
	b.AppendCursorAtom("\n", 1)
	b.AppendText("b")
	m := b.Build().Map()

	require.Equal(t, 3, m.CursorLen())
	for c := 0; c <= 3; c++ {
		assert.False(t, m.Boundary(c).Ambiguous(), "cursor %d", c)
		assert.Equal(t, c, m.CursorToSource(c, cursormap.Backward))
	}
}

func TestMap_MarkerOnlySource(t *testing.T) {
	t.Parallel()

	// A source consisting solely of markers has a single boundary spanning
	// the whole string.
	b := cursormap.NewBuilder()
	b.AppendSourceOnly("****")
	m := b.Build().Map()

	require.Equal(t, 0, m.CursorLen())
	boundary := m.Boundary(0)
	assert.Equal(t, 0, boundary.SourceBackward)
	assert.Equal(t, 4, boundary.SourceForward)
	assert.True(t, boundary.Ambiguous())
}

func TestMap_EmptySource(t *testing.T) {
	t.Parallel()

	m := cursormap.NewBuilder().Build().Map()

	require.Equal(t, 0, m.CursorLen())
	assert.Equal(t, 0, m.CursorToSource(0, cursormap.Backward))
	assert.Equal(t, 0, m.CursorToSource(0, cursormap.Forward))

	c, aff := m.SourceToCursor(0)
	assert.Equal(t, 0, c)
	assert.Equal(t, cursormap.Forward, aff)
}

func TestMap_MultiByteRunes(t *testing.T) {
	t.Parallel()

	// "héllo" is six bytes but five cursor units.
	b := cursormap.NewBuilder()
	b.AppendText("héllo")
	m := b.Build().Map()

	require.Equal(t, 5, m.CursorLen())
	assert.Equal(t, 6, m.SourceLen())

	assert.Equal(t, 1, m.CursorToSource(1, cursormap.Backward))
	assert.Equal(t, 3, m.CursorToSource(2, cursormap.Backward))

	c, _ := m.SourceToCursor(3)
	assert.Equal(t, 2, c)
}

func TestBuilder_AppendSerialized(t *testing.T) {
	t.Parallel()

	inner := cursormap.NewBuilder()
	inner.AppendText("bold")

	outer := cursormap.NewBuilder()
	outer.AppendSourceOnly("**")
	outer.AppendSerialized(inner.Build())
	outer.AppendSourceOnly("**")
	m := outer.Build().Map()

	require.Equal(t, 4, m.CursorLen())
	assert.Equal(t, "**bold**", m.Source())
	assert.True(t, m.Boundary(0).Ambiguous())
	assert.Equal(t, 3, m.CursorToSource(1, cursormap.Backward))
}

func TestBuilder_ZeroWidthAtomDegrades(t *testing.T) {
	t.Parallel()

	b := cursormap.NewBuilder()
	b.AppendCursorAtom("???", 0)
	m := b.Build().Map()

	assert.Equal(t, 0, m.CursorLen())
	assert.Equal(t, "???", m.Source())
}

func TestMap_PanicsOutOfRange(t *testing.T) {
	t.Parallel()

	m := boldMap(t)

	assert.Panics(t, func() { m.Boundary(-1) })
	assert.Panics(t, func() { m.Boundary(5) })
	assert.Panics(t, func() { m.SourceToCursor(9) })
	assert.Panics(t, func() { m.SourceToCursor(-1) })
}

func TestAffinity_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "backward", cursormap.Backward.String())
	assert.Equal(t, "forward", cursormap.Forward.String())
}
