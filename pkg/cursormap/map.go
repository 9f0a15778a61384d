package cursormap

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Affinity disambiguates a cursor position sitting on a boundary where the
// forward and backward source offsets diverge (a boundary adjacent to a
// syntax marker).
type Affinity uint8

const (
	// Backward resolves a boundary to the source offset just after the last
	// cursor-carrying content, i.e. before any adjacent marker.
	Backward Affinity = iota

	// Forward resolves a boundary to the source offset just before the next
	// cursor-carrying content, i.e. after any adjacent marker.
	Forward
)

// String returns "backward" or "forward".
func (a Affinity) String() string {
	if a == Forward {
		return "forward"
	}
	return "backward"
}

// Boundary stores the two source offsets a single cursor offset can resolve
// to. The values differ only when the boundary is adjacent to a source-only
// run; everywhere else they collapse to one offset.
type Boundary struct {
	SourceBackward int
	SourceForward  int
}

// Ambiguous reports whether the two resolutions diverge.
func (b Boundary) Ambiguous() bool {
	return b.SourceBackward != b.SourceForward
}

// Map is the read-only artifact of one serialization pass: the bidirectional,
// affinity-aware translation between cursor offsets and source offsets.
// A Map is built fresh on every serialize and never mutated.
type Map struct {
	source     string
	runs       []run
	boundaries []Boundary
}

// Map finalizes the fragment into a queryable Map.
func (f Fragment) Map() *Map {
	m := &Map{
		source:     f.source,
		runs:       f.runs,
		boundaries: make([]Boundary, f.cursorLen+1),
	}
	m.fillBackward()
	m.fillForward()
	return m
}

// fillBackward assigns SourceBackward for every boundary in one left-to-right
// pass: the offset just after the nearest cursor-carrying content at or
// before the boundary, 0 at the document head.
func (m *Map) fillBackward() {
	last := 0
	for _, r := range m.runs {
		switch r.kind {
		case runSourceOnly:
			// Owns no boundary; the marker is skipped going backward.
		case runText:
			m.boundaries[r.curStart].SourceBackward = last
			src := r.srcStart
			c := r.curStart
			for _, rn := range m.source[r.srcStart:r.srcEnd] {
				src += utf8.RuneLen(rn)
				c++
				m.boundaries[c].SourceBackward = src
			}
			last = r.srcEnd
		case runAtom:
			m.boundaries[r.curStart].SourceBackward = last
			for c := r.curStart + 1; c < r.curEnd; c++ {
				m.boundaries[c].SourceBackward = r.srcStart
			}
			m.boundaries[r.curEnd].SourceBackward = r.srcEnd
			last = r.srcEnd
		}
	}
	m.boundaries[len(m.boundaries)-1].SourceBackward = last
}

// fillForward assigns SourceForward in one right-to-left pass: the offset
// just before the nearest cursor-carrying content at or after the boundary,
// len(source) at the document tail.
func (m *Map) fillForward() {
	next := len(m.source)
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		switch r.kind {
		case runSourceOnly:
			// Owns no boundary; the marker is skipped going forward.
		case runText:
			m.boundaries[r.curEnd].SourceForward = next
			src := r.srcStart
			c := r.curStart
			for _, rn := range m.source[r.srcStart:r.srcEnd] {
				m.boundaries[c].SourceForward = src
				src += utf8.RuneLen(rn)
				c++
			}
			next = r.srcStart
		case runAtom:
			m.boundaries[r.curEnd].SourceForward = next
			for c := r.curStart + 1; c < r.curEnd; c++ {
				m.boundaries[c].SourceForward = r.srcEnd
			}
			m.boundaries[r.curStart].SourceForward = r.srcStart
			next = r.srcStart
		}
	}
	if m.CursorLen() == 0 {
		// No cursor-carrying content anywhere: the single boundary resolves
		// past the whole marker-only source when entering forward.
		m.boundaries[0].SourceForward = next
	}
}

// CursorLen returns the total number of addressable cursor units.
func (m *Map) CursorLen() int {
	return len(m.boundaries) - 1
}

// SourceLen returns the length of the source string in bytes.
func (m *Map) SourceLen() int {
	return len(m.source)
}

// Source returns the source string this map was built over.
func (m *Map) Source() string {
	return m.source
}

// Boundary returns the stored boundary for a cursor offset. Panics when the
// offset is out of range: callers must clamp first.
func (m *Map) Boundary(cursor int) Boundary {
	if cursor < 0 || cursor >= len(m.boundaries) {
		panic(fmt.Sprintf("cursormap: cursor offset %d out of range [0,%d]", cursor, m.CursorLen()))
	}
	return m.boundaries[cursor]
}

// CursorToSource translates a cursor offset into a source offset, resolving
// an ambiguous boundary with the given affinity. Panics when the offset is
// out of range: callers must clamp first.
func (m *Map) CursorToSource(cursor int, affinity Affinity) int {
	b := m.Boundary(cursor)
	if affinity == Forward {
		return b.SourceForward
	}
	return b.SourceBackward
}

// SourceToCursor translates a source offset into the cursor offset whose run
// contains it, plus the affinity reflecting which side of an ambiguous
// boundary the offset falls on. Panics when the offset is out of range.
func (m *Map) SourceToCursor(source int) (int, Affinity) {
	if source < 0 || source > len(m.source) {
		panic(fmt.Sprintf("cursormap: source offset %d out of range [0,%d]", source, len(m.source)))
	}
	if source == len(m.source) {
		return m.CursorLen(), Forward
	}

	idx := sort.Search(len(m.runs), func(i int) bool {
		return m.runs[i].srcEnd > source
	})
	r := m.runs[idx]

	switch r.kind {
	case runText:
		c := r.curStart
		for off := r.srcStart; off < source; {
			_, size := utf8.DecodeRuneInString(m.source[off:])
			off += size
			c++
		}
		return c, Forward
	case runAtom:
		return r.curStart, Forward
	default: // runSourceOnly: inside a marker, resolve to the shared boundary.
		c := r.curStart
		if source == m.boundaries[c].SourceBackward {
			return c, Backward
		}
		return c, Forward
	}
}
