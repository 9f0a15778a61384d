package editor

import "github.com/yaklabco/inkwell/pkg/cursormap"

// Affinity is the selection-level directional hint. Unlike the map-level
// affinity it has an unset default: a host that knows which side of a
// boundary the caret means supplies Backward or Forward, and the edit engine
// resolves Default with the land-outside-the-marker policy.
type Affinity uint8

const (
	// AffinityDefault lets the edit engine pick the side that keeps an
	// insertion outside an adjacent marker.
	AffinityDefault Affinity = iota

	// AffinityBackward pins the caret to the backward source resolution.
	AffinityBackward

	// AffinityForward pins the caret to the forward source resolution.
	AffinityForward
)

// String returns "default", "backward", or "forward".
func (a Affinity) String() string {
	switch a {
	case AffinityBackward:
		return "backward"
	case AffinityForward:
		return "forward"
	default:
		return "default"
	}
}

// mapAffinity converts a map-level affinity into an explicit selection
// affinity.
func mapAffinity(a cursormap.Affinity) Affinity {
	if a == cursormap.Forward {
		return AffinityForward
	}
	return AffinityBackward
}

// Selection is a cursor-space range. Start is the anchor and End the focus,
// so Start > End is legitimate and encodes direction. Affinity matters only
// for a collapsed selection sitting on an ambiguous boundary.
type Selection struct {
	Start    int
	End      int
	Affinity Affinity
}

// Collapsed reports whether the selection is a bare caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Ordered returns the selection's endpoints as (low, high).
func (s Selection) Ordered() (int, int) {
	if s.Start > s.End {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// Caret creates a collapsed selection at the given cursor offset.
func Caret(offset int) Selection {
	return Selection{Start: offset, End: offset}
}

// clampSelection forces a selection into the addressable cursor range.
func clampSelection(s Selection, cursorLen int) Selection {
	s.Start = clampOffset(s.Start, cursorLen)
	s.End = clampOffset(s.End, cursorLen)
	return s
}

func clampOffset(off, cursorLen int) int {
	if off < 0 {
		return 0
	}
	if off > cursorLen {
		return cursorLen
	}
	return off
}
