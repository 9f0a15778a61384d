package doc

import "reflect"

// Equal reports whether two documents are structurally identical, including
// extension payloads (compared with reflect.DeepEqual, since Data is opaque
// to the core).
func Equal(a, b *Doc) bool {
	if a == nil || b == nil {
		return a == b
	}
	return blocksEqual(a.Blocks, b.Blocks)
}

func blocksEqual(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !BlockEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// BlockEqual reports whether two blocks are structurally identical.
func BlockEqual(a, b Block) bool {
	switch av := a.(type) {
	case *Paragraph:
		bv, ok := b.(*Paragraph)
		return ok && inlinesEqual(av.Content, bv.Content)
	case *BlockWrapper:
		bv, ok := b.(*BlockWrapper)
		return ok && av.Kind == bv.Kind &&
			reflect.DeepEqual(av.Data, bv.Data) &&
			blocksEqual(av.Blocks, bv.Blocks)
	case *BlockAtom:
		bv, ok := b.(*BlockAtom)
		return ok && av.Kind == bv.Kind && reflect.DeepEqual(av.Data, bv.Data)
	}
	return false
}

func inlinesEqual(a, b []Inline) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !InlineEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// InlineEqual reports whether two inlines are structurally identical.
func InlineEqual(a, b Inline) bool {
	switch av := a.(type) {
	case *Text:
		bv, ok := b.(*Text)
		return ok && av.Text == bv.Text
	case *InlineWrapper:
		bv, ok := b.(*InlineWrapper)
		return ok && av.Kind == bv.Kind &&
			reflect.DeepEqual(av.Data, bv.Data) &&
			inlinesEqual(av.Children, bv.Children)
	case *InlineAtom:
		bv, ok := b.(*InlineAtom)
		return ok && av.Kind == bv.Kind && reflect.DeepEqual(av.Data, bv.Data)
	}
	return false
}
