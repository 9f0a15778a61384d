package editor

import (
	"reflect"
	"unicode/utf8"

	"github.com/yaklabco/inkwell/pkg/doc"
)

// Toggling works on a flattened view of a paragraph: the wrapper tree is
// lowered into a sequence of leaves (text runs and inline atoms), each
// tagged with the stack of wrapper marks enclosing it, outermost first.
// Adding or removing a mark over a cursor range and regrouping the leaves
// yields the structural behaviors for free: a selection fully inside a
// wrapper unwraps, a partial selection splits the wrapper at the boundary,
// and adjacent equal wrappers merge.

type mark struct {
	kind doc.Kind
	data any
}

func marksEqual(a, b mark) bool {
	return a.kind == b.kind && reflect.DeepEqual(a.data, b.data)
}

type leaf struct {
	text  string          // text leaf when non-empty
	atom  *doc.InlineAtom // atom leaf when non-nil
	marks []mark
}

func (l leaf) width() int {
	if l.atom != nil {
		return 1
	}
	return utf8.RuneCountInString(l.text)
}

func (l leaf) hasMark(kind doc.Kind) bool {
	for _, m := range l.marks {
		if m.kind == kind {
			return true
		}
	}
	return false
}

// applyToggle toggles an inline wrapper kind over the current selection.
// The toggle direction is decided globally: only when every leaf across the
// whole selection already carries the mark does the toggle remove it.
// Toggling never changes visible text, so the selection survives verbatim.
func applyToggle(st *State, kind doc.Kind) *State {
	lo, hi := st.Selection.Ordered()
	if lo == hi {
		return st
	}

	rt := st.Runtime
	remove := rangeFullyMarked(rt, st.Doc.Blocks, lo, hi, kind)
	blocks := toggleInBlocks(rt, st.Doc.Blocks, lo, hi, kind, remove)

	source, _ := rt.Serialize(&doc.Doc{Blocks: blocks})
	sel := st.Selection
	return CreateState(rt, source, &sel)
}

// rangeFullyMarked reports whether every inline leaf intersecting the cursor
// range [lo,hi) carries the mark. An empty intersection is not "fully
// marked"; the toggle then wraps.
func rangeFullyMarked(rt *Runtime, blocks []doc.Block, lo, hi int, kind doc.Kind) bool {
	sawLeaf := false
	marked := true
	visitBlockRange(rt, blocks, lo, hi, func(p *doc.Paragraph, plo, phi int) {
		leaves := splitLeaves(flattenInlines(p.Content, nil), plo, phi)
		off := 0
		for _, lf := range leaves {
			w := lf.width()
			if off < phi && off+w > plo {
				sawLeaf = true
				if !lf.hasMark(kind) {
					marked = false
				}
			}
			off += w
		}
	})
	return sawLeaf && marked
}

// toggleInBlocks rewrites the paragraphs intersecting [lo,hi), leaving every
// other block shared with the input tree.
func toggleInBlocks(rt *Runtime, blocks []doc.Block, lo, hi int, kind doc.Kind, remove bool) []doc.Block {
	out := make([]doc.Block, len(blocks))
	copy(out, blocks)

	cur := 0
	for i, b := range blocks {
		if i > 0 {
			cur++ // block separator unit
		}
		w := rt.blockWidth(b)
		start, end := cur, cur+w
		cur = end
		if hi <= start || lo >= end {
			continue
		}

		plo := clampOffset(lo-start, w)
		phi := clampOffset(hi-start, w)
		switch v := b.(type) {
		case *doc.Paragraph:
			out[i] = &doc.Paragraph{Content: toggleInlines(v.Content, plo, phi, kind, remove)}
		case *doc.BlockWrapper:
			out[i] = &doc.BlockWrapper{
				Kind:   v.Kind,
				Blocks: toggleInBlocks(rt, v.Blocks, plo, phi, kind, remove),
				Data:   v.Data,
			}
		}
	}
	return out
}

// visitBlockRange calls fn for every paragraph intersecting [lo,hi), with
// the range translated into the paragraph's local cursor space.
func visitBlockRange(rt *Runtime, blocks []doc.Block, lo, hi int, fn func(p *doc.Paragraph, plo, phi int)) {
	cur := 0
	for i, b := range blocks {
		if i > 0 {
			cur++
		}
		w := rt.blockWidth(b)
		start, end := cur, cur+w
		cur = end
		if hi <= start || lo >= end {
			continue
		}

		plo := clampOffset(lo-start, w)
		phi := clampOffset(hi-start, w)
		switch v := b.(type) {
		case *doc.Paragraph:
			fn(v, plo, phi)
		case *doc.BlockWrapper:
			visitBlockRange(rt, v.Blocks, plo, phi, fn)
		}
	}
}

func toggleInlines(inlines []doc.Inline, lo, hi int, kind doc.Kind, remove bool) []doc.Inline {
	leaves := splitLeaves(flattenInlines(inlines, nil), lo, hi)

	off := 0
	for i := range leaves {
		w := leaves[i].width()
		inside := off >= lo && off+w <= hi
		off += w
		if !inside {
			continue
		}
		if remove {
			leaves[i].marks = removeMark(leaves[i].marks, kind)
		} else if !leaves[i].hasMark(kind) {
			leaves[i].marks = append(append([]mark(nil), leaves[i].marks...), mark{kind: kind})
		}
	}
	return rebuildInlines(leaves)
}

func removeMark(marks []mark, kind doc.Kind) []mark {
	out := marks[:0:0]
	for _, m := range marks {
		if m.kind != kind {
			out = append(out, m)
		}
	}
	return out
}

// flattenInlines lowers a wrapper tree into mark-tagged leaves.
func flattenInlines(inlines []doc.Inline, marks []mark) []leaf {
	var out []leaf
	for _, in := range inlines {
		switch v := in.(type) {
		case *doc.Text:
			out = append(out, leaf{text: v.Text, marks: marks})
		case *doc.InlineAtom:
			out = append(out, leaf{atom: v, marks: marks})
		case *doc.InlineWrapper:
			inner := append(append([]mark(nil), marks...), mark{kind: v.Kind, data: v.Data})
			out = append(out, flattenInlines(v.Children, inner)...)
		}
	}
	return out
}

// splitLeaves splits text leaves so that the given cursor offsets fall on
// leaf boundaries. Atoms are indivisible and never split.
func splitLeaves(leaves []leaf, offsets ...int) []leaf {
	for _, target := range offsets {
		var out []leaf
		off := 0
		for _, lf := range leaves {
			w := lf.width()
			if lf.text != "" && off < target && target < off+w {
				cut := runeIndex(lf.text, target-off)
				out = append(out,
					leaf{text: lf.text[:cut], marks: lf.marks},
					leaf{text: lf.text[cut:], marks: lf.marks},
				)
			} else {
				out = append(out, lf)
			}
			off += w
		}
		leaves = out
	}
	return leaves
}

// splitInlines divides inline content at the cursor range [lo, hi): the
// content before lo and the content from hi on, each with its wrapper tree
// rebuilt so marks survive the cut. Content strictly inside the range is
// dropped.
func splitInlines(inlines []doc.Inline, lo, hi int) ([]doc.Inline, []doc.Inline) {
	leaves := splitLeaves(flattenInlines(inlines, nil), lo, hi)
	var before, after []leaf
	off := 0
	for _, lf := range leaves {
		w := lf.width()
		if off+w <= lo {
			before = append(before, lf)
		} else if off >= hi {
			after = append(after, lf)
		}
		off += w
	}
	return rebuildInlines(before), rebuildInlines(after)
}

// runeIndex returns the byte offset of the n-th rune in s.
func runeIndex(s string, n int) int {
	i := 0
	for range n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// rebuildInlines regroups leaves back into a wrapper tree: adjacent leaves
// sharing the same outermost mark join under one wrapper, recursively.
func rebuildInlines(leaves []leaf) []doc.Inline {
	var out []doc.Inline
	for i := 0; i < len(leaves); {
		lf := leaves[i]
		if len(lf.marks) == 0 {
			if lf.atom != nil {
				out = append(out, lf.atom)
			} else if lf.text != "" {
				out = append(out, &doc.Text{Text: lf.text})
			}
			i++
			continue
		}

		m := lf.marks[0]
		var inner []leaf
		j := i
		for j < len(leaves) && len(leaves[j].marks) > 0 && marksEqual(leaves[j].marks[0], m) {
			inner = append(inner, leaf{text: leaves[j].text, atom: leaves[j].atom, marks: leaves[j].marks[1:]})
			j++
		}
		out = append(out, &doc.InlineWrapper{Kind: m.kind, Children: rebuildInlines(inner), Data: m.data})
		i = j
	}
	return out
}

// blockWidth returns a block's cursor width by serializing it in isolation;
// only the serializer chain knows how many cursor units an extension's atom
// occupies.
func (rt *Runtime) blockWidth(b doc.Block) int {
	return rt.serializeFragment([]doc.Block{b}, "").CursorLen()
}

// wrapperEndsAt reports whether some inline wrapper's content ends exactly
// at the given cursor boundary. Used by the caret default-affinity policy.
func wrapperEndsAt(rt *Runtime, d *doc.Doc, c int) bool {
	return wrapperEndsInBlocks(rt, d.Blocks, c)
}

func wrapperEndsInBlocks(rt *Runtime, blocks []doc.Block, c int) bool {
	cur := 0
	for i, b := range blocks {
		if i > 0 {
			cur++
		}
		if c < cur {
			return false
		}
		w := rt.blockWidth(b)
		if c <= cur+w {
			local := c - cur
			switch v := b.(type) {
			case *doc.Paragraph:
				off := 0
				return wrapperEndsInInlines(v.Content, local, &off)
			case *doc.BlockWrapper:
				return wrapperEndsInBlocks(rt, v.Blocks, local)
			}
			return false
		}
		cur += w
	}
	return false
}

func wrapperEndsInInlines(inlines []doc.Inline, target int, off *int) bool {
	for _, in := range inlines {
		switch v := in.(type) {
		case *doc.Text:
			*off += utf8.RuneCountInString(v.Text)
		case *doc.InlineAtom:
			*off++
		case *doc.InlineWrapper:
			if wrapperEndsInInlines(v.Children, target, off) {
				return true
			}
			if *off == target {
				return true
			}
		}
	}
	return false
}
