package extensions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/inkwell/pkg/cursormap"
	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// ListData is the opaque payload of a list wrapper.
type ListData struct {
	Ordered bool

	// Start is the number of the first item of an ordered list.
	Start int
}

// List implements flat bullet (`- `) and ordered (`1. `) lists. A list is a
// block wrapper of list-item block wrappers, each item holding one
// paragraph. Ordered item numbers are owned by the serializer: whatever
// numbers the source carried, serialization renumbers sequentially from the
// list's start, so inserting or deleting an item cannot leave stale numbers.
//
// List also claims the line-break command when the caret sits inside an
// item: a break splits the item in two, and a break on an empty item
// dissolves it, exiting the list.
type List struct{}

// NewList creates the list extension.
func NewList() *List { return &List{} }

// Name implements editor.Extension.
func (*List) Name() string { return "list" }

// ParseBlock claims a maximal run of item lines of the same orderedness.
func (*List) ParseBlock(source string, pos int, ctx *editor.ParseContext) *editor.BlockParseResult {
	marker, ok := parseItemMarker(source[pos:])
	if !ok {
		return nil
	}
	data := ListData{Ordered: marker.ordered, Start: marker.number}

	var items []doc.Block
	cur := pos
	for cur < len(source) {
		m, ok := parseItemMarker(source[cur:])
		if !ok || m.ordered != marker.ordered {
			break
		}
		line := source[cur+len(m.text):]
		lineLen := len(m.text) + len(line)
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			lineLen = len(m.text) + nl + 1
		}
		items = append(items, &doc.BlockWrapper{
			Kind:   KindListItem,
			Blocks: []doc.Block{&doc.Paragraph{Content: ctx.ParseInlines(line)}},
		})
		cur += lineLen
	}

	return &editor.BlockParseResult{
		Block: &doc.BlockWrapper{Kind: KindList, Blocks: items, Data: data},
		Next:  cur,
	}
}

// itemMarker is a recognized item prefix at a line start.
type itemMarker struct {
	text    string // the marker source, e.g. "- " or "12. "
	ordered bool
	number  int
}

// parseItemMarker matches a bullet or ordered item marker at the start of s.
func parseItemMarker(s string) (itemMarker, bool) {
	if strings.HasPrefix(s, "- ") {
		return itemMarker{text: "- ", ordered: false, number: 1}, true
	}
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 || !strings.HasPrefix(s[digits:], ". ") {
		return itemMarker{}, false
	}
	n, err := strconv.Atoi(s[:digits])
	if err != nil {
		return itemMarker{}, false
	}
	return itemMarker{text: s[:digits+2], ordered: true, number: n}, true
}

// SerializeBlock emits lists and items. Items reached through the list loop
// get their markers here; an item serialized on its own (width probing)
// emits just its content, which is marker-free by construction.
func (*List) SerializeBlock(b doc.Block, ctx *editor.SerializeContext) bool {
	w, ok := b.(*doc.BlockWrapper)
	if !ok {
		return false
	}
	switch w.Kind {
	case KindList:
		data, _ := w.Data.(ListData)
		for i, item := range w.Blocks {
			if i > 0 {
				ctx.LineBreak()
			}
			ctx.AppendSourceOnly(markerFor(data, i))
			ctx.SerializeBlock(item)
		}
		return true
	case KindListItem:
		ctx.SerializeBlocks(w.Blocks)
		return true
	}
	return false
}

func markerFor(data ListData, index int) string {
	if !data.Ordered {
		return "- "
	}
	start := data.Start
	if start < 1 {
		start = 1
	}
	return fmt.Sprintf("%d. ", start+index)
}

// NormalizeBlock drops emptied items and dissolves a list with no items
// left.
func (*List) NormalizeBlock(b doc.Block) (doc.Block, bool) {
	w, ok := b.(*doc.BlockWrapper)
	if !ok {
		return nil, false
	}
	switch w.Kind {
	case KindListItem:
		if len(w.Blocks) == 0 {
			return nil, true
		}
		return w, true
	case KindList:
		items := w.Blocks[:0:0]
		for _, item := range w.Blocks {
			if iw, ok := item.(*doc.BlockWrapper); ok && iw.Kind == KindListItem {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return nil, true
		}
		return &doc.BlockWrapper{Kind: KindList, Blocks: items, Data: w.Data}, true
	}
	return nil, false
}

// OnEdit claims InsertLineBreak for a collapsed caret inside a list item.
// The structural behaviors the generic splice cannot express: splitting the
// current item into two, and dissolving an empty item to exit the list.
func (*List) OnEdit(cmd editor.Command, st *editor.State) *editor.EditResult {
	if _, ok := cmd.(editor.InsertLineBreak); !ok {
		return nil
	}
	if !st.Selection.Collapsed() {
		return nil
	}

	caret := st.Selection.Start
	src := st.Map.CursorToSource(caret, cursormap.Backward)
	lineStart := strings.LastIndexByte(st.Source[:src], '\n') + 1

	// Enclosing quote prefixes stay with the line; the marker follows them.
	prefixEnd := lineStart
	for strings.HasPrefix(st.Source[prefixEnd:], "> ") {
		prefixEnd += 2
	}
	marker, ok := parseItemMarker(st.Source[prefixEnd:])
	if !ok {
		return nil
	}
	prefix := st.Source[lineStart:prefixEnd]
	markerEnd := prefixEnd + len(marker.text)

	lineEnd := len(st.Source)
	if nl := strings.IndexByte(st.Source[lineStart:], '\n'); nl >= 0 {
		lineEnd = lineStart + nl
	}

	if markerEnd == lineEnd {
		// Empty item: dissolve it, leaving an empty paragraph outside the
		// list. The marker is source-only, so the caret offset is unchanged.
		source := st.Source[:prefixEnd] + st.Source[markerEnd:]
		return &editor.EditResult{Source: source, Selection: st.Selection}
	}

	if src < markerEnd {
		// Caret at the head of the item: open a new empty item above it.
		source := st.Source[:lineStart] + prefix + marker.text + "\n" + st.Source[lineStart:]
		return &editor.EditResult{Source: source, Selection: editor.Caret(caret + 1)}
	}

	// Split the item: the next line continues the list. Renumbering of
	// ordered items falls out of re-serialization.
	next := marker
	if marker.ordered {
		next.text = strconv.Itoa(marker.number+1) + ". "
	}
	source := st.Source[:src] + "\n" + prefix + next.text + st.Source[src:]
	return &editor.EditResult{
		Source:    source,
		Selection: editor.Caret(caret + 1),
	}
}
