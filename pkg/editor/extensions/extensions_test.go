package extensions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkwell/pkg/cursormap"
	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
	"github.com/yaklabco/inkwell/pkg/editor/extensions"
)

func newRuntime(t *testing.T) *editor.Runtime {
	t.Helper()
	rt, err := editor.NewRuntime(extensions.Default())
	require.NoError(t, err)
	return rt
}

func TestDelimited_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"**strong**",
		"*em*",
		"__under__",
		"~~gone~~",
		"`lit`",
		"**a *b* c**",
	}

	rt := newRuntime(t)
	for _, src := range sources {
		st := editor.CreateState(rt, src, nil)
		assert.Equal(t, src, st.Source)
	}
}

func TestCodeSpan_ContentStaysLiteral(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("`*x*`")

	p, ok := d.Blocks[0].(*doc.Paragraph)
	require.True(t, ok)
	require.Len(t, p.Content, 1)

	w, ok := p.Content[0].(*doc.InlineWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindCode, w.Kind)
	require.Len(t, w.Children, 1)

	txt, ok := w.Children[0].(*doc.Text)
	require.True(t, ok)
	assert.Equal(t, "*x*", txt.Text)
}

func TestStrong_NestsEmphasis(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("**a *b* c**")

	p := d.Blocks[0].(*doc.Paragraph)
	w, ok := p.Content[0].(*doc.InlineWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindStrong, w.Kind)
	require.Len(t, w.Children, 3)

	inner, ok := w.Children[1].(*doc.InlineWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindEmphasis, inner.Kind)
}

func TestLink_ParseAndData(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("[text](https://example.com)")

	p := d.Blocks[0].(*doc.Paragraph)
	w, ok := p.Content[0].(*doc.InlineWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindLink, w.Kind)
	assert.Equal(t, extensions.LinkData{Href: "https://example.com"}, w.Data)
	assert.Equal(t, "text", doc.PlainText(w.Children))
}

func TestLink_EmptyLabelDropped(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	st := editor.CreateState(rt, "[](url)", nil)
	assert.Equal(t, "", st.Source)
}

func TestLink_HrefIsSourceOnly(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	st := editor.CreateState(rt, "[word](url)", nil)

	// Only the four label runes occupy cursor space.
	assert.Equal(t, 4, st.Map.CursorLen())
	assert.True(t, st.Map.Boundary(0).Ambiguous())
	assert.True(t, st.Map.Boundary(4).Ambiguous())

	// The label end resolves backward to just before "](url)" and forward
	// to past it, never inside the href.
	assert.Equal(t, 5, st.Map.CursorToSource(4, cursormap.Backward))
	assert.Equal(t, 11, st.Map.CursorToSource(4, cursormap.Forward))
	assert.Equal(t, 1, st.Map.CursorToSource(0, cursormap.Forward))

	// Typing at the label end with backward affinity extends the label.
	sel := editor.Selection{Start: 4, End: 4, Affinity: editor.AffinityBackward}
	st = editor.CreateState(rt, "[word](url)", &sel)
	next := editor.ApplyEdit(editor.Insert{Text: "s"}, st)
	assert.Equal(t, "[words](url)", next.Source)
}

func TestImage_OneCursorUnit(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	st := editor.CreateState(rt, "a![pic](img.png)b", nil)

	require.Equal(t, 3, st.Map.CursorLen())
	assert.Equal(t, "a![pic](img.png)b", st.Source)

	p := st.Doc.Blocks[0].(*doc.Paragraph)
	require.Len(t, p.Content, 3)
	atom, ok := p.Content[1].(*doc.InlineAtom)
	require.True(t, ok)
	assert.Equal(t, extensions.ImageData{Src: "img.png", Alt: "pic"}, atom.Data)
}

func TestImage_DeleteRemovesWholeAtom(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	sel := editor.Caret(2)
	st := editor.CreateState(rt, "a![pic](img.png)b", &sel)

	next := editor.ApplyEdit(editor.DeleteBackward{}, st)
	assert.Equal(t, "ab", next.Source)
	assert.Equal(t, 1, next.Selection.Start)
}

func TestCodeBlock_Parse(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("```go\nfmt.Println(1)\n```")

	require.Len(t, d.Blocks, 1)
	atom, ok := d.Blocks[0].(*doc.BlockAtom)
	require.True(t, ok)
	assert.Equal(t, extensions.KindCodeBlock, atom.Kind)
	assert.Equal(t, extensions.CodeBlockData{Info: "go", Code: "fmt.Println(1)"}, atom.Data)
}

func TestCodeBlock_UnterminatedFenceDeclines(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("```go\nno closing fence")

	for _, b := range d.Blocks {
		_, isAtom := b.(*doc.BlockAtom)
		assert.False(t, isAtom)
	}
}

func TestCodeBlock_FollowedByParagraph(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	src := "```\nx\n```\nnext"
	st := editor.CreateState(rt, src, nil)

	assert.Equal(t, src, st.Source)
	require.Len(t, st.Doc.Blocks, 2)
	_, isAtom := st.Doc.Blocks[0].(*doc.BlockAtom)
	assert.True(t, isAtom)

	// The fenced block is one cursor unit, then the separator, then "next".
	assert.Equal(t, 6, st.Map.CursorLen())
}

func TestBlockquote_Nesting(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	st := editor.CreateState(rt, "> > deep", nil)
	assert.Equal(t, "> > deep", st.Source)

	outer, ok := st.Doc.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindBlockquote, outer.Kind)

	inner, ok := outer.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindBlockquote, inner.Kind)
}

func TestBlockquote_ContainsList(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	src := "> - a\n> - b"
	st := editor.CreateState(rt, src, nil)
	assert.Equal(t, src, st.Source)

	quote := st.Doc.Blocks[0].(*doc.BlockWrapper)
	list, ok := quote.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindList, list.Kind)
	assert.Len(t, list.Blocks, 2)
}

func TestBlockquote_EmptyDropped(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Normalize(&doc.Doc{Blocks: []doc.Block{
		&doc.BlockWrapper{Kind: extensions.KindBlockquote},
	}})
	assert.Empty(t, d.Blocks)
}

func TestList_Parse(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("3. x\n9. y")

	list, ok := d.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindList, list.Kind)
	assert.Equal(t, extensions.ListData{Ordered: true, Start: 3}, list.Data)
	assert.Len(t, list.Blocks, 2)
}

func TestList_SerializerOwnsNumbering(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	st := editor.CreateState(rt, "3. x\n9. y\n1. z", nil)
	assert.Equal(t, "3. x\n4. y\n5. z", st.Source)
}

func TestList_MixedOrderednessSplits(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Parse("- a\n1. b")

	require.Len(t, d.Blocks, 2)
	first := d.Blocks[0].(*doc.BlockWrapper)
	second := d.Blocks[1].(*doc.BlockWrapper)
	assert.Equal(t, extensions.ListData{Ordered: false, Start: 1}, first.Data)
	assert.Equal(t, extensions.ListData{Ordered: true, Start: 1}, second.Data)
}

func TestList_NormalizeDissolvesEmptyList(t *testing.T) {
	t.Parallel()

	rt := newRuntime(t)
	d := rt.Normalize(&doc.Doc{Blocks: []doc.Block{
		&doc.BlockWrapper{Kind: extensions.KindList, Blocks: []doc.Block{
			&doc.BlockWrapper{Kind: extensions.KindListItem},
		}},
	}})
	assert.Empty(t, d.Blocks)
}

func TestList_LineBreakEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     string
		caret      int
		wantSource string
		wantCaret  int
	}{
		{
			name:       "split item",
			source:     "- ab",
			caret:      1,
			wantSource: "- a\n- b",
			wantCaret:  2,
		},
		{
			name:       "caret at item head opens an item above",
			source:     "- ab",
			caret:      0,
			wantSource: "- \n- ab",
			wantCaret:  1,
		},
		{
			name:       "empty item dissolves",
			source:     "- a\n- ",
			caret:      2,
			wantSource: "- a\n",
			wantCaret:  2,
		},
		{
			name:       "ordered split renumbers",
			source:     "1. ab",
			caret:      1,
			wantSource: "1. a\n2. b",
			wantCaret:  2,
		},
		{
			name:       "quoted item splits with its prefix",
			source:     "> - ab",
			caret:      1,
			wantSource: "> - a\n> - b",
			wantCaret:  2,
		},
	}

	rt := newRuntime(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sel := editor.Caret(tc.caret)
			st := editor.CreateState(rt, tc.source, &sel)
			require.Equal(t, tc.source, st.Source)

			next := editor.ApplyEdit(editor.InsertLineBreak{}, st)
			assert.Equal(t, tc.wantSource, next.Source)
			assert.Equal(t, tc.wantCaret, next.Selection.Start)
		})
	}
}

func TestDefault_UniqueNames(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, ext := range extensions.Default() {
		assert.False(t, seen[ext.Name()], "duplicate %q", ext.Name())
		seen[ext.Name()] = true
	}
}
