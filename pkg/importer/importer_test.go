package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
	"github.com/yaklabco/inkwell/pkg/editor/extensions"
	"github.com/yaklabco/inkwell/pkg/importer"
)

// serialize runs an imported document through the default runtime so the
// result can be compared as canonical source.
func serialize(t *testing.T, d *doc.Doc) string {
	t.Helper()
	rt, err := editor.NewRuntime(extensions.Default())
	require.NoError(t, err)
	source, _ := rt.Serialize(rt.Normalize(d))
	return source
}

func TestImport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "paragraph",
			markdown: "hello world",
			want:     "hello world",
		},
		{
			name:     "heading becomes paragraph",
			markdown: "# Title\n\nbody",
			want:     "Title\nbody",
		},
		{
			name:     "strong and emphasis",
			markdown: "**bold** and *em*",
			want:     "**bold** and *em*",
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want:     "~~gone~~",
		},
		{
			name:     "code span",
			markdown: "use `fmt.Println`",
			want:     "use `fmt.Println`",
		},
		{
			name:     "link",
			markdown: "[docs](https://example.com)",
			want:     "[docs](https://example.com)",
		},
		{
			name:     "autolink",
			markdown: "<https://example.com>",
			want:     "[https://example.com](https://example.com)",
		},
		{
			name:     "image",
			markdown: "![pic](img.png)",
			want:     "![pic](img.png)",
		},
		{
			name:     "blockquote",
			markdown: "> quoted",
			want:     "> quoted",
		},
		{
			name:     "bullet list",
			markdown: "- a\n- b",
			want:     "- a\n- b",
		},
		{
			name:     "ordered list keeps its start",
			markdown: "5. x\n6. y",
			want:     "5. x\n6. y",
		},
		{
			name:     "fenced code with info",
			markdown: "```go\nx := 1\n```",
			want:     "```go\nx := 1\n```",
		},
		{
			name:     "soft line break becomes a space",
			markdown: "a\nb",
			want:     "a b",
		},
		{
			name:     "thematic break dropped",
			markdown: "a\n\n---\n\nb",
			want:     "a\nb",
		},
	}

	im := importer.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := serialize(t, im.Import(tc.markdown))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestImport_DetectsFenceLanguage(t *testing.T) {
	t.Parallel()

	im := importer.New()
	d := im.Import("```\npackage main\n\nfunc main() {}\n```")

	require.Len(t, d.Blocks, 1)
	atom, ok := d.Blocks[0].(*doc.BlockAtom)
	require.True(t, ok)
	data, ok := atom.Data.(extensions.CodeBlockData)
	require.True(t, ok)
	assert.Equal(t, "go", data.Info)
}

func TestImport_WithoutLanguageDetection(t *testing.T) {
	t.Parallel()

	im := importer.New(importer.WithoutLanguageDetection())
	d := im.Import("```\npackage main\n\nfunc main() {}\n```")

	atom := d.Blocks[0].(*doc.BlockAtom)
	data := atom.Data.(extensions.CodeBlockData)
	assert.Equal(t, "", data.Info)
	assert.Equal(t, "package main\n\nfunc main() {}", data.Code)
}

func TestImport_ExplicitInfoWinsOverDetection(t *testing.T) {
	t.Parallel()

	im := importer.New()
	d := im.Import("```text\npackage main\n```")

	atom := d.Blocks[0].(*doc.BlockAtom)
	data := atom.Data.(extensions.CodeBlockData)
	assert.Equal(t, "text", data.Info)
}

func TestImport_HTMLBlockDropped(t *testing.T) {
	t.Parallel()

	im := importer.New()
	d := im.Import("<div>\nraw\n</div>\n")
	assert.Empty(t, d.Blocks)
}

func TestImport_NestedListStructure(t *testing.T) {
	t.Parallel()

	im := importer.New()
	d := im.Import("- a\n- b")

	require.Len(t, d.Blocks, 1)
	list, ok := d.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindList, list.Kind)
	require.Len(t, list.Blocks, 2)

	item, ok := list.Blocks[0].(*doc.BlockWrapper)
	require.True(t, ok)
	assert.Equal(t, extensions.KindListItem, item.Kind)
}

func TestImport_ImageAltFlattensFormatting(t *testing.T) {
	t.Parallel()

	im := importer.New()
	d := im.Import("![a **b**](s.png)")

	p := d.Blocks[0].(*doc.Paragraph)
	atom, ok := p.Content[0].(*doc.InlineAtom)
	require.True(t, ok)
	assert.Equal(t, extensions.ImageData{Src: "s.png", Alt: "a b"}, atom.Data)
}
