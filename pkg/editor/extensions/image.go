package extensions

import (
	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// ImageData is the opaque payload of an image atom.
type ImageData struct {
	Src string
	Alt string
}

// Image implements `![alt](src)` as an inline atom: the whole construct
// occupies exactly one cursor unit regardless of how long the alt text or
// source URL is.
type Image struct{}

// NewImage creates the image extension.
func NewImage() *Image { return &Image{} }

// Name implements editor.Extension.
func (*Image) Name() string { return "image" }

// ParseInline claims `![alt](src)`.
func (*Image) ParseInline(text string, pos int, _ *editor.ParseContext) *editor.InlineParseResult {
	if pos >= len(text) || text[pos] != '!' {
		return nil
	}
	alt, src, next, ok := parseBracketPair(text, pos+1)
	if !ok {
		return nil
	}
	return &editor.InlineParseResult{
		Inline: &doc.InlineAtom{Kind: KindImage, Data: ImageData{Src: src, Alt: alt}},
		Next:   next,
	}
}

// SerializeInline emits the image as a single one-unit atom.
func (*Image) SerializeInline(in doc.Inline, ctx *editor.SerializeContext) bool {
	a, ok := in.(*doc.InlineAtom)
	if !ok || a.Kind != KindImage {
		return false
	}
	data, _ := a.Data.(ImageData)
	ctx.AppendAtom("!["+data.Alt+"]("+data.Src+")", 1)
	return true
}
