package extensions

import (
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// LinkData is the opaque payload of a link wrapper.
type LinkData struct {
	Href string
}

// Link implements `[label](href)`. The label runs through the full inline
// chain, so formatted link text nests naturally; the href is source-only and
// never contributes cursor units.
type Link struct{}

// NewLink creates the link extension.
func NewLink() *Link { return &Link{} }

// Name implements editor.Extension.
func (*Link) Name() string { return "link" }

// ParseInline claims `[label](href)`.
func (*Link) ParseInline(text string, pos int, ctx *editor.ParseContext) *editor.InlineParseResult {
	label, href, next, ok := parseBracketPair(text, pos)
	if !ok {
		return nil
	}
	return &editor.InlineParseResult{
		Inline: &doc.InlineWrapper{
			Kind:     KindLink,
			Children: ctx.ParseInlines(label),
			Data:     LinkData{Href: href},
		},
		Next: next,
	}
}

// SerializeInline emits `[label](href)` for link wrappers.
func (*Link) SerializeInline(in doc.Inline, ctx *editor.SerializeContext) bool {
	w, ok := in.(*doc.InlineWrapper)
	if !ok || w.Kind != KindLink {
		return false
	}
	data, _ := w.Data.(LinkData)
	ctx.AppendSourceOnly("[")
	ctx.SerializeInlines(w.Children)
	ctx.AppendSourceOnly("](" + data.Href + ")")
	return true
}

// NormalizeInline collapses a link whose label has emptied out.
func (*Link) NormalizeInline(in doc.Inline) (doc.Inline, bool) {
	w, ok := in.(*doc.InlineWrapper)
	if !ok || w.Kind != KindLink {
		return nil, false
	}
	if len(w.Children) == 0 {
		return nil, true
	}
	return w, true
}

// parseBracketPair matches `[label](target)` starting at pos and returns the
// label, the target, and the offset past the closing parenthesis.
func parseBracketPair(text string, pos int) (label, target string, next int, ok bool) {
	if pos >= len(text) || text[pos] != '[' {
		return "", "", 0, false
	}
	mid := strings.Index(text[pos:], "](")
	if mid < 0 {
		return "", "", 0, false
	}
	mid += pos
	end := strings.IndexByte(text[mid+2:], ')')
	if end < 0 {
		return "", "", 0, false
	}
	end += mid + 2
	return text[pos+1 : mid], text[mid+2 : end], end + 1, true
}
