// Package extensions provides the built-in formatting extensions for the
// inkwell dialect: delimiter-based inline wrappers (strong, emphasis,
// underline, strikethrough, code spans), links and images, fenced code
// blocks, blockquotes, and lists. Each extension owns its kinds end to end:
// parsing, serialization, normalization, and (for lists) structural edits.
package extensions

import (
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// Kinds produced by the built-in extensions.
const (
	KindCode       doc.Kind = "code"
	KindStrong     doc.Kind = "strong"
	KindEmphasis   doc.Kind = "em"
	KindUnderline  doc.Kind = "underline"
	KindStrike     doc.Kind = "strike"
	KindImage      doc.Kind = "image"
	KindLink       doc.Kind = "link"
	KindCodeBlock  doc.Kind = "code-block"
	KindBlockquote doc.Kind = "blockquote"
	KindList       doc.Kind = "list"
	KindListItem   doc.Kind = "list-item"
)

// DelimitedWrapper implements a symmetric-delimiter inline wrapper: the
// syntax is delim + content + delim, the content is parsed through the full
// inline chain (or kept literal for code spans), and an emptied wrapper
// collapses away during normalization.
type DelimitedWrapper struct {
	name    string
	kind    doc.Kind
	delim   string
	literal bool // content is raw text, not re-parsed (code spans)
}

// NewStrong creates the `**…**` extension.
func NewStrong() *DelimitedWrapper {
	return &DelimitedWrapper{name: "strong", kind: KindStrong, delim: "**"}
}

// NewEmphasis creates the `*…*` extension. Register it after strong so the
// double marker wins at shared positions.
func NewEmphasis() *DelimitedWrapper {
	return &DelimitedWrapper{name: "emphasis", kind: KindEmphasis, delim: "*"}
}

// NewUnderline creates the `__…__` extension.
func NewUnderline() *DelimitedWrapper {
	return &DelimitedWrapper{name: "underline", kind: KindUnderline, delim: "__"}
}

// NewStrike creates the `~~…~~` extension.
func NewStrike() *DelimitedWrapper {
	return &DelimitedWrapper{name: "strike", kind: KindStrike, delim: "~~"}
}

// NewCodeSpan creates the backtick extension. Its content stays literal:
// nothing inside a code span is markup.
func NewCodeSpan() *DelimitedWrapper {
	return &DelimitedWrapper{name: "codespan", kind: KindCode, delim: "`", literal: true}
}

// Name implements editor.Extension.
func (d *DelimitedWrapper) Name() string { return d.name }

// ParseInline claims delim + content + delim. Without a closing delimiter it
// declines and the marker renders as literal text.
func (d *DelimitedWrapper) ParseInline(text string, pos int, ctx *editor.ParseContext) *editor.InlineParseResult {
	if !strings.HasPrefix(text[pos:], d.delim) {
		return nil
	}
	open := pos + len(d.delim)
	rel := strings.Index(text[open:], d.delim)
	if rel < 0 {
		return nil
	}
	inner := text[open : open+rel]

	var children []doc.Inline
	if d.literal {
		if inner != "" {
			children = []doc.Inline{doc.NewText(inner)}
		}
	} else {
		children = ctx.ParseInlines(inner)
	}

	return &editor.InlineParseResult{
		Inline: &doc.InlineWrapper{Kind: d.kind, Children: children},
		Next:   open + rel + len(d.delim),
	}
}

// SerializeInline emits delim + children + delim for wrappers of this kind.
func (d *DelimitedWrapper) SerializeInline(in doc.Inline, ctx *editor.SerializeContext) bool {
	w, ok := in.(*doc.InlineWrapper)
	if !ok || w.Kind != d.kind {
		return false
	}
	ctx.AppendSourceOnly(d.delim)
	ctx.SerializeInlines(w.Children)
	ctx.AppendSourceOnly(d.delim)
	return true
}

// NormalizeInline collapses an emptied wrapper of this kind.
func (d *DelimitedWrapper) NormalizeInline(in doc.Inline) (doc.Inline, bool) {
	w, ok := in.(*doc.InlineWrapper)
	if !ok || w.Kind != d.kind {
		return nil, false
	}
	if len(w.Children) == 0 {
		return nil, true
	}
	return w, true
}
