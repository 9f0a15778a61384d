package extensions

import (
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// Blockquote implements `> `-prefixed quoted sections as block wrappers.
// Consecutive quoted lines are stripped of one prefix level and re-parsed
// through the full block chain, so quotes nest and can contain any other
// block syntax.
type Blockquote struct{}

// NewBlockquote creates the blockquote extension.
func NewBlockquote() *Blockquote { return &Blockquote{} }

// Name implements editor.Extension.
func (*Blockquote) Name() string { return "blockquote" }

// ParseBlock claims a maximal run of quoted lines.
func (*Blockquote) ParseBlock(source string, pos int, ctx *editor.ParseContext) *editor.BlockParseResult {
	if !hasQuotePrefix(source[pos:]) {
		return nil
	}

	var inner []string
	cur := pos
	for cur < len(source) {
		line := source[cur:]
		lineLen := len(line)
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			lineLen = nl + 1
		}
		stripped, ok := stripQuotePrefix(line)
		if !ok {
			break
		}
		inner = append(inner, stripped)
		cur += lineLen
	}

	return &editor.BlockParseResult{
		Block: &doc.BlockWrapper{
			Kind:   KindBlockquote,
			Blocks: ctx.ParseBlocks(strings.Join(inner, "\n")),
		},
		Next: cur,
	}
}

func hasQuotePrefix(s string) bool {
	return strings.HasPrefix(s, "> ") || s == ">" || strings.HasPrefix(s, ">\n")
}

func stripQuotePrefix(line string) (string, bool) {
	if strings.HasPrefix(line, "> ") {
		return line[2:], true
	}
	if line == ">" {
		return "", true
	}
	return "", false
}

// SerializeBlock emits the quote with a `> ` prefix on every line, including
// the lines of nested blocks.
func (*Blockquote) SerializeBlock(b doc.Block, ctx *editor.SerializeContext) bool {
	w, ok := b.(*doc.BlockWrapper)
	if !ok || w.Kind != KindBlockquote {
		return false
	}
	ctx.AppendSourceOnly("> ")
	ctx.SerializeBlocksPrefixed(w.Blocks, "> ")
	return true
}

// NormalizeBlock collapses a quote whose content has emptied out.
func (*Blockquote) NormalizeBlock(b doc.Block) (doc.Block, bool) {
	w, ok := b.(*doc.BlockWrapper)
	if !ok || w.Kind != KindBlockquote {
		return nil, false
	}
	if len(w.Blocks) == 0 {
		return nil, true
	}
	return w, true
}
