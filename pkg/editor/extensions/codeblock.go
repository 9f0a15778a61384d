package extensions

import (
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor"
)

// CodeBlockData is the opaque payload of a fenced code block atom.
type CodeBlockData struct {
	// Info is the fence info string (usually a language name).
	Info string

	// Code is the literal content between the fences, without the trailing
	// newline before the closing fence.
	Code string
}

const fence = "```"

// CodeBlock implements fenced code blocks as block atoms occupying one
// cursor unit: the editing surface treats the whole block as a single
// indivisible object rather than editable text.
type CodeBlock struct{}

// NewCodeBlock creates the fenced code block extension.
func NewCodeBlock() *CodeBlock { return &CodeBlock{} }

// Name implements editor.Extension.
func (*CodeBlock) Name() string { return "codeblock" }

// ParseBlock claims a fence line through its matching closing fence.
// An unterminated fence declines, so the marker renders as literal text.
func (*CodeBlock) ParseBlock(source string, pos int, _ *editor.ParseContext) *editor.BlockParseResult {
	rest := source[pos:]
	if !strings.HasPrefix(rest, fence) {
		return nil
	}
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return nil
	}
	info := strings.TrimSpace(rest[len(fence):nl])

	body := rest[nl+1:]
	code, bodyEnd, ok := findClosingFence(body)
	if !ok {
		return nil
	}

	next := pos + nl + 1 + bodyEnd
	if next < len(source) && source[next] == '\n' {
		next++
	}
	return &editor.BlockParseResult{
		Block: &doc.BlockAtom{Kind: KindCodeBlock, Data: CodeBlockData{Info: info, Code: code}},
		Next:  next,
	}
}

// findClosingFence scans body line by line for a line consisting of exactly
// the fence marker. It returns the code content (without the newline before
// the fence) and the offset just past the fence line.
func findClosingFence(body string) (code string, end int, ok bool) {
	off := 0
	for off <= len(body) {
		lineEnd := len(body)
		if nl := strings.IndexByte(body[off:], '\n'); nl >= 0 {
			lineEnd = off + nl
		}
		if body[off:lineEnd] == fence {
			content := ""
			if off > 0 {
				content = body[:off-1]
			}
			return content, lineEnd, true
		}
		off = lineEnd + 1
	}
	return "", 0, false
}

// SerializeBlock emits the fenced block as one indivisible cursor unit.
func (*CodeBlock) SerializeBlock(b doc.Block, ctx *editor.SerializeContext) bool {
	a, ok := b.(*doc.BlockAtom)
	if !ok || a.Kind != KindCodeBlock {
		return false
	}
	data, _ := a.Data.(CodeBlockData)
	ctx.AppendAtom(fence+data.Info+"\n"+data.Code+"\n"+fence, 1)
	return true
}
