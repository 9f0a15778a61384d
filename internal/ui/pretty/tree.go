package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
)

// Tree glyphs.
const (
	branchMid  = "├─ "
	branchLast = "└─ "
	pipeIndent = "│  "
	lastIndent = "   "
)

// FormatTree renders the document as an indented tree.
func (s *Styles) FormatTree(d *doc.Doc) string {
	var b strings.Builder
	b.WriteString(s.NodeKind.Render("doc"))
	b.WriteString("\n")
	for i, block := range d.Blocks {
		s.writeBlock(&b, block, "", i == len(d.Blocks)-1)
	}
	return b.String()
}

func (s *Styles) writeBlock(b *strings.Builder, block doc.Block, indent string, last bool) {
	b.WriteString(s.TreeRune.Render(indent + glyph(last)))

	switch n := block.(type) {
	case *doc.Paragraph:
		b.WriteString(s.NodeKind.Render("paragraph"))
		b.WriteString("\n")
		for i, inline := range n.Content {
			s.writeInline(b, inline, childIndent(indent, last), i == len(n.Content)-1)
		}
	case *doc.BlockWrapper:
		b.WriteString(s.NodeKind.Render(string(n.Kind)))
		s.writeData(b, n.Data)
		b.WriteString("\n")
		for i, child := range n.Blocks {
			s.writeBlock(b, child, childIndent(indent, last), i == len(n.Blocks)-1)
		}
	case *doc.BlockAtom:
		b.WriteString(s.NodeKind.Render(string(n.Kind)))
		s.writeData(b, n.Data)
		b.WriteString("\n")
	}
}

func (s *Styles) writeInline(b *strings.Builder, inline doc.Inline, indent string, last bool) {
	b.WriteString(s.TreeRune.Render(indent + glyph(last)))

	switch n := inline.(type) {
	case *doc.Text:
		b.WriteString(s.NodeText.Render(fmt.Sprintf("%q", n.Text)))
		b.WriteString("\n")
	case *doc.InlineWrapper:
		b.WriteString(s.NodeKind.Render(string(n.Kind)))
		s.writeData(b, n.Data)
		b.WriteString("\n")
		for i, child := range n.Children {
			s.writeInline(b, child, childIndent(indent, last), i == len(n.Children)-1)
		}
	case *doc.InlineAtom:
		b.WriteString(s.NodeKind.Render(string(n.Kind)))
		s.writeData(b, n.Data)
		b.WriteString("\n")
	}
}

func (s *Styles) writeData(b *strings.Builder, data any) {
	if data == nil {
		return
	}
	b.WriteString(" ")
	b.WriteString(s.NodeData.Render(fmt.Sprintf("%+v", data)))
}

func glyph(last bool) string {
	if last {
		return branchLast
	}
	return branchMid
}

func childIndent(indent string, last bool) string {
	if last {
		return indent + lastIndent
	}
	return indent + pipeIndent
}
