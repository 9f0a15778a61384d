package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/doc"
)

// Parse converts a source string into a document. Parsing never fails: any
// span no extension claims falls back to plain paragraphs of literal text,
// so malformed syntax renders as its own characters.
func (rt *Runtime) Parse(source string) *doc.Doc {
	ctx := &ParseContext{rt: rt}
	return &doc.Doc{Blocks: ctx.ParseBlocks(source)}
}

// ParseContext exposes the full recursive parse chains to extensions, so an
// extension can delegate nested content (a quote's inner blocks, a link's
// label) without knowing about other extensions.
type ParseContext struct {
	rt *Runtime
}

// ParseBlocks runs the block chain over the whole of source, falling back to
// one paragraph per line.
func (c *ParseContext) ParseBlocks(source string) []doc.Block {
	var blocks []doc.Block
	pos := 0
	for pos < len(source) {
		if res := c.parseBlockAt(source, pos); res != nil {
			blocks = append(blocks, res.Block)
			pos = res.Next
			continue
		}

		line := source[pos:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
			pos += nl + 1
		} else {
			pos = len(source)
		}
		blocks = append(blocks, &doc.Paragraph{Content: c.ParseInlines(line)})
	}
	// A trailing newline is a separator, so an empty block follows it.
	if strings.HasSuffix(source, "\n") {
		blocks = append(blocks, &doc.Paragraph{})
	}
	return blocks
}

// parseBlockAt tries the ordered block parser chain at pos. A result that
// fails to advance the scan is discarded to keep parsing total.
func (c *ParseContext) parseBlockAt(source string, pos int) *BlockParseResult {
	for _, ext := range c.rt.exts {
		bp, ok := ext.(BlockParser)
		if !ok {
			continue
		}
		res := bp.ParseBlock(source, pos, c)
		if res == nil {
			continue
		}
		if res.Next <= pos || res.Next > len(source) {
			c.rt.logger.Warn("block parser returned bad offset, ignoring",
				logging.FieldExtension, ext.Name(), "pos", pos, "next", res.Next)
			continue
		}
		return res
	}
	return nil
}

// ParseInlines runs the inline chain over a text span, accumulating
// unclaimed runes into literal text nodes.
func (c *ParseContext) ParseInlines(text string) []doc.Inline {
	var out []doc.Inline
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			out = append(out, &doc.Text{Text: lit.String()})
			lit.Reset()
		}
	}

	pos := 0
	for pos < len(text) {
		if res := c.parseInlineAt(text, pos); res != nil {
			flush()
			out = append(out, res.Inline)
			pos = res.Next
			continue
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		lit.WriteString(text[pos : pos+size])
		pos += size
	}
	flush()
	return out
}

func (c *ParseContext) parseInlineAt(text string, pos int) *InlineParseResult {
	for _, ext := range c.rt.exts {
		ip, ok := ext.(InlineParser)
		if !ok {
			continue
		}
		res := ip.ParseInline(text, pos, c)
		if res == nil {
			continue
		}
		if res.Next <= pos || res.Next > len(text) {
			c.rt.logger.Warn("inline parser returned bad offset, ignoring",
				logging.FieldExtension, ext.Name(), "pos", pos, "next", res.Next)
			continue
		}
		return res
	}
	return nil
}
