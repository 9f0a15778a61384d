package editor

import (
	"github.com/yaklabco/inkwell/internal/logging"
	"github.com/yaklabco/inkwell/pkg/cursormap"
	"github.com/yaklabco/inkwell/pkg/doc"
)

// blockSeparator is the one-cursor-unit boundary between sibling blocks.
const blockSeparator = "\n"

// Serialize converts a document back into a source string plus a freshly
// built cursor/source map. The map is the authoritative coordinate system
// for the state that owns it.
func (rt *Runtime) Serialize(d *doc.Doc) (string, *cursormap.Map) {
	frag := rt.serializeFragment(d.Blocks, "")
	return frag.Source(), frag.Map()
}

// serializeFragment builds the fragment for a block list. prefix is the
// accumulated line prefix owed to enclosing wrappers (e.g. "> " inside a
// quote); it is re-emitted as source-only text after every block separator.
func (rt *Runtime) serializeFragment(blocks []doc.Block, prefix string) cursormap.Fragment {
	ctx := &SerializeContext{
		rt:      rt,
		builder: cursormap.NewBuilder(),
		prefix:  prefix,
	}
	ctx.SerializeBlocks(blocks)
	return ctx.builder.Build()
}

// SerializeContext is the builder-backed context handed to extension
// serializers. It exposes the underlying append operations plus recursion
// into child content; recursive results are built independently and spliced
// in, so subtrees stay composable.
type SerializeContext struct {
	rt      *Runtime
	builder *cursormap.Builder
	prefix  string
}

// AppendSourceOnly emits syntax markers carrying no cursor units.
func (c *SerializeContext) AppendSourceOnly(text string) {
	c.builder.AppendSourceOnly(text)
}

// AppendText emits visible content, one cursor unit per rune.
func (c *SerializeContext) AppendText(text string) {
	c.builder.AppendText(text)
}

// AppendAtom emits an indivisible source span occupying width cursor units.
func (c *SerializeContext) AppendAtom(sourceText string, width int) {
	c.builder.AppendCursorAtom(sourceText, width)
}

// LineBreak emits the one-cursor-unit block separator followed by the line
// prefix owed to enclosing wrappers.
func (c *SerializeContext) LineBreak() {
	c.builder.AppendCursorAtom(blockSeparator, 1)
	c.builder.AppendSourceOnly(c.prefix)
}

// SerializeBlocks serializes a block list with a separator between siblings.
func (c *SerializeContext) SerializeBlocks(blocks []doc.Block) {
	for i, b := range blocks {
		if i > 0 {
			c.LineBreak()
		}
		c.SerializeBlock(b)
	}
}

// SerializeBlocksPrefixed serializes nested wrapper content with an
// additional per-line prefix appended for the duration of the call. The
// caller emits the first line's own prefix itself.
func (c *SerializeContext) SerializeBlocksPrefixed(blocks []doc.Block, prefix string) {
	saved := c.prefix
	c.prefix = saved + prefix
	c.SerializeBlocks(blocks)
	c.prefix = saved
}

// SerializeBlock dispatches one block through the serializer chain, then the
// core defaults: paragraphs emit their inline content, unclaimed wrappers
// serialize children transparently, and unclaimed atoms are dropped with a
// warning since no hook knows their source form.
func (c *SerializeContext) SerializeBlock(b doc.Block) {
	for _, ext := range c.rt.exts {
		if bs, ok := ext.(BlockSerializer); ok && bs.SerializeBlock(b, c) {
			return
		}
	}

	switch v := b.(type) {
	case *doc.Paragraph:
		c.SerializeInlines(v.Content)
	case *doc.BlockWrapper:
		c.SerializeBlocks(v.Blocks)
	case *doc.BlockAtom:
		c.rt.logger.Warn("no serializer claimed block atom, dropping", logging.FieldKind, v.Kind)
	}
}

// SerializeInlines serializes an inline list into an independent fragment
// and splices it into this context's builder.
func (c *SerializeContext) SerializeInlines(inlines []doc.Inline) {
	child := &SerializeContext{
		rt:      c.rt,
		builder: cursormap.NewBuilder(),
		prefix:  c.prefix,
	}
	for _, in := range inlines {
		child.serializeInline(in)
	}
	c.builder.AppendSerialized(child.builder.Build())
}

func (c *SerializeContext) serializeInline(in doc.Inline) {
	for _, ext := range c.rt.exts {
		if is, ok := ext.(InlineSerializer); ok && is.SerializeInline(in, c) {
			return
		}
	}

	switch v := in.(type) {
	case *doc.Text:
		c.builder.AppendText(v.Text)
	case *doc.InlineWrapper:
		c.SerializeInlines(v.Children)
	case *doc.InlineAtom:
		c.rt.logger.Warn("no serializer claimed inline atom, dropping", logging.FieldKind, v.Kind)
	}
}
