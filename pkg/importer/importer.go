// Package importer converts CommonMark (plus GFM strikethrough) into the
// editor's document model. It exists for bringing external Markdown into
// the editor; documents created inside the editor never pass through it.
package importer

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/inkwell/pkg/doc"
	"github.com/yaklabco/inkwell/pkg/editor/extensions"
	"github.com/yaklabco/inkwell/pkg/langdetect"
)

// Importer maps goldmark ASTs into doc trees.
type Importer struct {
	md        goldmark.Markdown
	logger    *log.Logger
	guessLang bool
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger used for dropped-construct warnings.
func WithLogger(logger *log.Logger) Option {
	return func(im *Importer) { im.logger = logger }
}

// WithoutLanguageDetection disables tagging of untagged fenced code blocks.
func WithoutLanguageDetection() Option {
	return func(im *Importer) { im.guessLang = false }
}

// New creates an Importer. Strikethrough is the only GFM extension enabled;
// the rest of GFM has no counterpart in the document model.
func New(opts ...Option) *Importer {
	im := &Importer{
		md:        goldmark.New(goldmark.WithExtensions(extension.Strikethrough)),
		logger:    log.New(io.Discard),
		guessLang: true,
	}
	for _, opt := range opts {
		opt(im)
	}
	return im
}

// Import parses source as Markdown and returns the equivalent document.
// Constructs the model cannot represent are flattened to their text content
// or dropped with a warning.
func (im *Importer) Import(source string) *doc.Doc {
	content := []byte(source)
	root := im.md.Parser().Parse(text.NewReader(content))

	m := &mapper{content: content, logger: im.logger, guessLang: im.guessLang}
	return &doc.Doc{Blocks: m.mapBlocks(root)}
}

// mapper walks a goldmark AST. content is needed because goldmark text
// nodes hold segments into the original bytes, not strings.
type mapper struct {
	content   []byte
	logger    *log.Logger
	guessLang bool
}

func (m *mapper) mapBlocks(parent gast.Node) []doc.Block {
	var blocks []doc.Block
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if b := m.mapBlock(child); b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func (m *mapper) mapBlock(n gast.Node) doc.Block {
	switch gn := n.(type) {
	case *gast.Paragraph, *gast.TextBlock:
		return doc.NewParagraph(m.mapInlines(n)...)

	case *gast.Heading:
		// The model has no headings; keep the text as a paragraph.
		return doc.NewParagraph(m.mapInlines(n)...)

	case *gast.Blockquote:
		return doc.NewBlockWrapper(extensions.KindBlockquote, m.mapBlocks(n)...)

	case *gast.List:
		return m.mapList(gn)

	case *gast.FencedCodeBlock:
		return m.mapCodeBlock(gn)

	case *gast.CodeBlock:
		return m.indentedCodeBlock(gn)

	case *gast.ThematicBreak:
		m.logger.Warn("import: dropping thematic break")
		return nil

	case *gast.HTMLBlock:
		m.logger.Warn("import: dropping HTML block")
		return nil

	default:
		m.logger.Warn("import: dropping unsupported block", "kind", n.Kind().String())
		return nil
	}
}

func (m *mapper) mapList(list *gast.List) doc.Block {
	data := extensions.ListData{Ordered: list.IsOrdered(), Start: list.Start}
	if data.Ordered && data.Start == 0 {
		data.Start = 1
	}

	var items []doc.Block
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item := doc.NewBlockWrapper(extensions.KindListItem, m.mapBlocks(child)...)
		items = append(items, item)
	}
	wrapper := doc.NewBlockWrapper(extensions.KindList, items...)
	wrapper.Data = data
	return wrapper
}

func (m *mapper) mapCodeBlock(cb *gast.FencedCodeBlock) doc.Block {
	info := ""
	if cb.Info != nil {
		info = string(cb.Info.Value(m.content))
	}
	code := m.rawLines(cb)
	if info == "" && m.guessLang {
		if tag, ok := langdetect.Guess(code); ok {
			info = tag
		}
	}
	return &doc.BlockAtom{
		Kind: extensions.KindCodeBlock,
		Data: extensions.CodeBlockData{Info: info, Code: code},
	}
}

func (m *mapper) indentedCodeBlock(cb *gast.CodeBlock) doc.Block {
	code := m.rawLines(cb)
	data := extensions.CodeBlockData{Code: code}
	if m.guessLang {
		if tag, ok := langdetect.Guess(code); ok {
			data.Info = tag
		}
	}
	return &doc.BlockAtom{Kind: extensions.KindCodeBlock, Data: data}
}

// rawLines joins a code block's line segments, trimming the final newline
// because the model stores code without a trailing line terminator.
func (m *mapper) rawLines(n gast.Node) string {
	var buf []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf = append(buf, m.content[seg.Start:seg.Stop]...)
	}
	if len(buf) > 0 && buf[len(buf)-1] == '\n' {
		buf = buf[:len(buf)-1]
	}
	return string(buf)
}

func (m *mapper) mapInlines(parent gast.Node) []doc.Inline {
	var inlines []doc.Inline
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		inlines = append(inlines, m.mapInline(child)...)
	}
	return inlines
}

func (m *mapper) mapInline(n gast.Node) []doc.Inline {
	switch gn := n.(type) {
	case *gast.Text:
		txt := string(gn.Segment.Value(m.content))
		if gn.SoftLineBreak() || gn.HardLineBreak() {
			txt += " "
		}
		if txt == "" {
			return nil
		}
		return []doc.Inline{doc.NewText(txt)}

	case *gast.String:
		return []doc.Inline{doc.NewText(string(gn.Value))}

	case *gast.Emphasis:
		kind := extensions.KindEmphasis
		if gn.Level >= 2 {
			kind = extensions.KindStrong
		}
		return []doc.Inline{doc.NewInlineWrapper(kind, m.mapInlines(n)...)}

	case *east.Strikethrough:
		return []doc.Inline{doc.NewInlineWrapper(extensions.KindStrike, m.mapInlines(n)...)}

	case *gast.CodeSpan:
		return []doc.Inline{doc.NewInlineWrapper(
			extensions.KindCode,
			doc.NewText(m.codeSpanText(gn)),
		)}

	case *gast.Link:
		wrapper := doc.NewInlineWrapper(extensions.KindLink, m.mapInlines(n)...)
		wrapper.Data = extensions.LinkData{Href: string(gn.Destination)}
		return []doc.Inline{wrapper}

	case *gast.AutoLink:
		url := string(gn.URL(m.content))
		wrapper := doc.NewInlineWrapper(extensions.KindLink, doc.NewText(url))
		wrapper.Data = extensions.LinkData{Href: url}
		return []doc.Inline{wrapper}

	case *gast.Image:
		return []doc.Inline{&doc.InlineAtom{
			Kind: extensions.KindImage,
			Data: extensions.ImageData{
				Src: string(gn.Destination),
				Alt: doc.PlainText(m.mapInlines(n)),
			},
		}}

	case *gast.RawHTML:
		m.logger.Warn("import: dropping raw HTML")
		return nil

	default:
		m.logger.Warn("import: flattening unsupported inline", "kind", n.Kind().String())
		return m.mapInlines(n)
	}
}

// codeSpanText collects the literal content of a code span.
func (m *mapper) codeSpanText(cs *gast.CodeSpan) string {
	var buf []byte
	for child := cs.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*gast.Text); ok {
			buf = append(buf, t.Segment.Value(m.content)...)
		}
	}
	return string(buf)
}
