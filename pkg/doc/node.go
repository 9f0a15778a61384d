// Package doc defines the document model: a Doc is an ordered sequence of
// blocks, blocks contain inline content, and both blocks and inlines come in
// extension-defined wrapper and atom variants. The core traverses the tree
// generically; it never interprets an extension's Kind or Data beyond
// pass-through.
package doc

// Kind names an extension-defined node flavor (e.g. "strong", "link",
// "blockquote"). The core treats kinds as opaque identifiers.
type Kind string

// Doc is the root of a parsed document. Docs are treated as immutable: a new
// Doc is produced on every parse and callers must not mutate one in place.
type Doc struct {
	Blocks []Block
}

// Block is a block-level node. The variants are Paragraph, BlockWrapper, and
// BlockAtom; the interface is sealed to this package.
type Block interface {
	isBlock()
}

// Paragraph is a single line of inline content.
type Paragraph struct {
	Content []Inline
}

// BlockWrapper is an extension-defined container of other blocks, such as a
// quoted section or a list. Wrappers nest.
type BlockWrapper struct {
	Kind   Kind
	Blocks []Block

	// Data holds extension-specific payload. Opaque to the core.
	Data any
}

// BlockAtom is an extension-defined non-text block with an opaque payload,
// such as an embedded image or a code block. An atom contributes a fixed
// number of cursor units but no editable text.
type BlockAtom struct {
	Kind Kind
	Data any
}

func (*Paragraph) isBlock()    {}
func (*BlockWrapper) isBlock() {}
func (*BlockAtom) isBlock()    {}

// Inline is an inline-level node. The variants are Text, InlineWrapper, and
// InlineAtom; the interface is sealed to this package.
type Inline interface {
	isInline()
}

// Text is literal visible text. Each rune occupies one cursor unit.
type Text struct {
	Text string
}

// InlineWrapper is an extension-defined formatting span wrapping other
// inlines (bold, link, underline). Child order is insertion order and
// significant.
type InlineWrapper struct {
	Kind     Kind
	Children []Inline

	// Data holds extension-specific payload (e.g. a link destination).
	// Opaque to the core.
	Data any
}

// InlineAtom is an extension-defined non-text inline unit occupying exactly
// one cursor unit regardless of its payload or source length.
type InlineAtom struct {
	Kind Kind
	Data any
}

func (*Text) isInline()          {}
func (*InlineWrapper) isInline() {}
func (*InlineAtom) isInline()    {}

// NewParagraph creates a paragraph from the given inline content.
func NewParagraph(content ...Inline) *Paragraph {
	return &Paragraph{Content: content}
}

// NewText creates a text node.
func NewText(text string) *Text {
	return &Text{Text: text}
}

// NewInlineWrapper creates an inline wrapper of the given kind.
func NewInlineWrapper(kind Kind, children ...Inline) *InlineWrapper {
	return &InlineWrapper{Kind: kind, Children: children}
}

// NewBlockWrapper creates a block wrapper of the given kind.
func NewBlockWrapper(kind Kind, blocks ...Block) *BlockWrapper {
	return &BlockWrapper{Kind: kind, Blocks: blocks}
}
