package editor

import "github.com/yaklabco/inkwell/pkg/doc"

// Extension is a named bundle of hooks contributed to a Runtime. An extension
// implements any subset of the capability interfaces below; the runtime
// type-asserts per hook chain. Registration order is grammar precedence and
// dispatch order everywhere: the first extension to claim a position, node,
// or command wins, with no longest-match preference.
type Extension interface {
	// Name identifies the extension (e.g. "strong", "list"). Names must be
	// unique within a Runtime.
	Name() string
}

// BlockParseResult is a successful block parse: the produced block and the
// source offset scanning resumes at. Next must be greater than the position
// the parser was invoked at.
type BlockParseResult struct {
	Block doc.Block
	Next  int
}

// BlockParser claims block syntax. ParseBlock is invoked at each scan
// position; returning nil declines.
type BlockParser interface {
	ParseBlock(source string, pos int, ctx *ParseContext) *BlockParseResult
}

// InlineParseResult is a successful inline parse, analogous to
// BlockParseResult.
type InlineParseResult struct {
	Inline doc.Inline
	Next   int
}

// InlineParser claims inline syntax within a paragraph's text span.
type InlineParser interface {
	ParseInline(text string, pos int, ctx *ParseContext) *InlineParseResult
}

// BlockSerializer emits source for block nodes it owns through the context's
// builder. Returning false declines and passes the node down the chain.
type BlockSerializer interface {
	SerializeBlock(b doc.Block, ctx *SerializeContext) bool
}

// InlineSerializer emits source for inline nodes it owns.
type InlineSerializer interface {
	SerializeInline(in doc.Inline, ctx *SerializeContext) bool
}

// BlockNormalizer inspects one block after parsing. The second return value
// reports whether the hook decided the node's fate: (nil, true) deletes the
// node, (replacement, true) substitutes it, and (_, false) passes it down the
// chain. Hooks run depth-first, children before parents.
type BlockNormalizer interface {
	NormalizeBlock(b doc.Block) (doc.Block, bool)
}

// InlineNormalizer is the inline counterpart of BlockNormalizer.
type InlineNormalizer interface {
	NormalizeInline(in doc.Inline) (doc.Inline, bool)
}

// EditResult is an extension-produced edit outcome: the new source string and
// the selection to re-derive against the new state's map.
type EditResult struct {
	Source    string
	Selection Selection
}

// EditHandler gives an extension first refusal on edit commands, letting it
// implement structural edits the generic text model cannot express (list
// item splitting, renumbering). Returning nil declines.
type EditHandler interface {
	OnEdit(cmd Command, st *State) *EditResult
}
