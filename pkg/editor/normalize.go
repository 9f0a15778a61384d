package editor

import (
	"strings"

	"github.com/yaklabco/inkwell/pkg/doc"
)

// Normalize runs the post-parse cleanup pass: extension normalizers collapse
// degenerate nodes (an emptied formatting wrapper disappears), and the core
// merges adjacent text nodes and drops empty ones. Hooks run depth-first,
// children before parents, and the first hook to decide a node's fate wins.
// Normalize is idempotent and never mutates its input.
func (rt *Runtime) Normalize(d *doc.Doc) *doc.Doc {
	return &doc.Doc{Blocks: rt.normalizeBlocks(d.Blocks)}
}

func (rt *Runtime) normalizeBlocks(blocks []doc.Block) []doc.Block {
	out := make([]doc.Block, 0, len(blocks))
	for _, b := range blocks {
		if nb, keep := rt.normalizeBlock(b); keep {
			out = append(out, nb)
		}
	}
	return out
}

func (rt *Runtime) normalizeBlock(b doc.Block) (doc.Block, bool) {
	// Children first, into fresh nodes.
	switch v := b.(type) {
	case *doc.Paragraph:
		b = &doc.Paragraph{Content: rt.normalizeInlines(v.Content)}
	case *doc.BlockWrapper:
		b = &doc.BlockWrapper{Kind: v.Kind, Blocks: rt.normalizeBlocks(v.Blocks), Data: v.Data}
	}

	for _, ext := range rt.exts {
		bn, ok := ext.(BlockNormalizer)
		if !ok {
			continue
		}
		if res, decided := bn.NormalizeBlock(b); decided {
			if res == nil {
				return nil, false
			}
			return res, true
		}
	}
	return b, true
}

func (rt *Runtime) normalizeInlines(inlines []doc.Inline) []doc.Inline {
	out := make([]doc.Inline, 0, len(inlines))
	for _, in := range inlines {
		if ni, keep := rt.normalizeInline(in); keep {
			out = append(out, ni)
		}
	}
	return mergeText(out)
}

func (rt *Runtime) normalizeInline(in doc.Inline) (doc.Inline, bool) {
	if w, ok := in.(*doc.InlineWrapper); ok {
		in = &doc.InlineWrapper{Kind: w.Kind, Children: rt.normalizeInlines(w.Children), Data: w.Data}
	}

	for _, ext := range rt.exts {
		nn, ok := ext.(InlineNormalizer)
		if !ok {
			continue
		}
		if res, decided := nn.NormalizeInline(in); decided {
			if res == nil {
				return nil, false
			}
			return res, true
		}
	}
	return in, true
}

// mergeText is the core cleanup rule: adjacent text siblings merge into one
// node and empty text nodes vanish.
func mergeText(inlines []doc.Inline) []doc.Inline {
	out := inlines[:0:0]
	var pending strings.Builder

	flush := func() {
		if pending.Len() > 0 {
			out = append(out, &doc.Text{Text: pending.String()})
			pending.Reset()
		}
	}

	for _, in := range inlines {
		if t, ok := in.(*doc.Text); ok {
			pending.WriteString(t.Text)
			continue
		}
		flush()
		out = append(out, in)
	}
	flush()
	return out
}
