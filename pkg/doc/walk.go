package doc

// WalkBlocks visits every block in the document in depth-first order,
// descending into wrappers. Visiting stops at the first error, which is
// returned.
func WalkBlocks(d *Doc, fn func(Block) error) error {
	if d == nil {
		return nil
	}
	return walkBlockList(d.Blocks, fn)
}

func walkBlockList(blocks []Block, fn func(Block) error) error {
	for _, b := range blocks {
		if err := fn(b); err != nil {
			return err
		}
		if w, ok := b.(*BlockWrapper); ok {
			if err := walkBlockList(w.Blocks, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkInlines visits every inline under the given inline list in depth-first
// order, descending into wrappers.
func WalkInlines(inlines []Inline, fn func(Inline) error) error {
	for _, in := range inlines {
		if err := fn(in); err != nil {
			return err
		}
		if w, ok := in.(*InlineWrapper); ok {
			if err := WalkInlines(w.Children, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// PlainText returns the visible text of the inline list, ignoring atoms and
// descending through wrappers.
func PlainText(inlines []Inline) string {
	var out []byte
	//nolint:errcheck // the visitor never fails
	WalkInlines(inlines, func(in Inline) error {
		if t, ok := in.(*Text); ok {
			out = append(out, t.Text...)
		}
		return nil
	})
	return string(out)
}
