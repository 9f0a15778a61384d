package extensions

import "github.com/yaklabco/inkwell/pkg/editor"

// Default returns the built-in extensions in registration order.
//
// The order is load-bearing: when two extensions could claim the same
// source position, the earlier one wins. Code spans come first so their
// contents stay literal, strong ("**") precedes emphasis ("*") so the
// longer delimiter is tried before its prefix, and images ("![") precede
// links ("[") for the same reason.
func Default() []editor.Extension {
	return []editor.Extension{
		// Inline grammar
		NewCodeSpan(),
		NewStrong(),
		NewEmphasis(),
		NewUnderline(),
		NewStrike(),
		NewImage(),
		NewLink(),

		// Block grammar
		NewCodeBlock(),
		NewBlockquote(),
		NewList(),
	}
}
