package editor

import "github.com/yaklabco/inkwell/pkg/doc"

// Command is an edit request expressed in cursor space. The union is open:
// the core recognizes the generic commands below, and any other type is
// meaningful only to whichever extension's OnEdit claims it.
type Command interface {
	// CommandName is the command's tag, used for dispatch diagnostics.
	CommandName() string
}

// Insert replaces the current selection with literal text.
type Insert struct {
	Text string
}

// DeleteBackward deletes the selection, or the one cursor unit before a
// collapsed caret. At offset 0 it is a no-op.
type DeleteBackward struct{}

// DeleteForward deletes the selection, or the one cursor unit after a
// collapsed caret. At the end of the document it is a no-op.
type DeleteForward struct{}

// InsertLineBreak splits the current block at the selection.
type InsertLineBreak struct{}

// ToggleInline toggles an inline wrapper of the given kind over the
// selection: unwrap when the whole selection already sits inside one, wrap
// (splitting partial overlaps) otherwise.
type ToggleInline struct {
	Kind doc.Kind
}

func (Insert) CommandName() string          { return "insert" }
func (DeleteBackward) CommandName() string  { return "delete-backward" }
func (DeleteForward) CommandName() string   { return "delete-forward" }
func (InsertLineBreak) CommandName() string { return "insert-line-break" }
func (ToggleInline) CommandName() string    { return "toggle-inline" }
