package logging

// Field name constants for structured logging. Constants keep the key
// vocabulary consistent across commands.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldConfig = "config"

	// Document fields.
	FieldSourceLen = "source_len"
	FieldCursorLen = "cursor_len"
	FieldBlocks    = "blocks"

	// Extension fields.
	FieldExtension  = "extension"
	FieldExtensions = "extensions"
	FieldKind       = "kind"

	// Edit fields.
	FieldCommand   = "command"
	FieldSelection = "selection"
	FieldAffinity  = "affinity"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
