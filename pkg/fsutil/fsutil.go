// Package fsutil provides the file-handling primitives behind in-place
// formatting: safe reads, atomic writes, and sidecar backups.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for callers that need to distinguish failure modes.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("path is a directory")
)

// DefaultFileMode is used for files created from scratch.
const DefaultFileMode os.FileMode = 0o644

// ReadFile reads a regular file and returns its content and mode. The mode
// is fed back into WriteAtomic so formatting preserves permissions.
func ReadFile(path string) ([]byte, os.FileMode, error) {
	stat, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	case stat.IsDir():
		return nil, 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	return content, stat.Mode().Perm(), nil
}
