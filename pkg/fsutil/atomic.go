package fsutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the original path for sidecar backups.
const BackupSuffix = ".inkwell.bak"

// WriteAtomic writes content to path via a temp file in the same directory
// followed by a rename. On error the temp file is removed and the original
// file is untouched. A zero mode means DefaultFileMode.
func WriteAtomic(path string, content []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	committed = true
	return nil
}

// WriteAtomicIfChanged writes only when content differs from what is on
// disk. Returns true if the file was written.
func WriteAtomicIfChanged(path string, content []byte, mode os.FileMode) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read existing: %w", err)
	}
	if err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := WriteAtomic(path, content, mode); err != nil {
		return false, err
	}
	return true, nil
}

// CreateBackup copies path to its sidecar backup unless one already exists.
// Idempotence keeps repeated runs from clobbering the original content.
// Returns true if a backup was created.
func CreateBackup(path string) (bool, error) {
	backupPath := path + BackupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	content, mode, err := ReadFile(path)
	if err != nil {
		return false, err
	}
	if err := WriteAtomic(backupPath, content, mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
