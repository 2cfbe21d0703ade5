// Package filesystem implements ports.Filesystem on the local OS.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// FS is the os-backed filesystem adapter.
type FS struct{}

// New creates a new local filesystem adapter.
func New() *FS {
	return &FS{}
}

// Exists reports whether path exists.
func (f *FS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Move renames oldPath to newPath. A cross-device rename falls back to
// copy then remove. The target must not already exist.
func (f *FS) Move(oldPath, newPath string) error {
	if _, err := os.Lstat(newPath); err == nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: os.ErrExist}
	}

	err := os.Rename(oldPath, newPath)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyAndRemove(oldPath, newPath)
	}
	return err
}

// MkdirAll creates dir and any missing parents.
func (f *FS) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// copyAndRemove moves a file across filesystems. The copy is exclusive so
// a file appearing at the target mid-move still fails cleanly.
func copyAndRemove(oldPath, newPath string) error {
	info, err := os.Stat(oldPath)
	if err != nil {
		return err
	}

	src, err := os.Open(oldPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(newPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(newPath)
		return fmt.Errorf("copy to %s: %w", newPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(newPath)
		return err
	}

	return os.Remove(oldPath)
}
