// Package fsutil provides filesystem helpers for safe file replacement.
package fsutil

import "os"

// AtomicWriteFile writes data to path by writing a temporary sibling file
// and renaming it over the target. A crash mid-write leaves the original
// untouched; the rename is atomic on POSIX systems. The temporary file is
// removed on any failure.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return nil
}
