//go:build !windows

package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// IsHidden reports whether the file is hidden.
// Unix systems have no hidden attribute, the leading dot convention is used instead.
func (f *realFS) IsHidden(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		return false, err
	}
	return strings.HasPrefix(filepath.Base(path), "."), nil
}
