//go:build windows

package fs

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// IsHidden reports whether FILE_ATTRIBUTE_HIDDEN is set on the file.
func (f *realFS) IsHidden(path string) (bool, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrFileAttributes, err)
	}

	attrs, err := windows.GetFileAttributes(name)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrFileAttributes, path, err)
	}

	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
