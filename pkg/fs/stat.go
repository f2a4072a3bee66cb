package fs

import (
	"errors"
	"os"
)

// Exists checks if a file or directory exists at the given path.
// Symbolic links are followed.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case f.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsDir checks if the path is a directory, following symbolic links.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().IsDir(), nil
}

// Lstat returns file metadata without following symbolic links.
func (f *realFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
