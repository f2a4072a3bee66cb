package fs

import "os"

// Remove deletes a file or an empty directory. A directory that still has
// entries is left in place and an error is returned.
func (f *realFS) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll deletes path and everything below it. A missing path is not an error.
func (f *realFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
