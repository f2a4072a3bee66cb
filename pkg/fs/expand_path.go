package fs

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands ~ to user's home directory.
func (f *realFS) ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPathResolution, err)
	}
	return expanded, nil
}
