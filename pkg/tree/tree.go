// Package tree enumerates the subdirectories of a root through the fs capability.
package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/clean-folders/pkg/fs"
)

// Skip reasons.
const (
	ReasonUnreadable = "unreadable"
	ReasonVanished   = "vanished"
	ReasonMetadata   = "metadata"
)

// Skip records a path that could not be inspected and was left alone.
type Skip struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
	Error  string `yaml:"error,omitempty"`
}

// NewSkip builds a Skip, classifying vanished paths apart from other failures.
func NewSkip(fsys fs.FS, path, reason string, err error) Skip {
	if err != nil && fsys.IsNotExist(err) {
		reason = ReasonVanished
	}

	skip := Skip{Path: path, Reason: reason}
	if err != nil {
		skip.Error = err.Error()
	}
	return skip
}

// Subdirectories returns every directory below root, at any depth, root excluded.
// Symbolic links are not followed. A subdirectory that cannot be listed is
// left out together with its whole subtree and reported in the skip list.
// Failing to list root itself is an error.
func Subdirectories(fsys fs.FS, root string) ([]string, []Skip, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrReadRoot, root, err)
	}

	dirs := make([]string, 0, 64)
	skipped := make([]Skip, 0)

	pending := childDirs(root, entries)
	for len(pending) > 0 {
		dir := pending[0]
		pending = pending[1:]

		children, err := fsys.ReadDir(dir)
		if err != nil {
			skipped = append(skipped, NewSkip(fsys, dir, ReasonUnreadable, err))
			continue
		}
		dirs = append(dirs, dir)
		pending = append(pending, childDirs(dir, children)...)
	}

	return dirs, skipped, nil
}

func childDirs(parent string, entries []os.DirEntry) []string {
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(parent, e.Name()))
		}
	}
	return dirs
}
