package main

import (
	"fmt"
	"os"

	"github.com/lerenn/clean-folders/pkg/fs"
	"github.com/spf13/cobra"
)

func exactlyOneRoot(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: got %d", ErrArgumentCount, len(args))
	}
	return nil
}

// validateRoot checks the root argument before anything is deleted.
func validateRoot(fsys fs.FS, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w: got %d", ErrArgumentCount, len(args))
	}

	root := args[0]
	if root == "" {
		return "", ErrRootEmpty
	}

	if os.IsPathSeparator(root[len(root)-1]) {
		return "", fmt.Errorf("%w: %s", ErrRootTrailingSep, root)
	}

	exists, err := fsys.Exists(root)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRootCheck, root, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	isDir, err := fsys.IsDir(root)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRootCheck, root, err)
	}
	if !isDir {
		return "", fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	return root, nil
}
