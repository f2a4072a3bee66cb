package pruner

import "errors"

// Error definitions for pruner package.
var (
	ErrListDirectories = errors.New("failed to list directories")
	ErrDeleteDirectory = errors.New("failed to delete directory")
)
