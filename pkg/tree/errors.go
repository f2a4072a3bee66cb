package tree

import "errors"

// Error definitions for tree package.
var (
	ErrReadRoot = errors.New("failed to list root directory")
)
