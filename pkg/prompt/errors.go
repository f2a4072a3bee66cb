// Package prompt provides interactive prompt functionality for the cleaner.
package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrReadInput   = errors.New("failed to read user input")
	ErrInterrupted = errors.New("interrupted by user")
)
