package sweeper

import "errors"

// Error definitions for sweeper package.
var (
	ErrListDirectories = errors.New("failed to list directories")
	ErrDeleteFile      = errors.New("failed to delete file")
	ErrInterrupted     = errors.New("sweep interrupted")
)
