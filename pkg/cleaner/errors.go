package cleaner

import "errors"

// Error definitions for cleaner package.
var (
	ErrDependencies  = errors.New("missing dependencies")
	ErrFoldersBefore = errors.New("folder pass before file sweep failed")
	ErrFiles         = errors.New("file sweep failed")
	ErrFoldersAfter  = errors.New("folder pass after file sweep failed")
	ErrWriteReport   = errors.New("failed to write report")
	ErrEncodeReport  = errors.New("failed to encode report")
)
