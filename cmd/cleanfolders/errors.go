package main

import "errors"

// Error definitions for the root argument.
var (
	ErrArgumentCount       = errors.New("expected exactly one argument, the root directory")
	ErrRootEmpty           = errors.New("root directory path is empty")
	ErrRootTrailingSep     = errors.New("root directory path ends with a path separator")
	ErrRootNotFound        = errors.New("root directory does not exist")
	ErrRootNotDirectory    = errors.New("root path is not a directory")
	ErrRootCheck           = errors.New("failed to check root directory")
	ErrReportPathExpansion = errors.New("failed to resolve report path")
)
