package rules

import (
	"os"
	"slices"
)

// Depth returns the number of path separators in path, or -1 for the empty path.
// On Windows both '\' and '/' count.
func Depth(path string) int {
	if path == "" {
		return -1
	}

	n := 0
	for i := 0; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			n++
		}
	}
	return n
}

// CompareByDepth orders a before b when a is shallower.
func CompareByDepth(a, b string) int {
	return Depth(a) - Depth(b)
}

// SortByDepthDescending sorts paths in place so that deeper paths come first.
// Paths of equal depth keep their relative order.
func SortByDepthDescending(paths []string) {
	slices.SortStableFunc(paths, func(a, b string) int {
		return CompareByDepth(b, a)
	})
}
