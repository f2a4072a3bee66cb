// Package rules holds the fixed cleaning rules and the path depth ordering
// shared by the folder pruner and the file sweeper.
package rules

import (
	"path/filepath"
	"strings"
)

// MinFileSize is the smallest size, in bytes, a file can have without being
// offered for deletion.
const MinFileSize int64 = 50 * 1024

// junkSuffixes are matched, lowercased, against the end of a directory path.
var junkSuffixes = []string{
	"cache",
	"thumbnails",
	"stabilization",
	"waveforms",
	"peaks data",
	"thumbnail media",
	"quicklook",
}

// JunkSuffixes returns a copy of the directory suffixes that mark derived data.
func JunkSuffixes() []string {
	return append([]string(nil), junkSuffixes...)
}

// IsJunkDir reports whether the directory path ends, case-insensitively,
// with one of the junk suffixes. The whole path is matched, not only the
// base name, so "Render Cache" and "mycache" both qualify.
func IsJunkDir(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range junkSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// IsAllowedExtension reports whether the file extension is one of the kept
// media types.
func IsAllowedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4v", ".m4a", ".mov", ".jpeg", ".jpg":
		return true
	default:
		return false
	}
}

// IsSmall reports whether size is below MinFileSize.
func IsSmall(size int64) bool {
	return size < MinFileSize
}
