package mocks

import (
	"io/fs"
	"os"
	"time"
)

// NewDirEntry returns a directory entry suitable for ReadDir expectations.
func NewDirEntry(name string, isDir bool) os.DirEntry {
	return fs.FileInfoToDirEntry(NewFileInfo(name, 0, isDir))
}

// NewFileInfo returns file metadata suitable for Lstat expectations.
func NewFileInfo(name string, size int64, isDir bool) os.FileInfo {
	return fileInfo{name: name, size: size, isDir: isDir}
}

type fileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (i fileInfo) Name() string { return i.name }
func (i fileInfo) Size() int64  { return i.size }

func (i fileInfo) Mode() fs.FileMode {
	if i.isDir {
		return fs.ModeDir | 0755
	}
	return 0644
}

func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.isDir }
func (i fileInfo) Sys() any           { return nil }
