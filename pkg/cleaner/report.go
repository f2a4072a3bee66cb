package cleaner

import (
	"fmt"

	"github.com/lerenn/clean-folders/pkg/fs"
	"gopkg.in/yaml.v3"
)

// Deleted returns how many directories and files the run removed.
func (r Report) Deleted() (folders, files int) {
	if r.FoldersBefore != nil {
		folders += len(r.FoldersBefore.Deleted)
	}
	if r.FoldersAfter != nil {
		folders += len(r.FoldersAfter.Deleted)
	}
	if r.Files != nil {
		files = len(r.Files.Deleted)
	}
	return folders, files
}

// WriteReport stores the report as YAML at path, replacing any previous file.
func WriteReport(fsys fs.FS, path string, report Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeReport, err)
	}

	if err := fsys.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteReport, path, err)
	}

	return nil
}
