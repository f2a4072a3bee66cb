package sweeper

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/clean-folders/pkg/prompt"
	"github.com/lerenn/clean-folders/pkg/tree"
)

// Sweep deletes unwanted files found in the subdirectories of root.
//
// Hidden files and files with a non-allowlisted extension are deleted
// straight away. Small media files are deleted only when the prompt answers
// 'y'. Deletion failures are collected and the pass goes on; an interrupted
// prompt stops the pass.
func (s *realSweeper) Sweep(root string) (Result, error) {
	s.logger.Logf(" cleaning files for %s", root)

	dirs, skipped, err := tree.Subdirectories(s.fs, root)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrListDirectories, err)
	}

	result := Result{
		Deleted: make([]Deletion, 0),
		Skipped: skipped,
	}

	var errs []error
	for _, dir := range dirs {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			s.skip(&result, tree.NewSkip(s.fs, dir, tree.ReasonUnreadable, err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			candidate, err := s.candidate(path)
			if err != nil {
				s.skip(&result, tree.NewSkip(s.fs, path, tree.ReasonMetadata, err))
				continue
			}

			if err := s.process(candidate, &result); err != nil {
				if errors.Is(err, ErrInterrupted) {
					return result, errors.Join(append(errs, err)...)
				}
				errs = append(errs, err)
			}
		}
	}

	return result, errors.Join(errs...)
}

func (s *realSweeper) candidate(path string) (Candidate, error) {
	info, err := s.fs.Lstat(path)
	if err != nil {
		return Candidate{}, err
	}

	hidden, err := s.fs.IsHidden(path)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Path: path, Size: info.Size(), Hidden: hidden}, nil
}

func (s *realSweeper) process(c Candidate, result *Result) error {
	switch verdict := Classify(c); verdict {
	case DeleteHidden, DeleteExtension:
		s.logger.Logf("  deleting [%s] %s", verdict.String(), c.Path)
		return s.delete(c, verdict.String(), result)

	case Confirm:
		size := s.formatSize(c.Size)
		key, err := s.prompt.PromptForKey(fmt.Sprintf("  candidate [%s B] %s\n  press y to delete ", size, c.Path))
		switch {
		case errors.Is(err, prompt.ErrInterrupted):
			return fmt.Errorf("%w at %s: %w", ErrInterrupted, c.Path, err)
		case err != nil:
			s.logger.Debugf("  no answer for %s: %v", c.Path, err)
			return nil
		case key != ConfirmKey:
			s.logger.Debugf("  keeping %s", c.Path)
			return nil
		}

		s.logger.Logf("  deleting [%s B] %s", size, c.Path)
		return s.delete(c, verdict.String(), result)

	default:
		s.logger.Debugf("  keeping %s", c.Path)
		return nil
	}
}

func (s *realSweeper) delete(c Candidate, reason string, result *Result) error {
	if err := s.fs.Remove(c.Path); err != nil {
		if s.fs.IsNotExist(err) {
			s.skip(result, tree.Skip{Path: c.Path, Reason: tree.ReasonVanished, Error: err.Error()})
			return nil
		}
		s.logger.Logf("  failed to delete %s: %v", c.Path, err)
		return fmt.Errorf("%w %s: %w", ErrDeleteFile, c.Path, err)
	}

	result.Deleted = append(result.Deleted, Deletion{Path: c.Path, Reason: reason, Size: c.Size})
	return nil
}

func (s *realSweeper) skip(result *Result, skip tree.Skip) {
	s.logger.Debugf("  skipping [%s] %s", skip.Reason, skip.Path)
	result.Skipped = append(result.Skipped, skip)
}

// formatSize renders a byte count right-aligned on nine columns with
// thousands separators.
func (s *realSweeper) formatSize(size int64) string {
	return s.printer.Sprintf("%9d", size)
}
