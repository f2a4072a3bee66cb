package pruner

import (
	"errors"
	"fmt"

	"github.com/lerenn/clean-folders/pkg/rules"
	"github.com/lerenn/clean-folders/pkg/tree"
)

// Prune deletes junk-named and empty subdirectories of root.
//
// Directories are visited deepest first, so by the time a directory is
// checked for emptiness every directory below it has already been handled.
// A failed deletion does not stop the pass: the remaining directories are
// still processed and the failures are returned joined, next to the partial
// result.
func (p *realPruner) Prune(root string) (Result, error) {
	p.logger.Logf(" cleaning directories for %s", root)

	dirs, skipped, err := tree.Subdirectories(p.fs, root)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrListDirectories, err)
	}
	rules.SortByDepthDescending(dirs)

	result := Result{
		Deleted: make([]Deletion, 0),
		Skipped: skipped,
	}

	var errs []error
	for _, dir := range dirs {
		if rules.IsJunkDir(dir) {
			if err := p.delete(dir, ReasonName, p.fs.RemoveAll, &result); err != nil {
				errs = append(errs, err)
			}
			continue
		}

		entries, err := p.fs.ReadDir(dir)
		if err != nil {
			skip := tree.NewSkip(p.fs, dir, tree.ReasonUnreadable, err)
			p.logger.Debugf("  skipping [%s] %s", skip.Reason, dir)
			result.Skipped = append(result.Skipped, skip)
			continue
		}

		if len(entries) > 0 {
			p.logger.Debugf("  keeping %s", dir)
			continue
		}

		if err := p.delete(dir, ReasonEmpty, p.fs.Remove, &result); err != nil {
			errs = append(errs, err)
		}
	}

	return result, errors.Join(errs...)
}

func (p *realPruner) delete(dir, reason string, remove func(string) error, result *Result) error {
	p.logger.Logf("  deleting [%s] %s", reason, dir)

	if err := remove(dir); err != nil {
		if p.fs.IsNotExist(err) {
			skip := tree.Skip{Path: dir, Reason: tree.ReasonVanished, Error: err.Error()}
			p.logger.Debugf("  skipping [%s] %s", skip.Reason, dir)
			result.Skipped = append(result.Skipped, skip)
			return nil
		}
		p.logger.Logf("  failed to delete %s: %v", dir, err)
		return fmt.Errorf("%w %s: %w", ErrDeleteDirectory, dir, err)
	}

	result.Deleted = append(result.Deleted, Deletion{Path: dir, Reason: reason})
	return nil
}
