package cleaner

import "fmt"

// Clean prunes folders, sweeps files and prunes folders again below root.
// The passes run against the filesystem as it is at that moment; nothing
// from one pass is handed to the next.
func (c *realCleaner) Clean(root string) (Report, error) {
	report := Report{Root: root, StartedAt: c.now()}

	before, err := c.pruner.Prune(root)
	report.FoldersBefore = &before
	if err != nil {
		return c.finish(report, fmt.Errorf("%w: %w", ErrFoldersBefore, err))
	}

	files, err := c.sweeper.Sweep(root)
	report.Files = &files
	if err != nil {
		return c.finish(report, fmt.Errorf("%w: %w", ErrFiles, err))
	}

	after, err := c.pruner.Prune(root)
	report.FoldersAfter = &after
	if err != nil {
		return c.finish(report, fmt.Errorf("%w: %w", ErrFoldersAfter, err))
	}

	return c.finish(report, nil)
}

func (c *realCleaner) finish(report Report, err error) (Report, error) {
	report.FinishedAt = c.now()
	return report, err
}
