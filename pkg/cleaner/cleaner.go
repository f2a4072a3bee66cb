// Package cleaner runs the cleaning passes over a root directory: folders,
// then files, then folders again to reclaim directories emptied by the file pass.
package cleaner

import (
	"fmt"
	"time"

	"github.com/lerenn/clean-folders/pkg/dependencies"
	"github.com/lerenn/clean-folders/pkg/pruner"
	"github.com/lerenn/clean-folders/pkg/sweeper"
)

// Cleaner interface provides the full cleaning run.
type Cleaner interface {
	// Clean prunes folders, sweeps files and prunes folders again below root.
	// A failing pass stops the run; the report holds what completed.
	Clean(root string) (Report, error)
}

// Report is the outcome of a cleaning run. A pass that did not run is nil.
type Report struct {
	Root          string          `yaml:"root"`
	StartedAt     time.Time       `yaml:"started_at"`
	FinishedAt    time.Time       `yaml:"finished_at"`
	FoldersBefore *pruner.Result  `yaml:"folders_before,omitempty"`
	Files         *sweeper.Result `yaml:"files,omitempty"`
	FoldersAfter  *pruner.Result  `yaml:"folders_after,omitempty"`
}

// NewCleanerParams contains parameters for creating a new Cleaner instance.
type NewCleanerParams struct {
	Dependencies *dependencies.Dependencies
}

type realCleaner struct {
	pruner  pruner.Pruner
	sweeper sweeper.Sweeper
	now     func() time.Time
}

// NewCleaner creates a new Cleaner instance from the shared dependencies.
func NewCleaner(params NewCleanerParams) (Cleaner, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDependencies, err)
	}

	return &realCleaner{
		pruner: deps.PrunerProvider(pruner.NewPrunerParams{
			FS:     deps.FS,
			Logger: deps.Logger,
		}),
		sweeper: deps.SweeperProvider(sweeper.NewSweeperParams{
			FS:     deps.FS,
			Prompt: deps.Prompt,
			Logger: deps.Logger,
		}),
		now: time.Now,
	}, nil
}
