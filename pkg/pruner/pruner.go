// Package pruner removes junk-named and empty directories below a root,
// deepest first.
package pruner

import (
	"github.com/lerenn/clean-folders/pkg/fs"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/lerenn/clean-folders/pkg/tree"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=pruner.go -destination=mocks/pruner.gen.go -package=mocks

// Deletion reasons.
const (
	// ReasonName marks a directory removed with its contents because of its name.
	ReasonName = "name"
	// ReasonEmpty marks a directory removed because it had no entries left.
	ReasonEmpty = "empty"
)

// Pruner interface provides directory pruning.
type Pruner interface {
	// Prune deletes junk-named and empty subdirectories of root.
	// Root itself is never deleted.
	Prune(root string) (Result, error)
}

// Deletion is a directory removed by a pruning pass.
type Deletion struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
}

// Result lists what a pruning pass removed and what it could not inspect.
type Result struct {
	Deleted []Deletion  `yaml:"deleted"`
	Skipped []tree.Skip `yaml:"skipped,omitempty"`
}

// Paths returns the deleted directory paths in deletion order.
func (r Result) Paths() []string {
	paths := make([]string, 0, len(r.Deleted))
	for _, d := range r.Deleted {
		paths = append(paths, d.Path)
	}
	return paths
}

// NewPrunerParams contains parameters for creating a new Pruner instance.
type NewPrunerParams struct {
	FS     fs.FS
	Logger logger.Logger
}

type realPruner struct {
	fs     fs.FS
	logger logger.Logger
}

// NewPruner creates a new Pruner instance.
func NewPruner(params NewPrunerParams) Pruner {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &realPruner{
		fs:     params.FS,
		logger: l,
	}
}
