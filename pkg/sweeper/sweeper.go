// Package sweeper deletes unwanted files from the subdirectories of a root:
// hidden files, files outside the media allowlist and, once confirmed, small files.
package sweeper

import (
	"github.com/lerenn/clean-folders/pkg/fs"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/lerenn/clean-folders/pkg/prompt"
	"github.com/lerenn/clean-folders/pkg/tree"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=sweeper.go -destination=mocks/sweeper.gen.go -package=mocks

// Deletion reasons.
const (
	ReasonHidden    = "hidden"
	ReasonExtension = "extension"
	ReasonSize      = "size"
)

// ConfirmKey is the only answer that deletes a small file.
const ConfirmKey = 'y'

// Sweeper interface provides file sweeping.
type Sweeper interface {
	// Sweep deletes unwanted files found in the subdirectories of root.
	// Files placed directly in root are never considered.
	Sweep(root string) (Result, error)
}

// Deletion is a file removed by a sweeping pass.
type Deletion struct {
	Path   string `yaml:"path"`
	Reason string `yaml:"reason"`
	Size   int64  `yaml:"size"`
}

// Result lists what a sweeping pass removed and what it could not inspect.
type Result struct {
	Deleted []Deletion  `yaml:"deleted"`
	Skipped []tree.Skip `yaml:"skipped,omitempty"`
}

// Paths returns the deleted file paths in deletion order.
func (r Result) Paths() []string {
	paths := make([]string, 0, len(r.Deleted))
	for _, d := range r.Deleted {
		paths = append(paths, d.Path)
	}
	return paths
}

// NewSweeperParams contains parameters for creating a new Sweeper instance.
type NewSweeperParams struct {
	FS     fs.FS
	Prompt prompt.Prompter
	Logger logger.Logger
}

type realSweeper struct {
	fs      fs.FS
	prompt  prompt.Prompter
	logger  logger.Logger
	printer *message.Printer
}

// NewSweeper creates a new Sweeper instance.
func NewSweeper(params NewSweeperParams) Sweeper {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	p := params.Prompt
	if p == nil {
		p = prompt.NewPrompt()
	}

	return &realSweeper{
		fs:      params.FS,
		prompt:  p,
		logger:  l,
		printer: message.NewPrinter(language.English),
	}
}
