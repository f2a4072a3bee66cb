// Package dependencies provides a centralized dependency container for the cleaner.
package dependencies

import (
	"errors"

	"github.com/lerenn/clean-folders/pkg/config"
	"github.com/lerenn/clean-folders/pkg/fs"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/lerenn/clean-folders/pkg/prompt"
	"github.com/lerenn/clean-folders/pkg/pruner"
	"github.com/lerenn/clean-folders/pkg/sweeper"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing              = errors.New("fs dependency is required but not set")
	ErrLoggerMissing          = errors.New("logger dependency is required but not set")
	ErrPromptMissing          = errors.New("prompt dependency is required but not set")
	ErrPrunerProviderMissing  = errors.New("pruner provider dependency is required but not set")
	ErrSweeperProviderMissing = errors.New("sweeper provider dependency is required but not set")
)

// PrunerProvider builds the folder pruner.
type PrunerProvider func(params pruner.NewPrunerParams) pruner.Pruner

// SweeperProvider builds the file sweeper.
type SweeperProvider func(params sweeper.NewSweeperParams) sweeper.Sweeper

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS              fs.FS
	Config          config.Manager
	Logger          logger.Logger
	Prompt          prompt.Prompter
	PrunerProvider  PrunerProvider
	SweeperProvider SweeperProvider
}

// New creates a new Dependencies instance with sensible defaults.
// Config is left nil: its path is only known once flags are parsed.
func New() *Dependencies {
	return &Dependencies{
		FS:              fs.NewFS(),
		Logger:          logger.NewNoopLogger(),
		Prompt:          prompt.NewPrompt(),
		PrunerProvider:  pruner.NewPruner,
		SweeperProvider: sweeper.NewSweeper,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithPrunerProvider sets the pruner provider and returns the instance for chaining.
func (d *Dependencies) WithPrunerProvider(p PrunerProvider) *Dependencies {
	d.PrunerProvider = p
	return d
}

// WithSweeperProvider sets the sweeper provider and returns the instance for chaining.
func (d *Dependencies) WithSweeperProvider(p SweeperProvider) *Dependencies {
	d.SweeperProvider = p
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that every dependency the cleaning passes need is set.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Prompt == nil, ErrPromptMissing},
		{d.PrunerProvider == nil, ErrPrunerProviderMissing},
		{d.SweeperProvider == nil, ErrSweeperProviderMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
