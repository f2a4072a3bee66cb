package config

import (
	"fmt"

	"github.com/lerenn/clean-folders/pkg/fs"
)

// Config represents the application configuration.
type Config struct {
	// PauseOnExit waits for ENTER once the run is over.
	PauseOnExit bool `yaml:"pause_on_exit"`
	// Verbose also logs kept and skipped entries.
	Verbose bool `yaml:"verbose"`
	// ReportFile, when set, receives a YAML report of every run.
	ReportFile string `yaml:"report_file"`
}

// expandTildes expands ~ in configuration paths.
func (c *Config) expandTildes(fsys fs.FS) error {
	if c.ReportFile == "" {
		return nil
	}

	expanded, err := fsys.ExpandPath(c.ReportFile)
	if err != nil {
		return fmt.Errorf("%w: report_file: %w", ErrInvalidConfig, err)
	}
	c.ReportFile = expanded

	return nil
}
