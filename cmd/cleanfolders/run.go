package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/lerenn/clean-folders/pkg/cleaner"
	"github.com/lerenn/clean-folders/pkg/config"
	"github.com/lerenn/clean-folders/pkg/dependencies"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/spf13/cobra"
)

const pauseMessage = "Finished, press ENTER to quit"

// settings are the options once flags and configuration file are merged.
type settings struct {
	verbose    bool
	quiet      bool
	reportFile string
	pause      bool
}

func run(cmd *cobra.Command, opts options, deps *dependencies.Dependencies, args []string) error {
	root, err := validateRoot(deps.FS, args)
	if err != nil {
		return err
	}

	if deps.Config == nil {
		deps.WithConfig(config.NewManager(deps.FS, opts.configPath))
	}
	cfg, err := deps.Config.GetConfigWithFallback()
	if err != nil {
		return err
	}

	s, err := resolveSettings(deps, opts, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	log := newLogger(out, s)

	c, err := cleaner.NewCleaner(cleaner.NewCleanerParams{Dependencies: deps.WithLogger(log)})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "** starting %s **\n", root)
	report, runErr := c.Clean(root)
	fmt.Fprintf(out, "** finished %s **\n", root)

	folders, files := report.Deleted()
	log.Logf("deleted %d directories and %d files", folders, files)

	var reportErr error
	if s.reportFile != "" {
		reportErr = cleaner.WriteReport(deps.FS, s.reportFile, report)
	}

	if s.pause {
		if err := deps.Prompt.WaitForEnter(pauseMessage); err != nil {
			log.Debugf("pause: %v", err)
		}
	}

	return errors.Join(runErr, reportErr)
}

func resolveSettings(deps *dependencies.Dependencies, opts options, cfg config.Config) (settings, error) {
	s := settings{
		quiet:      opts.quiet,
		verbose:    !opts.quiet && (opts.verbose || cfg.Verbose),
		reportFile: cfg.ReportFile,
		pause:      cfg.PauseOnExit && !opts.noPause,
	}

	if opts.reportPath != "" {
		path, err := deps.FS.ExpandPath(opts.reportPath)
		if err != nil {
			return settings{}, fmt.Errorf("%w: %w", ErrReportPathExpansion, err)
		}
		s.reportFile = path
	}

	return s, nil
}

func newLogger(out io.Writer, s settings) logger.Logger {
	if s.quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewLogger(out, s.verbose)
}
