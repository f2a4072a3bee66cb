// Package main provides the command-line interface for cleanfolders.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/lerenn/clean-folders/pkg/dependencies"
	"github.com/lerenn/clean-folders/pkg/rules"
	"github.com/spf13/cobra"
)

// options holds the command-line flags.
type options struct {
	quiet      bool
	verbose    bool
	configPath string
	reportPath string
	noPause    bool
}

func newRootCmd(deps *dependencies.Dependencies) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "cleanfolders <root>",
		Short: "Clean derived data and leftovers out of a media folder tree",
		Long: fmt.Sprintf(`Clean a media folder tree in three passes.

First, directories whose name ends with one of
  %s
are deleted with their contents, and empty directories are removed deepest
first. Then files in every subdirectory are swept: hidden files and files that
are not .m4v, .m4a, .mov, .jpeg or .jpg are deleted, and media files under
%d bytes are deleted after answering 'y'. Finally directories left empty by
the sweep are removed. Files directly in <root> are never touched.

Examples:
  cleanfolders /media/footage
  cleanfolders --no-pause --report ~/cleanfolders.yaml /media/footage`,
			strings.Join(rules.JunkSuffixes(), ", "), rules.MinFileSize),
		Args:          exactlyOneRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, deps, args)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress output (prompts are still shown)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Also report kept and skipped entries")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.Flags().StringVar(&opts.reportPath, "report", "", "Write a YAML report of the run to this file")
	rootCmd.Flags().BoolVar(&opts.noPause, "no-pause", false, "Exit without waiting for ENTER")

	return rootCmd
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(dependencies.New())); err != nil {
		os.Exit(1)
	}
}
