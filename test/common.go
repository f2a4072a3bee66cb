//go:build e2e

package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/clean-folders/pkg/cleaner"
	"github.com/lerenn/clean-folders/pkg/dependencies"
	"github.com/lerenn/clean-folders/pkg/fs"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/stretchr/testify/require"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir string
	Root    string
}

// setupTestEnvironment creates a temporary folder tree root
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	root := filepath.Join(tempDir, "footage")
	require.NoError(t, os.MkdirAll(root, 0755))

	return &TestSetup{
		TempDir: tempDir,
		Root:    root,
	}
}

// path returns the absolute path of a slash-separated path below root.
func (s *TestSetup) path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// mkdir creates directories below root.
func (s *TestSetup) mkdir(t *testing.T, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		require.NoError(t, os.MkdirAll(s.path(rel), 0755))
	}
}

// writeFile creates a file of the given size below root.
func (s *TestSetup) writeFile(t *testing.T, rel string, size int) {
	t.Helper()
	path := s.path(rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

// scriptedPrompt answers confirmation prompts with a fixed key and counts them.
type scriptedPrompt struct {
	key      rune
	messages []string
}

func (p *scriptedPrompt) PromptForKey(message string) (rune, error) {
	p.messages = append(p.messages, message)
	return p.key, nil
}

func (p *scriptedPrompt) WaitForEnter(string) error { return nil }

// cleanParams contains parameters for clean.
type cleanParams struct {
	Setup  *TestSetup
	Answer rune
}

// clean runs a full cleaning over the setup root and returns the prompts shown.
func clean(t *testing.T, params cleanParams) (cleaner.Report, []string, error) {
	t.Helper()

	p := &scriptedPrompt{key: params.Answer}
	c, err := cleaner.NewCleaner(cleaner.NewCleanerParams{
		Dependencies: dependencies.New().
			WithFS(fs.NewFS()).
			WithPrompt(p).
			WithLogger(logger.NewNoopLogger()),
	})
	require.NoError(t, err)

	report, err := c.Clean(params.Setup.Root)
	return report, p.messages, err
}
