//go:build unit

package sweeper

import (
	"errors"
	"os"
	"strings"
	"testing"

	fsmocks "github.com/lerenn/clean-folders/pkg/fs/mocks"
	"github.com/lerenn/clean-folders/pkg/logger"
	"github.com/lerenn/clean-folders/pkg/prompt"
	promptmocks "github.com/lerenn/clean-folders/pkg/prompt/mocks"
	"github.com/lerenn/clean-folders/pkg/rules"
	"github.com/lerenn/clean-folders/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newTestSweeper(mockFS *fsmocks.MockFS, mockPrompt *promptmocks.MockPrompter) *realSweeper {
	return &realSweeper{
		fs:      mockFS,
		prompt:  mockPrompt,
		logger:  logger.NewNoopLogger(),
		printer: message.NewPrinter(language.English),
	}
}

// expectFile sets up the metadata lookups for one file.
func expectFile(mockFS *fsmocks.MockFS, path string, size int64, hidden bool) {
	name := path[strings.LastIndex(path, "/")+1:]
	mockFS.EXPECT().Lstat(path).Return(fsmocks.NewFileInfo(name, size, false), nil)
	mockFS.EXPECT().IsHidden(path).Return(hidden, nil)
}

// expectSingleDir sets up a root holding one subdirectory A listing entries.
func expectSingleDir(mockFS *fsmocks.MockFS, entries ...os.DirEntry) {
	mockFS.EXPECT().ReadDir("/root").Return([]os.DirEntry{
		fsmocks.NewDirEntry("root.txt", false),
		fsmocks.NewDirEntry("A", true),
	}, nil)
	mockFS.EXPECT().ReadDir("/root/A").Return(entries, nil).Times(2)
}

func TestNewSweeper(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewSweeper(NewSweeperParams{
		FS:     fsmocks.NewMockFS(ctrl),
		Prompt: promptmocks.NewMockPrompter(ctrl),
	})
	assert.NotNil(t, s)
}

func TestSweeper_Sweep_AppliesRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry(".hidden.jpg", false),
		fsmocks.NewDirEntry("notes.txt", false),
		fsmocks.NewDirEntry("small.jpg", false),
		fsmocks.NewDirEntry("keep.mov", false),
	)
	expectFile(mockFS, "/root/A/.hidden.jpg", 80*1024, true)
	expectFile(mockFS, "/root/A/notes.txt", 80*1024, false)
	expectFile(mockFS, "/root/A/small.jpg", 1024, false)
	expectFile(mockFS, "/root/A/keep.mov", 80*1024, false)

	mockFS.EXPECT().Remove("/root/A/.hidden.jpg").Return(nil)
	mockFS.EXPECT().Remove("/root/A/notes.txt").Return(nil)
	mockPrompt.EXPECT().PromptForKey(gomock.Any()).Return('y', nil)
	mockFS.EXPECT().Remove("/root/A/small.jpg").Return(nil)

	result, err := s.Sweep("/root")
	require.NoError(t, err)
	assert.Equal(t, []Deletion{
		{Path: "/root/A/.hidden.jpg", Reason: ReasonHidden, Size: 80 * 1024},
		{Path: "/root/A/notes.txt", Reason: ReasonExtension, Size: 80 * 1024},
		{Path: "/root/A/small.jpg", Reason: ReasonSize, Size: 1024},
	}, result.Deleted)
	assert.Empty(t, result.Skipped)
}

func TestSweeper_Sweep_SmallFileNeedsExactlyY(t *testing.T) {
	tests := []struct {
		name string
		key  rune
		err  error
	}{
		{name: "n", key: 'n'},
		{name: "uppercase Y", key: 'Y'},
		{name: "empty answer", key: 0},
		{name: "read error", err: prompt.ErrReadInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := fsmocks.NewMockFS(ctrl)
			mockPrompt := promptmocks.NewMockPrompter(ctrl)
			s := newTestSweeper(mockFS, mockPrompt)

			expectSingleDir(mockFS, fsmocks.NewDirEntry("tiny.jpg", false))
			expectFile(mockFS, "/root/A/tiny.jpg", 1000, false)
			mockPrompt.EXPECT().PromptForKey(gomock.Any()).Return(tt.key, tt.err)

			result, err := s.Sweep("/root")
			require.NoError(t, err)
			assert.Empty(t, result.Deleted)
		})
	}
}

func TestSweeper_Sweep_NoPromptForLargeOrUnwanted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("tiny.xmp", false),
		fsmocks.NewDirEntry("big.jpeg", false),
	)
	expectFile(mockFS, "/root/A/tiny.xmp", 10, false)
	expectFile(mockFS, "/root/A/big.jpeg", rules.MinFileSize, false)
	mockFS.EXPECT().Remove("/root/A/tiny.xmp").Return(nil)

	result, err := s.Sweep("/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/A/tiny.xmp"}, result.Paths())
}

func TestSweeper_Sweep_RootWithoutSubdirectories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	// Files directly in root are listed but never inspected
	mockFS.EXPECT().ReadDir("/root").Return([]os.DirEntry{
		fsmocks.NewDirEntry(".hidden", false),
		fsmocks.NewDirEntry("small.jpg", false),
	}, nil)

	result, err := s.Sweep("/root")
	require.NoError(t, err)
	assert.Empty(t, result.Deleted)
}

func TestSweeper_Sweep_InterruptStopsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("a.txt", false),
		fsmocks.NewDirEntry("b.jpg", false),
		fsmocks.NewDirEntry("c.txt", false),
	)
	expectFile(mockFS, "/root/A/a.txt", 10, false)
	expectFile(mockFS, "/root/A/b.jpg", 10, false)
	mockFS.EXPECT().Remove("/root/A/a.txt").Return(nil)
	mockPrompt.EXPECT().PromptForKey(gomock.Any()).Return(rune(0), prompt.ErrInterrupted)

	result, err := s.Sweep("/root")
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.ErrorIs(t, err, prompt.ErrInterrupted)
	assert.Equal(t, []string{"/root/A/a.txt"}, result.Paths())
}

func TestSweeper_Sweep_ContinuesAfterDeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("a.txt", false),
		fsmocks.NewDirEntry("b.txt", false),
	)
	expectFile(mockFS, "/root/A/a.txt", 10, false)
	expectFile(mockFS, "/root/A/b.txt", 10, false)
	mockFS.EXPECT().Remove("/root/A/a.txt").Return(os.ErrPermission)
	mockFS.EXPECT().IsNotExist(os.ErrPermission).Return(false)
	mockFS.EXPECT().Remove("/root/A/b.txt").Return(nil)

	result, err := s.Sweep("/root")
	assert.ErrorIs(t, err, ErrDeleteFile)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, []string{"/root/A/b.txt"}, result.Paths())
}

func TestSweeper_Sweep_FileVanishedBeforeDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("a.txt", false),
		fsmocks.NewDirEntry("b.txt", false),
	)
	expectFile(mockFS, "/root/A/a.txt", 10, false)
	expectFile(mockFS, "/root/A/b.txt", 10, false)
	mockFS.EXPECT().Remove("/root/A/a.txt").Return(os.ErrNotExist)
	mockFS.EXPECT().IsNotExist(os.ErrNotExist).Return(true)
	mockFS.EXPECT().Remove("/root/A/b.txt").Return(nil)

	result, err := s.Sweep("/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/A/b.txt"}, result.Paths())
	assert.Equal(t, []tree.Skip{{
		Path:   "/root/A/a.txt",
		Reason: tree.ReasonVanished,
		Error:  os.ErrNotExist.Error(),
	}}, result.Skipped)
}

func TestSweeper_Sweep_SkipsUnreadableMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("gone.txt", false),
		fsmocks.NewDirEntry("locked.txt", false),
	)
	mockFS.EXPECT().Lstat("/root/A/gone.txt").Return(nil, os.ErrNotExist)
	mockFS.EXPECT().IsNotExist(os.ErrNotExist).Return(true)
	mockFS.EXPECT().Lstat("/root/A/locked.txt").Return(fsmocks.NewFileInfo("locked.txt", 10, false), nil)
	mockFS.EXPECT().IsHidden("/root/A/locked.txt").Return(false, os.ErrPermission)
	mockFS.EXPECT().IsNotExist(os.ErrPermission).Return(false)

	result, err := s.Sweep("/root")
	require.NoError(t, err)
	assert.Empty(t, result.Deleted)
	assert.Equal(t, []tree.Skip{
		{Path: "/root/A/gone.txt", Reason: tree.ReasonVanished, Error: os.ErrNotExist.Error()},
		{Path: "/root/A/locked.txt", Reason: tree.ReasonMetadata, Error: os.ErrPermission.Error()},
	}, result.Skipped)
}

func TestSweeper_Sweep_RootUnreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	s := newTestSweeper(mockFS, promptmocks.NewMockPrompter(ctrl))

	mockFS.EXPECT().ReadDir("/root").Return(nil, errors.New("boom"))

	_, err := s.Sweep("/root")
	assert.ErrorIs(t, err, ErrListDirectories)
	assert.ErrorIs(t, err, tree.ErrReadRoot)
}

func TestSweeper_Sweep_LogsCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockPrompt := promptmocks.NewMockPrompter(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	s := newTestSweeper(mockFS, mockPrompt)
	s.logger = mockLogger

	expectSingleDir(mockFS,
		fsmocks.NewDirEntry("clip.lrv", false),
		fsmocks.NewDirEntry("tiny.jpg", false),
	)
	expectFile(mockFS, "/root/A/clip.lrv", 10, false)
	expectFile(mockFS, "/root/A/tiny.jpg", 12345, false)
	mockFS.EXPECT().Remove("/root/A/clip.lrv").Return(nil)
	size := s.formatSize(12345)
	mockPrompt.EXPECT().PromptForKey("  candidate [" + size + " B] /root/A/tiny.jpg\n  press y to delete ").Return('y', nil)
	mockFS.EXPECT().Remove("/root/A/tiny.jpg").Return(nil)

	gomock.InOrder(
		mockLogger.EXPECT().Logf(" cleaning files for %s", "/root"),
		mockLogger.EXPECT().Logf("  deleting [%s] %s", ReasonExtension, "/root/A/clip.lrv"),
		mockLogger.EXPECT().Logf("  deleting [%s B] %s", size, "/root/A/tiny.jpg"),
	)

	_, err := s.Sweep("/root")
	require.NoError(t, err)
}

func TestSweeper_FormatSize(t *testing.T) {
	s := newTestSweeper(nil, nil)

	assert.Equal(t, "12,345", strings.TrimSpace(s.formatSize(12345)))
	assert.Equal(t, "1,048,576", strings.TrimSpace(s.formatSize(1<<20)))
	assert.Equal(t, "0", strings.TrimSpace(s.formatSize(0)))
}
