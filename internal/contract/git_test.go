package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitLog(t *testing.T) {
	t.Run("well formed log", func(t *testing.T) {
		out := []byte(`a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2|Alice|2026-03-10T14:00:00+00:00
b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3|Bob|2026-03-08T09:30:00+00:00`)
		commits := ParseCommitLog(out)
		require.Len(t, commits, 2)
		assert.Equal(t, "Alice", commits[0].Author)
		assert.Equal(t, "Bob", commits[1].Author)
		assert.True(t, commits[0].When.After(commits[1].When))
	})

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseCommitLog([]byte("")))
		assert.Empty(t, ParseCommitLog([]byte("\n\n")))
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		out := []byte(`garbage line
a1b2c3d|Alice|2026-03-10T14:00:00+00:00
deadbeef|Mallory|not-a-date`)
		commits := ParseCommitLog(out)
		require.Len(t, commits, 1)
		assert.Equal(t, "a1b2c3d", commits[0].Hash)
	})

	t.Run("author names containing pipes", func(t *testing.T) {
		// SplitN keeps the date intact; the middle segment absorbs nothing
		// extra because the hash never contains a pipe.
		out := []byte("abc123|Weird|2026-01-01T00:00:00+00:00")
		commits := ParseCommitLog(out)
		require.Len(t, commits, 1)
		assert.Equal(t, "Weird", commits[0].Author)
	})
}

func TestParseBranchList(t *testing.T) {
	out := []byte(`* main
  feature/login
  remotes/origin/HEAD -> origin/main
  remotes/origin/main
  remotes/origin/feature/login`)

	branches := ParseBranchList(out)
	require.Len(t, branches, 4)

	assert.Equal(t, "main", branches[0].Name)
	assert.True(t, branches[0].Current)
	assert.False(t, branches[0].Remote)

	assert.Equal(t, "feature/login", branches[1].Name)
	assert.False(t, branches[1].Current)

	assert.Equal(t, "remotes/origin/main", branches[2].Name)
	assert.True(t, branches[2].Remote)

	for _, b := range branches {
		assert.NotContains(t, b.Name, "->")
		assert.False(t, len(b.Name) == 0)
	}
}

func TestParseBranchListDetachedHead(t *testing.T) {
	out := []byte(`* (HEAD detached at a1b2c3d)
  main`)
	branches := ParseBranchList(out)
	require.Len(t, branches, 1)
	assert.Equal(t, "main", branches[0].Name)
	assert.False(t, branches[0].Current)
}

func TestIsNoCommits(t *testing.T) {
	noHead := fmt.Errorf("git command failed in %q: %s", "/repo",
		"fatal: your current branch 'master' does not have any commits yet")
	assert.True(t, isNoCommits(noHead))

	oldGit := fmt.Errorf("git command failed in %q: %s", "/repo",
		"fatal: bad default revision 'HEAD'")
	assert.True(t, isNoCommits(oldGit))

	notARepo := fmt.Errorf("git command failed in %q: %s", "/tmp/x",
		"fatal: not a git repository (or any of the parent directories): .git")
	assert.False(t, isNoCommits(notARepo))
}

// TestGetCommitLogFreshRepository runs against a real freshly initialized
// repository. git log exits non-zero there; the client must report an
// empty history rather than an error.
func TestGetCommitLogFreshRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available on PATH")
	}

	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, exec.Command("git", "init", root).Run())

	client := NewLocalGitClient()

	resolved, err := client.GetRepoRoot(ctx, root)
	require.NoError(t, err)
	assert.NotEmpty(t, resolved)

	commits, err := client.GetCommitLog(ctx, root)
	require.NoError(t, err)
	assert.Empty(t, commits)
	assert.NotNil(t, commits)
}

// TestMockGitClient ensures the mock records calls and returns programmed
// values, since the core collector tests depend on this behavior.
func TestMockGitClient(t *testing.T) {
	ctx := context.Background()
	mockClient := new(MockGitClient)

	expected := []CommitInfo{{Hash: "abc", Author: "Alice", When: time.Now()}}
	mockClient.On("GetCommitLog", ctx, "/repo").Return(expected, nil).Once()
	mockClient.On("GetBranchTipTime", ctx, "/repo", "gone").
		Return(time.Time{}, errors.New("unknown revision")).Once()

	commits, err := mockClient.GetCommitLog(ctx, "/repo")
	assert.NoError(t, err)
	assert.Equal(t, expected, commits)

	_, err = mockClient.GetBranchTipTime(ctx, "/repo", "gone")
	assert.Error(t, err)

	mockClient.AssertExpectations(t)
}
