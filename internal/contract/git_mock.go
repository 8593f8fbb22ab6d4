package contract

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for GitClient so core analysis can be
// exercised without a real git executable.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	args := m.Called(ctx, contextPath)
	return args.String(0), args.Error(1)
}

// GetCommitLog implements the GitClient interface.
func (m *MockGitClient) GetCommitLog(ctx context.Context, repoPath string) ([]CommitInfo, error) {
	args := m.Called(ctx, repoPath)
	if commits, ok := args.Get(0).([]CommitInfo); ok {
		return commits, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetBranchList implements the GitClient interface.
func (m *MockGitClient) GetBranchList(ctx context.Context, repoPath string) ([]BranchInfo, error) {
	args := m.Called(ctx, repoPath)
	if branches, ok := args.Get(0).([]BranchInfo); ok {
		return branches, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetCommitFiles implements the GitClient interface.
func (m *MockGitClient) GetCommitFiles(ctx context.Context, repoPath string, hash string) ([]string, error) {
	args := m.Called(ctx, repoPath, hash)
	if files, ok := args.Get(0).([]string); ok {
		return files, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetBranchTipTime implements the GitClient interface.
func (m *MockGitClient) GetBranchTipTime(ctx context.Context, repoPath string, ref string) (time.Time, error) {
	args := m.Called(ctx, repoPath, ref)
	return args.Get(0).(time.Time), args.Error(1)
}
