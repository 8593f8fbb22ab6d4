// Package contract provides interfaces and shared utilities for the
// repo-doctor CLI's internal architecture.
package contract

import (
	"context"
	"time"
)

// CommitInfo is one entry of the repository commit log.
type CommitInfo struct {
	Hash   string
	Author string
	When   time.Time
}

// BranchInfo is one branch reference from the branch listing. Symbolic HEAD
// pointers and "->" alias lines are already filtered out by the client.
type BranchInfo struct {
	Name    string
	Current bool
	Remote  bool
}

// GitClient defines the git history and reflog queries needed by the
// analyzer. This allows the core analysis logic to be tested without
// needing a real git executable. Every call is fallible per-call; the
// analyzer treats a failed per-branch or per-commit lookup as an excluded
// item, never as a fatal error.
type GitClient interface {
	// GetRepoRoot returns the absolute path to the root of the Git
	// repository containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)

	// GetCommitLog returns the full commit log ordered newest-first.
	GetCommitLog(ctx context.Context, repoPath string) ([]CommitInfo, error)

	// GetBranchList returns all local and remote-tracking branch
	// references with the currently checked-out branch marked.
	GetBranchList(ctx context.Context, repoPath string) ([]BranchInfo, error)

	// GetCommitFiles returns the file names changed by a single commit.
	GetCommitFiles(ctx context.Context, repoPath string, hash string) ([]string, error)

	// GetBranchTipTime returns the timestamp of the most recent commit
	// reachable from the given branch reference.
	GetBranchTipTime(ctx context.Context, repoPath string, ref string) (time.Time, error)
}
