package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// run executes a git command and returns its stdout output.
func (c *LocalGitClient) run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// noCommitMarkers are the stderr fragments git log emits for a repository
// that has no commits yet. The exact wording varies across git versions.
var noCommitMarkers = []string{
	"does not have any commits yet",
	"bad default revision",
}

// isNoCommits reports whether a git log failure means the repository
// simply has no commits, as opposed to a real error.
func isNoCommits(err error) bool {
	for _, marker := range noCommitMarkers {
		if strings.Contains(err.Error(), marker) {
			return true
		}
	}
	return false
}

// GetCommitLog implements the GitClient interface. A repository with no
// commits yields an empty log, not an error; git log exits non-zero in
// that case but the repository itself is valid.
func (c *LocalGitClient) GetCommitLog(ctx context.Context, repoPath string) ([]CommitInfo, error) {
	out, err := c.run(ctx, repoPath,
		"log",
		"--pretty=format:%H|%an|%aI",
		"--date=iso-strict",
	)
	if err != nil {
		if isNoCommits(err) {
			return []CommitInfo{}, nil
		}
		return nil, err
	}
	return ParseCommitLog(out), nil
}

// GetBranchList implements the GitClient interface.
func (c *LocalGitClient) GetBranchList(ctx context.Context, repoPath string) ([]BranchInfo, error) {
	out, err := c.run(ctx, repoPath, "branch", "-a")
	if err != nil {
		return nil, err
	}
	return ParseBranchList(out), nil
}

// GetCommitFiles implements the GitClient interface.
func (c *LocalGitClient) GetCommitFiles(ctx context.Context, repoPath string, hash string) ([]string, error) {
	out, err := c.run(ctx, repoPath,
		"show",
		"--pretty=format:",
		"--name-only",
		hash,
	)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// GetBranchTipTime implements the GitClient interface.
func (c *LocalGitClient) GetBranchTipTime(ctx context.Context, repoPath string, ref string) (time.Time, error) {
	out, err := c.run(ctx, repoPath,
		"log", "-n", "1",
		"--pretty=format:%aI",
		ref,
		"--",
	)
	if err != nil {
		return time.Time{}, err
	}
	dateStr := strings.TrimSpace(string(out))
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("no commits found for ref %q", ref)
	}
	return time.Parse(time.RFC3339, dateStr)
}

// ParseCommitLog parses "hash|author|iso-date" lines into CommitInfo
// entries, newest-first. Malformed lines are skipped.
func ParseCommitLog(out []byte) []CommitInfo {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	commits := make([]CommitInfo, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}
		when, err := time.Parse(time.RFC3339, parts[2])
		if err != nil {
			continue
		}
		commits = append(commits, CommitInfo{
			Hash:   parts[0],
			Author: parts[1],
			When:   when,
		})
	}
	return commits
}

// ParseBranchList parses 'git branch -a' output into BranchInfo entries.
// Symbolic HEAD pointers and "->" alias lines are excluded.
func ParseBranchList(out []byte) []BranchInfo {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	branches := make([]BranchInfo, 0, len(lines))
	for _, line := range lines {
		current := strings.HasPrefix(line, "* ")
		name := strings.TrimSpace(strings.TrimPrefix(line, "* "))
		if name == "" || strings.Contains(name, "->") {
			continue
		}
		if strings.HasSuffix(name, "/HEAD") {
			continue
		}
		// Detached HEAD renders as "(HEAD detached at <hash>)".
		if strings.HasPrefix(name, "(") {
			continue
		}
		branches = append(branches, BranchInfo{
			Name:    name,
			Current: current,
			Remote:  strings.HasPrefix(name, "remotes/"),
		})
	}
	return branches
}
