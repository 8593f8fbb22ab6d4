package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/consigcody94/repo-doctor/core/secscan"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// collectBasic gathers repository-wide counts. The commit log is shared
// read-only with the other collectors; branch and file counts come from
// independent queries so no collector waits on another.
func collectBasic(ctx context.Context, client contract.GitClient, root string, commitLog []contract.CommitInfo) schema.BasicMetrics {
	basic := schema.BasicMetrics{TotalCommits: len(commitLog)}

	branches, err := client.GetBranchList(ctx, root)
	if err != nil {
		contract.LogWarn("Branch listing failed", err)
	}
	basic.TotalBranches = len(branches)
	basic.TotalFiles = countTreeFiles(ctx, root)

	if len(commitLog) == 0 {
		basic.RepoAge = schema.FrequencyNone
		return basic
	}

	authors := make(map[string]struct{}, len(commitLog))
	for _, commit := range commitLog {
		authors[commit.Author] = struct{}{}
	}
	basic.Contributors = len(authors)

	// Log order is newest-first.
	basic.LastCommit = commitLog[0].When
	basic.RepoAge = schema.FormatAge(time.Since(commitLog[len(commitLog)-1].When))
	return basic
}

// countTreeFiles counts regular files under root with the same directory
// exclusions the security scanner applies.
func countTreeFiles(ctx context.Context, root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return fs.SkipAll
		}
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && secscan.IsExcludedDir(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	return count
}
