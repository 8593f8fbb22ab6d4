package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/consigcody94/repo-doctor/core/secscan"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// Analyze is the single analysis entry point. It verifies the target is a
// git work tree, fetches the commit log once, fans the five metric
// collectors out as goroutines with disjoint outputs, then derives issues,
// recommendations and the health score from the merged metrics.
func Analyze(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.RepositoryHealth, error) {
	root, err := client.GetRepoRoot(ctx, cfg.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("%s is not a git repository: %w", cfg.RepoPath, err)
	}

	commitLog, err := client.GetCommitLog(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit history for %s: %w", root, err)
	}

	// Each goroutine writes to its own Metrics field; the merge is the
	// struct itself, sealed by wg.Wait before any derivation reads it.
	var metrics schema.Metrics
	var wg sync.WaitGroup
	wg.Go(func() {
		metrics.Basic = collectBasic(ctx, client, root, commitLog)
	})
	wg.Go(func() {
		metrics.Commits = collectCommits(ctx, cfg, client, root, commitLog)
	})
	wg.Go(func() {
		metrics.Files = collectFiles(ctx, cfg, root)
	})
	wg.Go(func() {
		metrics.Branches = collectBranches(ctx, cfg, client, root)
	})
	wg.Go(func() {
		if cfg.SkipSecurity {
			metrics.Security = schema.NewSecurityMetrics()
			return
		}
		metrics.Security = secscan.Scan(ctx, root)
	})
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	issues := deriveIssues(cfg, &metrics)
	score := computeScore(issues, &metrics)
	return &schema.RepositoryHealth{
		Repository:      root,
		GeneratedAt:     time.Now().UTC(),
		Score:           score,
		Grade:           schema.GradeForScore(score),
		Metrics:         metrics,
		Issues:          issues,
		Recommendations: deriveRecommendations(cfg, &metrics),
	}, nil
}
