package core

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// staleBranchLimit caps the reported stale-branch list; the untruncated
// total is kept in StaleCount.
const staleBranchLimit = 10

// branchTip pairs a branch with its tip lookup outcome.
type branchTip struct {
	branch contract.BranchInfo
	tip    time.Time
	err    error
}

// collectBranches fetches the tip timestamp of every branch reference and
// splits them into stale and active by the configured threshold. Tip
// lookups cost one git invocation each, so they run on a worker pool. A
// branch whose lookup fails is excluded from both counts and tallied in
// SkippedRefs.
func collectBranches(ctx context.Context, cfg *contract.Config, client contract.GitClient, root string) schema.BranchMetrics {
	metrics := schema.NewBranchMetrics()
	branches, err := client.GetBranchList(ctx, root)
	if err != nil {
		contract.LogWarn("Branch listing failed", err)
		return metrics
	}

	for _, branch := range branches {
		if branch.Current {
			metrics.CurrentBranch = branch.Name
		}
	}

	branchCh := make(chan contract.BranchInfo, len(branches))
	resultCh := make(chan branchTip, len(branches))
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for branch := range branchCh {
				if err := ctx.Err(); err != nil {
					resultCh <- branchTip{branch: branch, err: err}
					continue
				}
				tip, err := client.GetBranchTipTime(ctx, root, branch.Name)
				resultCh <- branchTip{branch: branch, tip: tip, err: err}
			}
		})
	}
	for _, branch := range branches {
		branchCh <- branch
	}
	close(branchCh)
	wg.Wait()
	close(resultCh)

	now := time.Now()
	stale := []schema.StaleBranch{}
	for result := range resultCh {
		if result.err != nil {
			metrics.SkippedRefs++
			continue
		}
		ageDays := int(now.Sub(result.tip).Hours() / 24)
		if ageDays > cfg.StaleBranchDays {
			stale = append(stale, schema.StaleBranch{
				Name:       result.branch.Name,
				LastCommit: result.tip,
				AgeDays:    ageDays,
			})
		} else {
			metrics.ActiveBranches++
		}
	}

	sort.Slice(stale, func(i, j int) bool {
		return stale[i].AgeDays > stale[j].AgeDays
	})
	metrics.StaleCount = len(stale)
	if len(stale) > staleBranchLimit {
		stale = stale[:staleBranchLimit]
	}
	metrics.StaleBranches = stale
	return metrics
}
