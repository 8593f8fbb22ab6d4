package core

import (
	"context"
	"fmt"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// Commit heuristic bounds. The largest-commit scan is capped to keep cost
// proportional to recent history rather than full history.
const (
	largestCommitScanLimit = 100
	patternWindow          = 30
	patternMinCommits      = 10
)

// largestNotAnalyzed is the placeholder when the diff scan is gated off.
const largestNotAnalyzed = "Not analyzed (use --deep)"

// collectCommits derives activity aggregates from the commit log. The log
// is ordered newest-first.
func collectCommits(ctx context.Context, cfg *contract.Config, client contract.GitClient, root string, commitLog []contract.CommitInfo) schema.CommitMetrics {
	if len(commitLog) == 0 {
		return schema.CommitMetrics{
			CommitFrequency: schema.FrequencyNone,
			LargestCommit:   schema.FrequencyNone,
			CommitPattern:   schema.PatternNone,
		}
	}

	// The one-day floor avoids division blow-up when the whole history
	// fits inside a single day.
	days := int(commitLog[0].When.Sub(commitLog[len(commitLog)-1].When).Hours() / 24)
	if days < 1 {
		days = 1
	}

	metrics := schema.CommitMetrics{
		AverageCommitsPerDay: float64(len(commitLog)) / float64(days),
	}
	metrics.CommitFrequency = frequencyFor(metrics.AverageCommitsPerDay)
	metrics.CommitPattern = patternFor(commitLog)
	metrics.LargestCommit, metrics.SkippedCommits = largestCommit(ctx, cfg, client, root, commitLog)
	return metrics
}

func frequencyFor(avgPerDay float64) string {
	switch {
	case avgPerDay >= 5:
		return schema.FrequencyVeryActive
	case avgPerDay >= 1:
		return schema.FrequencyActive
	case avgPerDay >= 0.5:
		return schema.FrequencyModerate
	case avgPerDay >= 0.1:
		return schema.FrequencyLow
	default:
		return schema.FrequencyVeryLow
	}
}

// patternFor classifies the weekday fraction of the most recent commits.
func patternFor(commitLog []contract.CommitInfo) string {
	if len(commitLog) < patternMinCommits {
		return schema.PatternTooFew
	}
	window := commitLog
	if len(window) > patternWindow {
		window = window[:patternWindow]
	}
	weekdays := 0
	for _, commit := range window {
		switch commit.When.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			weekdays++
		}
	}
	fraction := float64(weekdays) / float64(len(window))
	switch {
	case fraction > 0.7:
		return schema.PatternWeekdays
	case fraction < 0.3:
		return schema.PatternWeekends
	default:
		return schema.PatternConsistent
	}
}

// largestCommit scans the most recent commits' changed-file counts. Ties
// keep the first maximum seen, which is the most recent one given the log
// order. Failed per-commit lookups are counted and excluded. The scan only
// runs in deep mode since it costs one git invocation per commit.
func largestCommit(ctx context.Context, cfg *contract.Config, client contract.GitClient, root string, commitLog []contract.CommitInfo) (string, int) {
	if !cfg.Deep {
		return largestNotAnalyzed, 0
	}

	limit := min(len(commitLog), largestCommitScanLimit)
	bestCount := -1
	bestHash := ""
	skipped := 0
	for _, commit := range commitLog[:limit] {
		if ctx.Err() != nil {
			break
		}
		files, err := client.GetCommitFiles(ctx, root, commit.Hash)
		if err != nil {
			skipped++
			continue
		}
		if len(files) > bestCount {
			bestCount = len(files)
			bestHash = commit.Hash
		}
	}
	if bestHash == "" {
		return largestNotAnalyzed, skipped
	}
	short := bestHash
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s changed)", short, schema.Pluralize(bestCount, "file")), skipped
}
