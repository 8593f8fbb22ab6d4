package internal

import (
	"fmt"
	"path/filepath"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// LogAnalysisHeader prints a concise 2-line header before the analysis runs.
func LogAnalysisHeader(cfg *contract.Config) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}

	prefixRepo, prefixRules := "", ""
	if cfg.UseEmojis {
		prefixRepo, prefixRules = "🩺 ", "🔎 "
	}

	// Line 1: the analysis target
	fmt.Printf("%sRepo: %s\n", prefixRepo, repoName)

	// Line 2: the thresholds in effect
	security := "on"
	if cfg.SkipSecurity {
		security = "off"
	}
	fmt.Printf("%sThresholds: large files > %s, stale branches > %s, security scan %s\n",
		prefixRules,
		schema.FormatBytes(cfg.MaxFileSizeBytes()),
		schema.Pluralize(cfg.StaleBranchDays, "day"),
		security)
}
