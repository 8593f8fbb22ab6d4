// Package core has core logic for metric collection, derivation and scoring.
package core

import (
	"context"
	"time"

	"github.com/consigcody94/repo-doctor/internal"
	"github.com/consigcody94/repo-doctor/internal/contract"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteAnalyze runs the full repository analysis and renders the health
// report. It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	client := contract.NewLocalGitClient()

	internal.LogAnalysisHeader(cfg)

	health, err := Analyze(ctx, cfg, client)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return internal.PrintHealthReport(health, cfg, duration)
}

// ExecuteReport loads a previously generated JSON report and re-renders it
// in the configured output format. It serves as the main entry point for
// the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, reportPath string) error {
	health, err := internal.LoadHealthReport(reportPath)
	if err != nil {
		return err
	}
	return internal.PrintHealthReport(health, cfg, 0)
}

// ExecutePatterns prints the static secret pattern table. It serves as the
// main entry point for the 'patterns' command.
func ExecutePatterns(ctx context.Context, cfg *contract.Config) error {
	return internal.PrintPatternTable(cfg)
}
