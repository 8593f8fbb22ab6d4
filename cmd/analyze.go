package cmd

import (
	"github.com/consigcody94/repo-doctor/core"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd runs the full repository health analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path]",
	Short: "Analyze a repository and print its health report.",
	Long: `Collect repository metrics and derive a 0-100 health score with a letter grade.

The analysis covers:
- Commit activity: frequency, contributor spread, weekday/weekend pattern
- File composition: per-type counts, binary files, oversized files
- Branch hygiene: stale branches past the configured age threshold
- Security exposure: committed secrets, private keys, sensitive files

Examples:
  # Analyze the current directory
  repo-doctor analyze

  # Analyze another repository with stricter thresholds
  repo-doctor analyze ~/src/service --max-file-size 5 --stale-days 30

  # Include the per-commit diff scan for the largest commit
  repo-doctor analyze --deep

  # Save a machine-readable report for later re-rendering
  repo-doctor analyze --output json --output-file health.json

  # Export flat records for analytics tooling
  repo-doctor analyze --output parquet --output-file health.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
