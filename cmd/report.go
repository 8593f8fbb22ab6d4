package cmd

import (
	"github.com/consigcody94/repo-doctor/core"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd re-renders a stored JSON report without re-analyzing.
var reportCmd = &cobra.Command{
	Use:   "report <report-file>",
	Short: "Render a previously saved JSON health report.",
	Long: `Load a JSON report produced by 'analyze --output json' and render it again.

The loaded file is validated before rendering: the score must be in range
and the grade must match it.

Examples:
  # Re-render a saved report as a table
  repo-doctor report health.json

  # Convert a saved report to Markdown
  repo-doctor report health.json --output markdown --output-file health.md`,
	Args: cobra.ExactArgs(1),
	// The positional arg is the report file, not a repo path.
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return sharedSetup(cmd, nil)
	},
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteReport(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot render report", err)
		}
	},
}
