package cmd

import (
	"github.com/consigcody94/repo-doctor/core"
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/spf13/cobra"
)

// patternsCmd lists the secret detection rules.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the secret patterns the security scan applies.",
	Long: `Display the static secret pattern table: rule name, severity, routing
category and the regular expression. No repository is required.`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePatterns(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list patterns", err)
		}
	},
}
