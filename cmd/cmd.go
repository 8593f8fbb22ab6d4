// Package cmd defines the command-line interface for repo-doctor.
package cmd

import (
	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or markdown or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in section headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().Bool("deep", false, "Scan recent commit diffs for the largest commit")
	analyzeCmd.Flags().Bool("skip-security", false, "Skip the secret and sensitive-file scan")
	analyzeCmd.Flags().Bool("skip-files", false, "Skip the file composition scan")
	analyzeCmd.Flags().Int("max-file-size", contract.DefaultMaxFileSizeMB, "Large-file threshold in MB")
	analyzeCmd.Flags().Int("stale-days", contract.DefaultStaleBranchDays, "Branch staleness threshold in days")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}
}
