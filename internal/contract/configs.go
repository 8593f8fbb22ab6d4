package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/consigcody94/repo-doctor/schema"
)

// Default values for configuration.
const (
	DefaultMaxFileSizeMB   = 10
	DefaultStaleBranchDays = 90
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analysis.
// This struct is the final, validated config and is not mutated after
// ProcessAndValidate returns.
type Config struct {
	RepoPath        string // Absolute path to the Git repository (set by positional arg)
	Deep            bool   // Enable the expensive largest-commit diff scan
	SkipSecurity    bool   // Skip the security scan entirely
	SkipFiles       bool   // Skip the file composition collector
	MaxFileSizeMB   int    // Large-file threshold in megabytes
	StaleBranchDays int    // Branch staleness threshold in days
	Workers         int    // Number of concurrent workers

	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// MaxFileSizeBytes converts the configured megabyte threshold to bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Deep         bool   `mapstructure:"deep"`
	SkipSecurity bool   `mapstructure:"skip-security"`
	SkipFiles    bool   `mapstructure:"skip-files"`
	MaxFileSize  int    `mapstructure:"max-file-size"`
	StaleDays    int    `mapstructure:"stale-days"`
	Workers      int    `mapstructure:"workers"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Width        int    `mapstructure:"width"`
	Emoji        string `mapstructure:"emoji"`
	Color        string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Repository path resolution ---
	repoPath := input.RepoPathStr
	if repoPath == "" {
		repoPath = "."
	}
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		return fmt.Errorf("cannot resolve repository path %q: %w", repoPath, err)
	}
	cfg.RepoPath = absPath

	// --- 2. Threshold validation ---
	if input.MaxFileSize <= 0 {
		return fmt.Errorf("max-file-size must be greater than 0 MB (received %d)", input.MaxFileSize)
	}
	cfg.MaxFileSizeMB = input.MaxFileSize

	if input.StaleDays <= 0 {
		return fmt.Errorf("stale-days must be greater than 0 (received %d)", input.StaleDays)
	}
	cfg.StaleBranchDays = input.StaleDays

	// --- 3. Workers validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Output validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, json, markdown, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 5. Boolean toggles ---
	cfg.Deep = input.Deep
	cfg.SkipSecurity = input.SkipSecurity
	cfg.SkipFiles = input.SkipFiles

	useEmojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid emoji setting: %w", err)
	}
	cfg.UseEmojis = useEmojis

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	// NO_COLOR and non-terminal output are handled by fatih/color itself.
	if _, present := os.LookupEnv("NO_COLOR"); present {
		cfg.UseColors = false
	}

	return nil
}
