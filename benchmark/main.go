// Package main provides a performance benchmarking tool for the repo-doctor CLI.
// It measures analysis times across repositories of different sizes and flag
// combinations, running each test multiple times and averaging, generating
// CSV output for performance analysis and documentation.
//
// Prerequisites:
// - repo-doctor binary installed and available in PATH
// - Test repositories cloned to the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir]
//
//	repo-base-dir: Directory containing test repositories
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the averaged timings for one repo/command pair.
type BenchmarkResult struct {
	Repository  string
	Command     string
	AverageTime string
	FastestTime string
	SlowestTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase  string
	Timeout   time.Duration
	Runs      int
	TestRepos []string
}

// benchmarkCommands are the flag combinations measured per repository.
var benchmarkCommands = map[string][]string{
	"analyze":               {"analyze"},
	"analyze --deep":        {"analyze", "--deep"},
	"analyze no security":   {"analyze", "--skip-security"},
	"analyze metadata only": {"analyze", "--skip-security", "--skip-files"},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [repo-base-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:  os.Args[1],
		Timeout:   5 * time.Minute,
		Runs:      3,
		TestRepos: []string{"csv-parser", "fd", "git", "kubernetes"},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the binary and test repositories exist.
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("repo-doctor"); err != nil {
		return fmt.Errorf("repo-doctor binary not found in PATH")
	}
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured repositories.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, %d runs per command\n",
		len(config.TestRepos), config.Timeout, config.Runs)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)
		repoPath := filepath.Join(config.RepoBase, repo)

		for name, args := range benchmarkCommands {
			result, err := runBenchmarkSuite(config, repo, repoPath, name, args)
			if err != nil {
				fmt.Printf("  %s failed: %v\n", name, err)
				continue
			}
			results = append(results, result)
		}
	}
	return results
}

// runBenchmarkSuite times one command several times against one repository.
func runBenchmarkSuite(config BenchmarkConfig, repo, repoPath, name string, args []string) (BenchmarkResult, error) {
	var fastest, slowest, total time.Duration

	for run := 0; run < config.Runs; run++ {
		elapsed, err := runCommand(config, repoPath, args)
		if err != nil {
			return BenchmarkResult{}, err
		}
		total += elapsed
		if fastest == 0 || elapsed < fastest {
			fastest = elapsed
		}
		if elapsed > slowest {
			slowest = elapsed
		}
	}

	average := total / time.Duration(config.Runs)
	fmt.Printf("  %-24s avg %v (fastest %v, slowest %v)\n", name, average.Round(time.Millisecond), fastest.Round(time.Millisecond), slowest.Round(time.Millisecond))

	return BenchmarkResult{
		Repository:  repo,
		Command:     name,
		AverageTime: average.Round(time.Millisecond).String(),
		FastestTime: fastest.Round(time.Millisecond).String(),
		SlowestTime: slowest.Round(time.Millisecond).String(),
	}, nil
}

// runCommand runs one repo-doctor invocation with a timeout and returns the
// elapsed wall time.
func runCommand(config BenchmarkConfig, repoPath string, args []string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	full := append(append([]string{}, args...), "--output", "json", "--color", "no", repoPath)
	cmd := exec.CommandContext(ctx, "repo-doctor", full...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("repo-doctor %s: %w", strings.Join(full, " "), err)
	}
	return time.Since(start), nil
}

// saveResults writes the benchmark results as CSV next to the working dir.
func saveResults(results []BenchmarkResult) error {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"repository", "command", "average", "fastest", "slowest"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Repository, r.Command, r.AverageTime, r.FastestTime, r.SlowestTime}); err != nil {
			return err
		}
	}
	return nil
}

// printSummary prints a per-repository digest to stdout.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("\nSaved %d results to benchmark_results.csv\n", len(results))
	for _, r := range results {
		fmt.Printf("%-12s %-24s %s\n", r.Repository, r.Command, r.AverageTime)
	}
}
