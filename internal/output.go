package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/internal/parquet"
	"github.com/consigcody94/repo-doctor/schema"
)

// PrintHealthReport renders the health report in the configured output
// format. A zero duration suppresses the elapsed-time footer, which the
// report command uses when re-rendering a stored report.
func PrintHealthReport(health *schema.RepositoryHealth, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return printJSONReport(health, cfg)
	case schema.MarkdownOut:
		return printMarkdownReport(health, cfg)
	case schema.ParquetOut:
		return printParquetReport(health, cfg)
	default:
		return printTextReport(health, cfg, duration)
	}
}

func printTextReport(health *schema.RepositoryHealth, cfg *contract.Config, duration time.Duration) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeUnlessStdout(file)

	if err := writeTextReport(file, health, cfg, duration); err != nil {
		return err
	}
	logWrittenFile(file, cfg.OutputFile)
	return nil
}

func printJSONReport(health *schema.RepositoryHealth, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeUnlessStdout(file)

	if err := writeJSONReport(file, health); err != nil {
		return err
	}
	logWrittenFile(file, cfg.OutputFile)
	return nil
}

func printMarkdownReport(health *schema.RepositoryHealth, cfg *contract.Config) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeUnlessStdout(file)

	if err := writeMarkdownReport(file, health); err != nil {
		return err
	}
	logWrittenFile(file, cfg.OutputFile)
	return nil
}

func printParquetReport(health *schema.RepositoryHealth, cfg *contract.Config) error {
	// Config validation guarantees OutputFile is set for parquet.
	if err := parquet.WriteHealthReport(health, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote parquet to %s\n", cfg.OutputFile)
	return nil
}

func closeUnlessStdout(file *os.File) {
	if file != os.Stdout {
		_ = file.Close()
	}
}

func logWrittenFile(file *os.File, path string) {
	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "Wrote report to %s\n", path)
	}
}
