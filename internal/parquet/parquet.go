// Package parquet exports health reports as Parquet files using
// github.com/parquet-go/parquet-go, for loading into analytics tooling.
package parquet

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/consigcody94/repo-doctor/schema"
	"github.com/parquet-go/parquet-go"
)

// IssueRow is one derived issue, denormalized with the report identity so
// rows from many runs can be appended into one dataset.
type IssueRow struct {
	// Repository is the absolute path of the analyzed repository
	Repository string `parquet:"repository,snappy"`

	// GeneratedAt is when the source report was produced
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// Score is the overall health score of the source report
	Score int32 `parquet:"score,snappy"`

	// Grade is the letter grade of the source report
	Grade string `parquet:"grade,snappy"`

	// Severity is critical, warning or info
	Severity string `parquet:"severity,snappy"`

	// Category is the issue's category label
	Category string `parquet:"category,snappy"`

	// Message is the human-readable issue text
	Message string `parquet:"message,snappy"`

	// Detail is the optional longer explanation (nullable)
	Detail *string `parquet:"detail,optional,snappy"`
}

// FindingRow is one security finding, denormalized the same way.
type FindingRow struct {
	// Repository is the absolute path of the analyzed repository
	Repository string `parquet:"repository,snappy"`

	// GeneratedAt is when the source report was produced
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// File is the repository-relative path of the matched file
	File string `parquet:"file,snappy"`

	// Line is the 1-based line of the match
	Line int32 `parquet:"line,snappy"`

	// Pattern is the display name of the matched rule
	Pattern string `parquet:"pattern,snappy"`

	// Match is the truncated match excerpt
	Match string `parquet:"match,snappy"`

	// Severity is the matched rule's severity
	Severity string `parquet:"severity,snappy"`
}

// WriteHealthReport exports a health report as two Parquet files: issues at
// outputPath and security findings at a "_findings" sibling path. The split
// keeps each file single-schema.
func WriteHealthReport(health *schema.RepositoryHealth, outputPath string) error {
	if err := WriteIssuesParquet(buildIssueRows(health), outputPath); err != nil {
		return err
	}
	return WriteFindingsParquet(buildFindingRows(health), findingsPath(outputPath))
}

// WriteIssuesParquet writes a slice of IssueRow structs to a Parquet file.
func WriteIssuesParquet(data []IssueRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the IssueRow struct tags
	writer := parquet.NewGenericWriter[IssueRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteFindingsParquet writes a slice of FindingRow structs to a Parquet file.
func WriteFindingsParquet(data []FindingRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the FindingRow struct tags
	writer := parquet.NewGenericWriter[FindingRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

func buildIssueRows(health *schema.RepositoryHealth) []IssueRow {
	rows := make([]IssueRow, 0, len(health.Issues))
	for _, issue := range health.Issues {
		row := IssueRow{
			Repository:  health.Repository,
			GeneratedAt: health.GeneratedAt,
			Score:       int32(health.Score),
			Grade:       string(health.Grade),
			Severity:    string(issue.Severity),
			Category:    string(issue.Category),
			Message:     issue.Message,
		}
		if issue.Detail != "" {
			detail := issue.Detail
			row.Detail = &detail
		}
		rows = append(rows, row)
	}
	return rows
}

func buildFindingRows(health *schema.RepositoryHealth) []FindingRow {
	sec := &health.Metrics.Security
	rows := make([]FindingRow, 0, len(sec.ExposedKeys)+len(sec.PotentialSecrets))
	for _, finding := range append(append([]schema.SecurityFinding{}, sec.ExposedKeys...), sec.PotentialSecrets...) {
		rows = append(rows, FindingRow{
			Repository:  health.Repository,
			GeneratedAt: health.GeneratedAt,
			File:        finding.File,
			Line:        int32(finding.Line),
			Pattern:     finding.Pattern,
			Match:       finding.Match,
			Severity:    string(finding.Severity),
		})
	}
	return rows
}

// findingsPath derives the sibling findings file from the issues path,
// e.g. report.parquet -> report_findings.parquet.
func findingsPath(outputPath string) string {
	base, ok := strings.CutSuffix(outputPath, ".parquet")
	if !ok {
		return outputPath + "_findings"
	}
	return base + "_findings.parquet"
}
