package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/consigcody94/repo-doctor/schema"
)

// writeMarkdownReport renders the report as a standalone Markdown document,
// suitable for pasting into a PR description or CI summary.
func writeMarkdownReport(w io.Writer, health *schema.RepositoryHealth) error {
	m := &health.Metrics

	fmt.Fprintf(w, "# Repository Health Report\n\n")
	fmt.Fprintf(w, "**Repository:** `%s`\n\n", health.Repository)
	fmt.Fprintf(w, "**Score:** %d/100 (Grade %s)\n\n", health.Score, health.Grade)
	fmt.Fprintf(w, "**Generated:** %s\n\n", health.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	fmt.Fprintf(w, "## Overview\n\n")
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Commits | %d |\n", m.Basic.TotalCommits)
	fmt.Fprintf(w, "| Branches | %d |\n", m.Basic.TotalBranches)
	fmt.Fprintf(w, "| Files | %d |\n", m.Basic.TotalFiles)
	fmt.Fprintf(w, "| Contributors | %d |\n", m.Basic.Contributors)
	fmt.Fprintf(w, "| Repository age | %s |\n", m.Basic.RepoAge)
	fmt.Fprintf(w, "| Commits per day | %.2f (%s) |\n", m.Commits.AverageCommitsPerDay, m.Commits.CommitFrequency)
	fmt.Fprintf(w, "| Commit pattern | %s |\n", m.Commits.CommitPattern)
	fmt.Fprintf(w, "| Largest commit | %s |\n", m.Commits.LargestCommit)
	fmt.Fprintf(w, "| Total size | %s |\n", schema.FormatBytes(m.Files.TotalSizeBytes))
	fmt.Fprintf(w, "| Stale branches | %d |\n", m.Branches.StaleCount)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "## Issues\n\n")
	if len(health.Issues) == 0 {
		fmt.Fprintf(w, "None found.\n\n")
	} else {
		fmt.Fprintf(w, "| Severity | Category | Message |\n")
		fmt.Fprintf(w, "|----------|----------|--------|\n")
		for _, issue := range health.Issues {
			fmt.Fprintf(w, "| %s | %s | %s |\n",
				strings.ToUpper(string(issue.Severity)), issue.Category, escapePipes(issue.Message))
		}
		fmt.Fprintf(w, "\n")
	}

	findings := make([]schema.SecurityFinding, 0, len(m.Security.ExposedKeys)+len(m.Security.PotentialSecrets))
	findings = append(findings, m.Security.ExposedKeys...)
	findings = append(findings, m.Security.PotentialSecrets...)
	if len(findings) > 0 {
		fmt.Fprintf(w, "## Security Findings\n\n")
		fmt.Fprintf(w, "| File | Line | Pattern | Severity |\n")
		fmt.Fprintf(w, "|------|------|---------|----------|\n")
		for _, finding := range findings {
			fmt.Fprintf(w, "| `%s` | %d | %s | %s |\n",
				finding.File, finding.Line, finding.Pattern, finding.Severity)
		}
		fmt.Fprintf(w, "\n")
	}

	if len(health.Recommendations) > 0 {
		fmt.Fprintf(w, "## Recommendations\n\n")
		for _, rec := range health.Recommendations {
			fmt.Fprintf(w, "- **[%s] %s**: %s\n", strings.ToUpper(string(rec.Priority)), rec.Title, rec.Description)
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}

// escapePipes keeps free-text cells from breaking the Markdown table.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
