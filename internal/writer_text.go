package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// sectionHeader renders a section title, with an emoji prefix when enabled.
func sectionHeader(w io.Writer, emoji, title string, useEmojis bool) {
	if useEmojis {
		fmt.Fprintf(w, "\n%s %s\n", emoji, title)
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
}

// writeTextReport renders the full human-readable report.
func writeTextReport(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config, duration time.Duration) error {
	pathWidth := GetMaxTablePathWidth(cfg)

	fmt.Fprintf(w, "Repository: %s\n", health.Repository)
	fmt.Fprintf(w, "Health: %d/100 (Grade %s)\n",
		health.Score, contract.GradeLabel(health.Grade, cfg.UseColors))
	fmt.Fprintf(w, "Generated: %s\n", health.GeneratedAt.Format(contract.DateTimeFormat))

	if err := writeOverviewTable(w, health, cfg); err != nil {
		return err
	}
	if err := writeIssuesSection(w, health, cfg); err != nil {
		return err
	}
	if err := writeSecuritySection(w, health, cfg, pathWidth); err != nil {
		return err
	}
	if err := writeFilesSection(w, health, cfg, pathWidth); err != nil {
		return err
	}
	if err := writeBranchesSection(w, health, cfg); err != nil {
		return err
	}
	writeRecommendationsSection(w, health, cfg)

	if duration > 0 {
		fmt.Fprintf(w, "\nCompleted in %.2fs\n", duration.Seconds())
	}
	return nil
}

func writeOverviewTable(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config) error {
	m := &health.Metrics
	sectionHeader(w, "📋", "Overview", cfg.UseEmojis)

	lastCommit := "never"
	if !m.Basic.LastCommit.IsZero() {
		lastCommit = schema.FormatDate(m.Basic.LastCommit)
	}

	rows := [][]string{
		{"Commits", strconv.Itoa(m.Basic.TotalCommits)},
		{"Branches", strconv.Itoa(m.Basic.TotalBranches)},
		{"Files", strconv.Itoa(m.Basic.TotalFiles)},
		{"Contributors", strconv.Itoa(m.Basic.Contributors)},
		{"Repository age", m.Basic.RepoAge},
		{"Last commit", lastCommit},
		{"Commits per day", fmt.Sprintf("%.2f (%s)", m.Commits.AverageCommitsPerDay, m.Commits.CommitFrequency)},
		{"Commit pattern", m.Commits.CommitPattern},
		{"Largest commit", m.Commits.LargestCommit},
		{"Total size", schema.FormatBytes(m.Files.TotalSizeBytes)},
		{"Binary files", strconv.Itoa(m.Files.BinaryFiles)},
		{"Current branch", m.Branches.CurrentBranch},
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeIssuesSection(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config) error {
	sectionHeader(w, "⚠️", "Issues", cfg.UseEmojis)
	if len(health.Issues) == 0 {
		fmt.Fprintln(w, "None found.")
		return nil
	}

	var rows [][]string
	for _, issue := range health.Issues {
		rows = append(rows, []string{
			contract.SeverityLabel(issue.Severity, cfg.UseColors),
			string(issue.Category),
			issue.Message,
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Severity", "Category", "Message"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeSecuritySection(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config, pathWidth int) error {
	sec := &health.Metrics.Security
	findings := make([]schema.SecurityFinding, 0, len(sec.PotentialSecrets)+len(sec.ExposedKeys))
	findings = append(findings, sec.ExposedKeys...)
	findings = append(findings, sec.PotentialSecrets...)
	if len(findings) == 0 && len(sec.SensitiveFiles) == 0 {
		return nil
	}

	sectionHeader(w, "🔐", "Security", cfg.UseEmojis)
	for _, path := range sec.SensitiveFiles {
		fmt.Fprintf(w, "Sensitive file: %s\n", path)
	}
	if sec.SkippedFiles > 0 {
		fmt.Fprintf(w, "Unreadable during scan: %s\n", schema.Pluralize(sec.SkippedFiles, "file"))
	}
	if len(findings) == 0 {
		return nil
	}

	var rows [][]string
	for _, finding := range findings {
		rows = append(rows, []string{
			contract.TruncatePath(finding.File, pathWidth),
			strconv.Itoa(finding.Line),
			finding.Pattern,
			contract.SeverityLabel(finding.Severity, cfg.UseColors),
			finding.Match,
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Line", "Pattern", "Severity", "Match"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeFilesSection(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config, pathWidth int) error {
	files := &health.Metrics.Files
	if len(files.LargeFiles) == 0 {
		return nil
	}

	sectionHeader(w, "📦", "Large files", cfg.UseEmojis)
	if files.LargeFileCount > len(files.LargeFiles) {
		fmt.Fprintf(w, "Showing top %d of %d\n", len(files.LargeFiles), files.LargeFileCount)
	}

	var rows [][]string
	for _, file := range files.LargeFiles {
		rows = append(rows, []string{
			contract.TruncatePath(file.Path, pathWidth),
			schema.FormatBytes(file.SizeBytes),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"File", "Size"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeBranchesSection(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config) error {
	branches := &health.Metrics.Branches
	if len(branches.StaleBranches) == 0 {
		return nil
	}

	sectionHeader(w, "🌿", "Stale branches", cfg.UseEmojis)
	if branches.StaleCount > len(branches.StaleBranches) {
		fmt.Fprintf(w, "Showing top %d of %d\n", len(branches.StaleBranches), branches.StaleCount)
	}

	var rows [][]string
	for _, branch := range branches.StaleBranches {
		rows = append(rows, []string{
			branch.Name,
			schema.FormatDate(branch.LastCommit),
			schema.Pluralize(branch.AgeDays, "day"),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Branch", "Last Commit", "Age"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func writeRecommendationsSection(w io.Writer, health *schema.RepositoryHealth, cfg *contract.Config) {
	if len(health.Recommendations) == 0 {
		return
	}

	sectionHeader(w, "💡", "Recommendations", cfg.UseEmojis)
	for i, rec := range health.Recommendations {
		priority := strings.ToUpper(string(rec.Priority))
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, priority, rec.Title)
		fmt.Fprintf(w, "   %s\n", rec.Description)
		fmt.Fprintf(w, "   Action: %s\n", rec.Action)
	}
}
