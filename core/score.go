package core

import (
	"fmt"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
)

// Derivation thresholds shared by issues, recommendations and scoring.
const (
	staleIssueThreshold  = 5
	lowActivityThreshold = 0.1
)

// Score weights. Deductions apply per issue; bonuses are independent and
// additively stackable.
const (
	criticalPenalty = 15
	warningPenalty  = 5
	infoPenalty     = 2
	scoreBonus      = 5
)

// deriveIssues is a pure function over the merged metrics. Every condition
// is evaluated independently; conditions are not mutually exclusive.
func deriveIssues(cfg *contract.Config, m *schema.Metrics) []schema.Issue {
	issues := []schema.Issue{}

	if n := len(m.Security.PotentialSecrets); n > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityCritical,
			Category: schema.CategorySecurity,
			Message:  fmt.Sprintf("%s with potential hard-coded secrets", schema.Pluralize(n, "finding")),
			Detail:   "Rotate the exposed credentials and move them to environment variables or a secret manager.",
		})
	}
	if n := len(m.Security.SensitiveFiles); n > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityWarning,
			Category: schema.CategorySecurity,
			Message:  fmt.Sprintf("%s tracked in the repository", schema.Pluralize(n, "sensitive file")),
			Detail:   "Files like .env or private keys should be ignored, not committed.",
		})
	}
	if n := m.Files.LargeFileCount; n > 0 {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityWarning,
			Category: schema.CategoryPerformance,
			Message:  fmt.Sprintf("%s larger than %d MB", schema.Pluralize(n, "file"), cfg.MaxFileSizeMB),
			Detail:   "Large binaries slow down clones; consider Git LFS or external storage.",
		})
	}
	if n := m.Branches.StaleCount; n > staleIssueThreshold {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityInfo,
			Category: schema.CategoryMaintenance,
			Message:  fmt.Sprintf("%s older than %d days", schema.Pluralize(n, "branch"), cfg.StaleBranchDays),
		})
	}
	if m.Commits.AverageCommitsPerDay < lowActivityThreshold {
		issues = append(issues, schema.Issue{
			Severity: schema.SeverityInfo,
			Category: schema.CategoryActivity,
			Message:  fmt.Sprintf("Low commit activity (%.2f commits/day on average, below %.1f)", m.Commits.AverageCommitsPerDay, lowActivityThreshold),
		})
	}
	return issues
}

// deriveRecommendations is computed from the same metrics as the issues but
// independently; the two lists are not linked.
func deriveRecommendations(cfg *contract.Config, m *schema.Metrics) []schema.Recommendation {
	recs := []schema.Recommendation{}

	if n := len(m.Security.PotentialSecrets); n > 0 {
		recs = append(recs, schema.Recommendation{
			Priority:    schema.PriorityHigh,
			Title:       "Remove hard-coded secrets",
			Description: fmt.Sprintf("%s matched known credential patterns.", schema.Pluralize(n, "finding")),
			Action:      "Rotate the credentials, purge them from history, and adopt a secret manager.",
		})
	}
	if n := m.Files.LargeFileCount; n > 0 {
		recs = append(recs, schema.Recommendation{
			Priority:    schema.PriorityMedium,
			Title:       "Move large files out of the repository",
			Description: fmt.Sprintf("%s exceed the %d MB threshold.", schema.Pluralize(n, "file"), cfg.MaxFileSizeMB),
			Action:      "Track large assets with Git LFS or host them outside the repository.",
		})
	}
	if n := m.Branches.StaleCount; n > staleIssueThreshold {
		recs = append(recs, schema.Recommendation{
			Priority:    schema.PriorityLow,
			Title:       "Prune stale branches",
			Description: fmt.Sprintf("%s have seen no commits for over %d days.", schema.Pluralize(n, "branch"), cfg.StaleBranchDays),
			Action:      "Delete merged branches and archive abandoned ones.",
		})
	}
	if m.Basic.Contributors < 2 {
		recs = append(recs, schema.Recommendation{
			Priority:    schema.PriorityLow,
			Title:       "Broaden the contributor base",
			Description: fmt.Sprintf("Only %s in the full history.", schema.Pluralize(m.Basic.Contributors, "contributor")),
			Action:      "Review access and onboarding so the project does not depend on one person.",
		})
	}
	return recs
}

// computeScore starts at 100, deducts per issue severity, adds the activity
// bonuses and clamps to [0, 100].
func computeScore(issues []schema.Issue, m *schema.Metrics) int {
	score := 100
	for _, issue := range issues {
		switch issue.Severity {
		case schema.SeverityCritical:
			score -= criticalPenalty
		case schema.SeverityWarning:
			score -= warningPenalty
		case schema.SeverityInfo:
			score -= infoPenalty
		}
	}

	if m.Commits.AverageCommitsPerDay > 1 {
		score += scoreBonus
	}
	if m.Basic.Contributors > 3 {
		score += scoreBonus
	}
	if m.Branches.StaleCount == 0 {
		score += scoreBonus
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
