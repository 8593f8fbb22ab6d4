// Package schema has the serializable result model for repo-doctor.
// The JSON shape of RepositoryHealth is a stability surface: the report
// command reads it back and external tooling may consume it directly.
package schema

import "time"

// SecurityFinding is one pattern match against file content.
// Match holds a truncated excerpt, never the full secret text.
type SecurityFinding struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Pattern  string   `json:"pattern"`
	Match    string   `json:"match"`
	Severity Severity `json:"severity"`
}

// SecurityMetrics aggregates the scanner's findings for one run.
// SkippedFiles counts files whose content could not be read; those are
// excluded rather than failing the scan.
type SecurityMetrics struct {
	PotentialSecrets []SecurityFinding `json:"potential_secrets"`
	SensitiveFiles   []string          `json:"sensitive_files"`
	ExposedKeys      []SecurityFinding `json:"exposed_keys"`
	SkippedFiles     int               `json:"skipped_files"`
}

// BasicMetrics holds repository-wide counts and timestamps.
type BasicMetrics struct {
	TotalCommits  int       `json:"total_commits"`
	TotalBranches int       `json:"total_branches"`
	TotalFiles    int       `json:"total_files"`
	Contributors  int       `json:"contributors"`
	RepoAge       string    `json:"repo_age"`
	LastCommit    time.Time `json:"last_commit"`
}

// CommitMetrics holds commit activity aggregates and heuristics.
type CommitMetrics struct {
	AverageCommitsPerDay float64 `json:"average_commits_per_day"`
	CommitFrequency      string  `json:"commit_frequency"`
	LargestCommit        string  `json:"largest_commit"`
	CommitPattern        string  `json:"commit_pattern"`
	SkippedCommits       int     `json:"skipped_commits"`
}

// LargeFile is a working-tree file exceeding the configured size threshold.
type LargeFile struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// FileMetrics holds working-tree composition aggregates.
// LargeFiles is sorted descending by size and truncated to the top 10;
// LargeFileCount keeps the untruncated total.
type FileMetrics struct {
	TotalSizeBytes int64          `json:"total_size_bytes"`
	FileTypes      map[string]int `json:"file_types"`
	LargeFiles     []LargeFile    `json:"large_files"`
	LargeFileCount int            `json:"large_file_count"`
	BinaryFiles    int            `json:"binary_files"`
	SkippedFiles   int            `json:"skipped_files"`
}

// StaleBranch is a branch whose tip commit is older than the configured
// staleness threshold.
type StaleBranch struct {
	Name       string    `json:"name"`
	LastCommit time.Time `json:"last_commit"`
	AgeDays    int       `json:"age_days"`
}

// BranchMetrics holds branch staleness aggregates.
// StaleBranches is sorted descending by age and truncated to the top 10;
// StaleCount keeps the untruncated total. SkippedRefs counts branches whose
// tip lookup failed and were excluded from both stale and active counts.
type BranchMetrics struct {
	ActiveBranches int           `json:"active_branches"`
	StaleBranches  []StaleBranch `json:"stale_branches"`
	StaleCount     int           `json:"stale_count"`
	CurrentBranch  string        `json:"current_branch"`
	SkippedRefs    int           `json:"skipped_refs"`
}

// Metrics is the merged output of all collectors. Skipped collectors leave
// a zero-valued section in place, never a missing field.
type Metrics struct {
	Basic    BasicMetrics    `json:"basic"`
	Commits  CommitMetrics   `json:"commits"`
	Files    FileMetrics     `json:"files"`
	Branches BranchMetrics   `json:"branches"`
	Security SecurityMetrics `json:"security"`
}

// Issue is one derived problem condition, ordered by insertion.
type Issue struct {
	Severity Severity      `json:"severity"`
	Category IssueCategory `json:"category"`
	Message  string        `json:"message"`
	Detail   string        `json:"detail,omitempty"`
}

// Recommendation is one derived remediation suggestion. Recommendations are
// computed independently of Issues and are not linked to them.
type Recommendation struct {
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
}

// RepositoryHealth is the top-level analysis result and the sole value
// crossing the core boundary. It is fully serializable.
type RepositoryHealth struct {
	Repository      string           `json:"repository"`
	GeneratedAt     time.Time        `json:"generated_at"`
	Score           int              `json:"score"`
	Grade           Grade            `json:"grade"`
	Metrics         Metrics          `json:"metrics"`
	Issues          []Issue          `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}

// CriticalCount returns the number of critical issues, letting callers
// distinguish "critical issues present" from "clean".
func (h *RepositoryHealth) CriticalCount() int {
	count := 0
	for _, issue := range h.Issues {
		if issue.Severity == SeverityCritical {
			count++
		}
	}
	return count
}

// NewSecurityMetrics returns an empty SecurityMetrics with non-nil
// collections so the serialized form is stable whether or not the
// scanner ran.
func NewSecurityMetrics() SecurityMetrics {
	return SecurityMetrics{
		PotentialSecrets: []SecurityFinding{},
		SensitiveFiles:   []string{},
		ExposedKeys:      []SecurityFinding{},
	}
}

// NewFileMetrics returns an empty FileMetrics with non-nil collections.
// The files collector can be skipped; downstream code must still see a
// well-defined structure.
func NewFileMetrics() FileMetrics {
	return FileMetrics{
		FileTypes:  map[string]int{},
		LargeFiles: []LargeFile{},
	}
}

// NewBranchMetrics returns an empty BranchMetrics with non-nil collections.
func NewBranchMetrics() BranchMetrics {
	return BranchMetrics{
		StaleBranches: []StaleBranch{},
	}
}
