package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/consigcody94/repo-doctor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHealth() *schema.RepositoryHealth {
	return &schema.RepositoryHealth{
		Repository:  "/home/user/project",
		GeneratedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Score:       83,
		Grade:       schema.GradeB,
		Metrics: schema.Metrics{
			Basic: schema.BasicMetrics{
				TotalCommits: 120,
				Contributors: 4,
				RepoAge:      "6 months",
			},
			Commits: schema.CommitMetrics{
				AverageCommitsPerDay: 1.4,
				CommitFrequency:      schema.FrequencyActive,
				CommitPattern:        schema.PatternWeekdays,
				LargestCommit:        "abc1234 (12 files changed)",
			},
			Files:    schema.NewFileMetrics(),
			Branches: schema.NewBranchMetrics(),
			Security: schema.NewSecurityMetrics(),
		},
		Issues: []schema.Issue{
			{Severity: schema.SeverityWarning, Category: schema.CategorySecurity, Message: "1 sensitive file tracked in the repository"},
		},
		Recommendations: []schema.Recommendation{},
	}
}

func writeReportFile(t *testing.T, health *schema.RepositoryHealth) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, writeJSONReport(file, health))
	require.NoError(t, file.Close())
	return path
}

func TestLoadHealthReportRoundTrip(t *testing.T) {
	health := sampleHealth()
	path := writeReportFile(t, health)

	loaded, err := LoadHealthReport(path)
	require.NoError(t, err)

	assert.Equal(t, health.Repository, loaded.Repository)
	assert.Equal(t, health.Score, loaded.Score)
	assert.Equal(t, health.Grade, loaded.Grade)
	assert.Equal(t, health.Metrics.Commits, loaded.Metrics.Commits)
	assert.Len(t, loaded.Issues, 1)
}

func TestLoadHealthReportNormalizesNilCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.json")
	raw := `{"repository":"/repo","generated_at":"2026-08-01T10:00:00Z","score":95,"grade":"A","metrics":{}}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	loaded, err := LoadHealthReport(path)
	require.NoError(t, err)

	assert.NotNil(t, loaded.Metrics.Security.PotentialSecrets)
	assert.NotNil(t, loaded.Metrics.Security.SensitiveFiles)
	assert.NotNil(t, loaded.Metrics.Files.FileTypes)
	assert.NotNil(t, loaded.Metrics.Files.LargeFiles)
	assert.NotNil(t, loaded.Metrics.Branches.StaleBranches)
	assert.NotNil(t, loaded.Issues)
	assert.NotNil(t, loaded.Recommendations)
}

func TestLoadHealthReportRejectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *schema.RepositoryHealth)
		errMsg string
	}{
		{
			name:   "score above range",
			mutate: func(h *schema.RepositoryHealth) { h.Score = 120 },
			errMsg: "out-of-range score",
		},
		{
			name:   "score below range",
			mutate: func(h *schema.RepositoryHealth) { h.Score = -1 },
			errMsg: "out-of-range score",
		},
		{
			name:   "grade mismatch",
			mutate: func(h *schema.RepositoryHealth) { h.Grade = schema.GradeA },
			errMsg: "implies",
		},
		{
			name:   "missing repository",
			mutate: func(h *schema.RepositoryHealth) { h.Repository = "" },
			errMsg: "missing the repository path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := sampleHealth()
			tt.mutate(health)
			path := writeReportFile(t, health)

			_, err := LoadHealthReport(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadHealthReportBadInput(t *testing.T) {
	_, err := LoadHealthReport(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = LoadHealthReport(path)
	assert.Error(t, err)
}
