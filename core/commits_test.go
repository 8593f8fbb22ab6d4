package core

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// makeLog builds a newest-first commit log with the given interval between
// consecutive commits, ending at base. Hashes have distinct 7-char prefixes.
func makeLog(n int, base time.Time, interval time.Duration) []contract.CommitInfo {
	commits := make([]contract.CommitInfo, n)
	for i := range commits {
		commits[i] = contract.CommitInfo{
			Hash:   fmt.Sprintf("%07d", i) + strings.Repeat("a", 33),
			Author: "Alice",
			When:   base.Add(-time.Duration(i) * interval),
		}
	}
	return commits
}

func TestCollectCommitsEmptyHistory(t *testing.T) {
	client := &contract.MockGitClient{}
	metrics := collectCommits(context.Background(), testConfig(), client, "/repo", nil)

	assert.Zero(t, metrics.AverageCommitsPerDay)
	assert.Equal(t, schema.FrequencyNone, metrics.CommitFrequency)
	assert.Equal(t, schema.PatternNone, metrics.CommitPattern)
	client.AssertNotCalled(t, "GetCommitFiles")
}

func TestCollectCommitsSingleDayFloor(t *testing.T) {
	base := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	commitLog := makeLog(6, base, time.Hour)

	metrics := collectCommits(context.Background(), testConfig(), &contract.MockGitClient{}, "/repo", commitLog)

	// Six commits spanning five hours divide by the one-day floor.
	assert.InDelta(t, 6.0, metrics.AverageCommitsPerDay, 0.001)
	assert.Equal(t, schema.FrequencyVeryActive, metrics.CommitFrequency)
}

func TestCollectCommitsAverageOverSpan(t *testing.T) {
	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	commitLog := makeLog(20, base, 24*time.Hour) // 20 commits over 19 days

	metrics := collectCommits(context.Background(), testConfig(), &contract.MockGitClient{}, "/repo", commitLog)

	assert.InDelta(t, 20.0/19.0, metrics.AverageCommitsPerDay, 0.001)
	assert.Equal(t, schema.FrequencyActive, metrics.CommitFrequency)
}

func TestFrequencyBuckets(t *testing.T) {
	tests := []struct {
		avg   float64
		label string
	}{
		{5, schema.FrequencyVeryActive},
		{4.99, schema.FrequencyActive},
		{1, schema.FrequencyActive},
		{0.99, schema.FrequencyModerate},
		{0.5, schema.FrequencyModerate},
		{0.49, schema.FrequencyLow},
		{0.1, schema.FrequencyLow},
		{0.09, schema.FrequencyVeryLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, frequencyFor(tt.avg), "avg %.2f", tt.avg)
	}
}

func TestPatternTooFewCommits(t *testing.T) {
	base := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC) // a Monday
	assert.Equal(t, schema.PatternTooFew, patternFor(makeLog(9, base, 24*time.Hour)))
}

func TestPatternWeekdays(t *testing.T) {
	// Ten commits on consecutive Tuesdays.
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(10, base, 7*24*time.Hour)
	assert.Equal(t, schema.PatternWeekdays, patternFor(commitLog))
}

func TestPatternWeekends(t *testing.T) {
	// Ten commits on consecutive Saturdays.
	base := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(10, base, 7*24*time.Hour)
	assert.Equal(t, schema.PatternWeekends, patternFor(commitLog))
}

func TestPatternConsistent(t *testing.T) {
	// Commits every 84 hours alternate between Saturday and Wednesday,
	// giving a weekday fraction of exactly 0.5.
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(10, base, 84*time.Hour)
	assert.Equal(t, schema.PatternConsistent, patternFor(commitLog))
}

func TestPatternWindowIsThirtyCommits(t *testing.T) {
	// 30 recent Tuesday commits followed by older Saturday-only history;
	// only the window should count.
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(30, base, 7*24*time.Hour)
	weekendBase := time.Date(2020, 3, 7, 12, 0, 0, 0, time.UTC)
	commitLog = append(commitLog, makeLog(40, weekendBase, 7*24*time.Hour)...)

	assert.Equal(t, schema.PatternWeekdays, patternFor(commitLog))
}

func TestLargestCommitRequiresDeep(t *testing.T) {
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(12, base, 24*time.Hour)
	client := &contract.MockGitClient{}

	metrics := collectCommits(context.Background(), testConfig(), client, "/repo", commitLog)

	assert.Equal(t, largestNotAnalyzed, metrics.LargestCommit)
	client.AssertNotCalled(t, "GetCommitFiles")
}

func TestLargestCommitTiesKeepMostRecent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(3, base, 24*time.Hour)

	client := &contract.MockGitClient{}
	client.On("GetCommitFiles", ctx, "/repo", commitLog[0].Hash).Return([]string{"a.go", "b.go"}, nil)
	client.On("GetCommitFiles", ctx, "/repo", commitLog[1].Hash).Return([]string{"a.go", "b.go"}, nil)
	client.On("GetCommitFiles", ctx, "/repo", commitLog[2].Hash).Return([]string{"a.go"}, nil)

	cfg := testConfig()
	cfg.Deep = true
	metrics := collectCommits(ctx, cfg, client, "/repo", commitLog)

	require.Contains(t, metrics.LargestCommit, commitLog[0].Hash[:7])
	assert.Contains(t, metrics.LargestCommit, "2 files changed")
	assert.Zero(t, metrics.SkippedCommits)
}

func TestLargestCommitSkipsFailedLookups(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(2, base, 24*time.Hour)

	client := &contract.MockGitClient{}
	client.On("GetCommitFiles", ctx, "/repo", commitLog[0].Hash).Return(nil, assert.AnError)
	client.On("GetCommitFiles", ctx, "/repo", commitLog[1].Hash).Return([]string{"a.go"}, nil)

	cfg := testConfig()
	cfg.Deep = true
	metrics := collectCommits(ctx, cfg, client, "/repo", commitLog)

	assert.Contains(t, metrics.LargestCommit, commitLog[1].Hash[:7])
	assert.Equal(t, 1, metrics.SkippedCommits)
}

func TestLargestCommitScanBound(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	commitLog := makeLog(150, base, time.Hour)

	client := &contract.MockGitClient{}
	client.On("GetCommitFiles", ctx, "/repo", mock.Anything).Return([]string{"a.go"}, nil)

	cfg := testConfig()
	cfg.Deep = true
	collectCommits(ctx, cfg, client, "/repo", commitLog)

	client.AssertNumberOfCalls(t, "GetCommitFiles", largestCommitScanLimit)
}
