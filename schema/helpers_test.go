package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestFormatBytes verifies binary-prefix formatting with the decimal kept
// only for non-integer values.
func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{"zero", 0, "0 B"},
		{"below one kilobyte", 500, "500 B"},
		{"exactly one kilobyte", 1024, "1 KB"},
		{"one and a half kilobytes", 1536, "1.5 KB"},
		{"exactly one megabyte", 1024 * 1024, "1 MB"},
		{"two and a half megabytes", 2621440, "2.5 MB"},
		{"exactly one gigabyte", 1024 * 1024 * 1024, "1 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}

// TestGradeForScore pins the exact integer grade boundaries.
func TestGradeForScore(t *testing.T) {
	tests := []struct {
		score    int
		expected Grade
	}{
		{100, GradeA},
		{90, GradeA},
		{89, GradeB},
		{80, GradeB},
		{79, GradeC},
		{70, GradeC},
		{69, GradeD},
		{60, GradeD},
		{59, GradeF},
		{0, GradeF},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GradeForScore(tt.score), "score %d", tt.score)
	}
}

// TestFormatAge verifies the day/month/year banding.
func TestFormatAge(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"single day", 24 * time.Hour, "1 day"},
		{"under a month", 29 * 24 * time.Hour, "29 days"},
		{"a few months", 95 * 24 * time.Hour, "3 months"},
		{"over a year", 730 * 24 * time.Hour, "2.0 years"},
		{"year and a half", 548 * 24 * time.Hour, "1.5 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAge(tt.elapsed))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 commit", Pluralize(1, "commit"))
	assert.Equal(t, "2 commits", Pluralize(2, "commit"))
	assert.Equal(t, "0 commits", Pluralize(0, "commit"))
	assert.Equal(t, "3 branches", Pluralize(3, "branch"))
	assert.Equal(t, "5 months", Pluralize(5, "month"))
}
