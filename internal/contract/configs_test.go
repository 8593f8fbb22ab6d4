package contract

import (
	"path/filepath"
	"testing"

	"github.com/consigcody94/repo-doctor/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr: ".",
		MaxFileSize: DefaultMaxFileSizeMB,
		StaleDays:   DefaultStaleBranchDays,
		Workers:     4,
		Output:      "text",
		Emoji:       "yes",
		Color:       "yes",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.True(t, filepath.IsAbs(cfg.RepoPath))
	assert.Equal(t, DefaultMaxFileSizeMB, cfg.MaxFileSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSizeBytes())
	assert.Equal(t, DefaultStaleBranchDays, cfg.StaleBranchDays)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.False(t, cfg.Deep)
	assert.False(t, cfg.SkipSecurity)
	assert.False(t, cfg.SkipFiles)
}

func TestProcessAndValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero max file size", func(in *ConfigRawInput) { in.MaxFileSize = 0 }},
		{"negative max file size", func(in *ConfigRawInput) { in.MaxFileSize = -5 }},
		{"zero stale days", func(in *ConfigRawInput) { in.StaleDays = 0 }},
		{"zero workers", func(in *ConfigRawInput) { in.Workers = 0 }},
		{"bad output mode", func(in *ConfigRawInput) { in.Output = "xml" }},
		{"parquet without file", func(in *ConfigRawInput) { in.Output = "parquet" }},
		{"negative width", func(in *ConfigRawInput) { in.Width = -1 }},
		{"bad color value", func(in *ConfigRawInput) { in.Color = "maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestProcessAndValidateParquetWithFile(t *testing.T) {
	input := validInput()
	input.Output = "parquet"
	input.OutputFile = "findings.parquet"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.ParquetOut, cfg.Output)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.go", TruncatePath("short.go", 40))
	long := "internal/deeply/nested/path/to/some/file.go"
	got := TruncatePath(long, 20)
	assert.Len(t, got, 20)
	assert.True(t, got[:3] == "...")
}
