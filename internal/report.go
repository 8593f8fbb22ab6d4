package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/consigcody94/repo-doctor/schema"
)

// LoadHealthReport reads a previously generated JSON report back from disk.
// The file is external input, so the invariants the analyzer guarantees are
// re-checked here instead of trusted: the score must be in range and the
// grade must agree with it. Nil collections are normalized so renderers see
// the same shape a fresh analysis produces.
func LoadHealthReport(path string) (*schema.RepositoryHealth, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read report %s: %w", path, err)
	}

	var health schema.RepositoryHealth
	if err := json.Unmarshal(data, &health); err != nil {
		return nil, fmt.Errorf("cannot parse report %s: %w", path, err)
	}

	if health.Score < 0 || health.Score > 100 {
		return nil, fmt.Errorf("report %s has out-of-range score %d", path, health.Score)
	}
	if expected := schema.GradeForScore(health.Score); health.Grade != expected {
		return nil, fmt.Errorf("report %s has grade %s but score %d implies %s",
			path, health.Grade, health.Score, expected)
	}
	if health.Repository == "" {
		return nil, fmt.Errorf("report %s is missing the repository path", path)
	}

	normalizeCollections(&health)
	return &health, nil
}

func normalizeCollections(health *schema.RepositoryHealth) {
	sec := &health.Metrics.Security
	if sec.PotentialSecrets == nil {
		sec.PotentialSecrets = []schema.SecurityFinding{}
	}
	if sec.SensitiveFiles == nil {
		sec.SensitiveFiles = []string{}
	}
	if sec.ExposedKeys == nil {
		sec.ExposedKeys = []schema.SecurityFinding{}
	}

	files := &health.Metrics.Files
	if files.FileTypes == nil {
		files.FileTypes = map[string]int{}
	}
	if files.LargeFiles == nil {
		files.LargeFiles = []schema.LargeFile{}
	}

	if health.Metrics.Branches.StaleBranches == nil {
		health.Metrics.Branches.StaleBranches = []schema.StaleBranch{}
	}
	if health.Issues == nil {
		health.Issues = []schema.Issue{}
	}
	if health.Recommendations == nil {
		health.Recommendations = []schema.Recommendation{}
	}
}
