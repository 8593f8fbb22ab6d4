package core

import (
	"context"
	"testing"
	"time"

	"github.com/consigcody94/repo-doctor/internal/contract"
	"github.com/consigcody94/repo-doctor/schema"
	"github.com/stretchr/testify/assert"
)

func TestCollectBasic(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeTree(t, root, map[string][]byte{
		"main.go":   []byte("package main\n"),
		"README.md": []byte("# readme\n"),
	})

	now := time.Now()
	commitLog := []contract.CommitInfo{
		{Hash: "aaa", Author: "Alice", When: now.Add(-time.Hour)},
		{Hash: "bbb", Author: "Bob", When: now.Add(-40 * 24 * time.Hour)},
		{Hash: "ccc", Author: "Alice", When: now.Add(-60 * 24 * time.Hour)},
	}
	client := &contract.MockGitClient{}
	client.On("GetBranchList", ctx, root).Return([]contract.BranchInfo{
		{Name: "main", Current: true},
		{Name: "origin/main", Remote: true},
	}, nil)

	basic := collectBasic(ctx, client, root, commitLog)

	assert.Equal(t, 3, basic.TotalCommits)
	assert.Equal(t, 2, basic.TotalBranches)
	assert.Equal(t, 2, basic.TotalFiles)
	assert.Equal(t, 2, basic.Contributors)
	assert.Equal(t, commitLog[0].When, basic.LastCommit)
	assert.Equal(t, "2 months", basic.RepoAge)
}

func TestCollectBasicEmptyHistory(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	client := &contract.MockGitClient{}
	client.On("GetBranchList", ctx, root).Return([]contract.BranchInfo{}, nil)

	basic := collectBasic(ctx, client, root, nil)

	assert.Zero(t, basic.TotalCommits)
	assert.Zero(t, basic.Contributors)
	assert.True(t, basic.LastCommit.IsZero())
	assert.Equal(t, schema.FrequencyNone, basic.RepoAge)
}
