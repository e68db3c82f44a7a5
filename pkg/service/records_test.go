package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

func recordPaths[T any](records []tree.Record[T]) []string {
	paths := make([]string, 0, len(records))
	for _, r := range records {
		paths = append(paths, r.Path)
	}
	return paths
}

func TestChangeRecordsKeepFoldersContiguous(t *testing.T) {
	changes := []models.Change{
		{Path: "src/z.go", IndexStatus: ' ', WorktreeStatus: 'M'},
		{Path: "src-old.txt", IndexStatus: '?', WorktreeStatus: '?'},
		{Path: "src/lib/a.go", IndexStatus: 'A', WorktreeStatus: ' '},
		{Path: "README.md", IndexStatus: 'M', WorktreeStatus: 'M'},
	}

	records := ChangeRecords(changes)

	assert.Equal(t, []string{"README.md", "src/lib/a.go", "src/z.go", "src-old.txt"}, recordPaths(records))
	assert.True(t, records[0].IsChecked)
	assert.True(t, records[1].IsChecked)
	assert.False(t, records[2].IsChecked)
	assert.False(t, records[3].IsChecked)
	assert.Equal(t, "src/z.go", records[2].Data.Path)
}

func TestBranchRecords(t *testing.T) {
	branches := []models.Branch{
		{Name: "main", IsCurrent: true},
		{Name: "x", Remote: "origin"},
		{Name: "feature/login"},
		{Name: "main", Remote: "origin"},
		{Name: "origin/x"},
	}

	records := BranchRecords(branches)

	assert.Equal(t, []string{"feature/login", "main", "origin/main", "origin/x", "origin/x"}, recordPaths(records))
	assert.True(t, records[1].IsActive)
	assert.False(t, records[3].Data.IsRemote(), "local branch shadows the remote one with the same path")
	assert.True(t, records[4].Data.IsRemote())
}

func TestComparePaths(t *testing.T) {
	assert.True(t, comparePaths("a/b", "a/b/c", "/"))
	assert.False(t, comparePaths("a/b/c", "a/b", "/"))
	assert.True(t, comparePaths("a/b", "a-b", "/"))
	assert.True(t, comparePaths("a::b", "a::c", "::"))
}
