package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

func TestChangeDetail(t *testing.T) {
	assert.Empty(t, changeDetail(&tree.Node[models.Change]{IsFolder: true}))

	modified := &tree.Node[models.Change]{Data: &models.Change{IndexStatus: ' ', WorktreeStatus: 'M'}}
	assert.Equal(t, "Modified", changeDetail(modified))

	renamed := &tree.Node[models.Change]{Data: &models.Change{OrigPath: "old.go", IndexStatus: 'R', WorktreeStatus: ' '}}
	assert.Equal(t, "Renamed from old.go", changeDetail(renamed))
}

func TestBranchDetail(t *testing.T) {
	assert.Empty(t, branchDetail(&tree.Node[models.Branch]{IsFolder: true}))

	tracking := &tree.Node[models.Branch]{Data: &models.Branch{Hash: "abc1234", Upstream: "origin/main"}}
	assert.Equal(t, "abc1234 → origin/main", branchDetail(tracking))

	diverged := &tree.Node[models.Branch]{Data: &models.Branch{Hash: "abc1234", Upstream: "origin/main", Ahead: 2, Behind: 1}}
	assert.Equal(t, "abc1234 → origin/main ↑2 ↓1", branchDetail(diverged))

	gone := &tree.Node[models.Branch]{Data: &models.Branch{Hash: "abc1234", Upstream: "origin/old", UpstreamGone: true}}
	assert.Equal(t, "abc1234 → origin/old gone", branchDetail(gone))

	assert.Empty(t, branchDetail(&tree.Node[models.Branch]{Data: &models.Branch{}}))
}

func TestCheckMinVersion(t *testing.T) {
	v := models.Version{Major: 3, Minor: 4, Patch: 1}

	assert.NoError(t, checkMinVersion(v, ""))
	assert.NoError(t, checkMinVersion(v, "3.4.1"))
	assert.NoError(t, checkMinVersion(v, "v2.13"))

	err := checkMinVersion(v, "3.5.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "older than required 3.5.0")

	assert.Error(t, checkMinVersion(v, "three"))
}

func TestFormatTracking(t *testing.T) {
	assert.Equal(t, "Branch:   (detached)\nUpstream: none", formatTracking(models.Tracking{}))

	full := models.Tracking{
		Branch:    "main",
		Upstream:  "origin/main",
		Remote:    "origin",
		RemoteURL: "git@example.com:me/repo.git",
		Ahead:     2,
		Behind:    1,
	}
	assert.Equal(t, "Branch:   main\n"+
		"Upstream: origin/main\n"+
		"Remote:   origin (git@example.com:me/repo.git)\n"+
		"Ahead:    2\n"+
		"Behind:   1", formatTracking(full))
}

func TestDisplayFlagsNoColor(t *testing.T) {
	assert.False(t, displayFlags{noColor: true}.color())

	t.Setenv("NO_COLOR", "1")
	assert.False(t, displayFlags{}.color())
}
