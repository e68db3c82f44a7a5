package models

import (
	"testing"
)

func TestChangeStaged(t *testing.T) {
	tests := []struct {
		code   string
		staged bool
	}{
		{"M ", true},
		{"MM", true},
		{"A ", true},
		{"R ", true},
		{" M", false},
		{" D", false},
		{"??", false},
		{"!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c := Change{IndexStatus: FileStatus(tt.code[0]), WorktreeStatus: FileStatus(tt.code[1])}
			if c.Staged() != tt.staged {
				t.Errorf("Expected Staged() %v for %q", tt.staged, tt.code)
			}
			if c.Code() != tt.code {
				t.Errorf("Expected code %q, got %q", tt.code, c.Code())
			}
		})
	}
}

func TestChangeStatusLabel(t *testing.T) {
	tests := []struct {
		code  string
		label string
	}{
		{"M ", "Modified"},
		{" D", "Deleted"},
		{"AM", "Modified"},
		{"??", "Untracked"},
		{"UU", "Unmerged"},
		{"AU", "Unmerged"},
		{" T", "Type Changed"},
		{"R ", "Renamed"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c := Change{IndexStatus: FileStatus(tt.code[0]), WorktreeStatus: FileStatus(tt.code[1])}
			if got := c.StatusLabel(); got != tt.label {
				t.Errorf("Expected label %q for %q, got %q", tt.label, tt.code, got)
			}
		})
	}
}

func TestBranchTreePath(t *testing.T) {
	local := Branch{Name: "feature/login"}
	if local.IsRemote() {
		t.Error("Expected local branch")
	}
	if local.TreePath() != "feature/login" {
		t.Errorf("Expected tree path 'feature/login', got %s", local.TreePath())
	}

	remote := Branch{Name: "feature/login", Remote: "origin"}
	if remote.TreePath() != "origin/feature/login" {
		t.Errorf("Expected tree path 'origin/feature/login', got %s", remote.TreePath())
	}
}

func TestBranchTrackingLabel(t *testing.T) {
	tests := []struct {
		name   string
		branch Branch
		label  string
	}{
		{"untracked", Branch{Name: "wip", Ahead: 4}, ""},
		{"in sync", Branch{Upstream: "origin/main"}, ""},
		{"ahead", Branch{Upstream: "origin/main", Ahead: 2}, "↑2"},
		{"behind", Branch{Upstream: "origin/main", Behind: 1}, "↓1"},
		{"diverged", Branch{Upstream: "origin/main", Ahead: 2, Behind: 1}, "↑2 ↓1"},
		{"gone", Branch{Upstream: "origin/old", UpstreamGone: true}, "gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.branch.TrackingLabel(); got != tt.label {
				t.Errorf("TrackingLabel() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"2.4.0", Version{Major: 2, Minor: 4}, false},
		{"v3.1", Version{Major: 3, Minor: 1}, false},
		{"2.13.3-rc1", Version{Major: 2, Minor: 13, Patch: 3, Special: "rc1"}, false},
		{"1.0.0+build7", Version{Major: 1, Special: "build7"}, false},
		{"", Version{}, true},
		{"1.2.3.4", Version{}, true},
		{"a.b", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestVersionStringAndLess(t *testing.T) {
	v := Version{Major: 2, Minor: 13, Patch: 3, Special: "rc1"}
	if v.String() != "2.13.3-rc1" {
		t.Errorf("Expected '2.13.3-rc1', got %s", v.String())
	}

	older := Version{Major: 2, Minor: 4}
	if !older.Less(v) {
		t.Error("Expected 2.4.0 < 2.13.3")
	}
	if v.Less(older) {
		t.Error("Expected 2.13.3 not < 2.4.0")
	}
	if older.Less(older) {
		t.Error("Expected version not less than itself")
	}
}
