package models

import "fmt"

// Branch represents a local or remote-tracking branch.
type Branch struct {
	Name           string `json:"name" yaml:"name"`                                             // Short name, e.g. "feature/login"
	Remote         string `json:"remote,omitempty" yaml:"remote,omitempty"`                     // Empty for local branches
	Upstream       string `json:"upstream,omitempty" yaml:"upstream,omitempty"`                 // e.g. "origin/feature/login"
	UpstreamRemote string `json:"upstream_remote,omitempty" yaml:"upstream_remote,omitempty"` // Remote of Upstream, e.g. "origin"
	Hash           string `json:"hash" yaml:"hash"`
	IsCurrent      bool   `json:"is_current" yaml:"is_current"`

	// Commits not yet on the upstream, and upstream commits not yet here.
	Ahead  int `json:"ahead,omitempty" yaml:"ahead,omitempty"`
	Behind int `json:"behind,omitempty" yaml:"behind,omitempty"`
	// UpstreamGone is set when the configured upstream no longer exists.
	UpstreamGone bool `json:"upstream_gone,omitempty" yaml:"upstream_gone,omitempty"`
}

// IsRemote returns true for remote-tracking branches.
func (b Branch) IsRemote() bool {
	return b.Remote != ""
}

// IsTracking returns true if the branch has an upstream configured.
func (b Branch) IsTracking() bool {
	return b.Upstream != ""
}

// TreePath returns the path the branch occupies in a branch tree. Remote
// branches are grouped under their remote name.
func (b Branch) TreePath() string {
	if b.IsRemote() {
		return b.Remote + "/" + b.Name
	}
	return b.Name
}

// TrackingLabel summarizes the branch against its upstream, e.g. "↑2 ↓1".
// It is empty for untracked branches and branches that are in sync.
func (b Branch) TrackingLabel() string {
	switch {
	case !b.IsTracking():
		return ""
	case b.UpstreamGone:
		return "gone"
	case b.Ahead > 0 && b.Behind > 0:
		return fmt.Sprintf("↑%d ↓%d", b.Ahead, b.Behind)
	case b.Ahead > 0:
		return fmt.Sprintf("↑%d", b.Ahead)
	case b.Behind > 0:
		return fmt.Sprintf("↓%d", b.Behind)
	}
	return ""
}

// Tracking describes the checked out branch and the remote it pushes to.
type Tracking struct {
	Branch    string `json:"branch"`
	Upstream  string `json:"upstream,omitempty"`
	Remote    string `json:"remote,omitempty"`
	RemoteURL string `json:"remote_url,omitempty"`
	Ahead     int    `json:"ahead"`
	Behind    int    `json:"behind"`
}

// IsTracking returns true if the current branch has an upstream.
func (t Tracking) IsTracking() bool {
	return t.Upstream != ""
}
