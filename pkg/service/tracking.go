package service

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattsolo1/grove-changes/pkg/models"
)

// GetRemoteURL returns the fetch URL of the named remote.
func GetRemoteURL(repoPath, remote string) (string, error) {
	cmd := exec.Command("git", "remote", "get-url", remote)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("get url of remote %s: %w", remote, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the checked out branch from branches, or false when
// HEAD is detached.
func CurrentBranch(branches []models.Branch) (models.Branch, bool) {
	for _, b := range branches {
		if b.IsCurrent && !b.IsRemote() {
			return b, true
		}
	}
	return models.Branch{}, false
}

// Tracking reports the current branch's upstream, its remote and how far the
// two have diverged. Only local data is read; nothing is fetched.
func (s *Service) Tracking() (models.Tracking, error) {
	branches, err := s.branches(s.RepoPath)
	if err != nil {
		return models.Tracking{}, err
	}

	current, ok := CurrentBranch(branches)
	if !ok {
		return models.Tracking{Branch: s.Branch}, nil
	}

	tracking := models.Tracking{
		Branch:   current.Name,
		Upstream: current.Upstream,
		Remote:   current.UpstreamRemote,
		Ahead:    current.Ahead,
		Behind:   current.Behind,
	}
	if tracking.Remote != "" {
		url, err := s.remoteURL(s.RepoPath, tracking.Remote)
		if err != nil {
			s.logger.WithError(err).Debug("Could not resolve remote URL")
		} else {
			tracking.RemoteURL = url
		}
	}
	return tracking, nil
}
