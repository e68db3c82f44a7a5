package service

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-changes/pkg/models"
)

const branchFormat = "%(HEAD)%09%(refname)%09%(objectname:short)%09%(upstream:short)%09%(upstream:track)%09%(upstream:remotename)"

// GetBranches lists local and remote-tracking branches of the repository.
func GetBranches(repoPath string) ([]models.Branch, error) {
	cmd := exec.Command("git", "for-each-ref", "--format="+branchFormat, "refs/heads", "refs/remotes")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("list branches: %w", err)
	}

	return ParseBranches(string(output)), nil
}

// ParseBranches parses the output of GetBranches' for-each-ref call. The
// symbolic refs/remotes/<remote>/HEAD entries are skipped.
func ParseBranches(output string) []models.Branch {
	var branches []models.Branch

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}

		b := models.Branch{
			IsCurrent: strings.TrimSpace(fields[0]) == "*",
			Hash:      fields[2],
		}
		if len(fields) > 3 {
			b.Upstream = fields[3]
		}
		if len(fields) > 4 {
			b.Ahead, b.Behind, b.UpstreamGone = parseTrack(fields[4])
		}
		if len(fields) > 5 {
			b.UpstreamRemote = fields[5]
		}

		ref := fields[1]
		switch {
		case strings.HasPrefix(ref, "refs/heads/"):
			b.Name = strings.TrimPrefix(ref, "refs/heads/")
		case strings.HasPrefix(ref, "refs/remotes/"):
			remote, name, ok := strings.Cut(strings.TrimPrefix(ref, "refs/remotes/"), "/")
			if !ok || name == "HEAD" {
				continue
			}
			b.Remote = remote
			b.Name = name
		default:
			continue
		}

		branches = append(branches, b)
	}

	return branches
}

// parseTrack parses %(upstream:track) values such as "[ahead 2, behind 1]",
// "[behind 3]" or "[gone]". An empty value means in sync or untracked.
func parseTrack(track string) (ahead, behind int, gone bool) {
	track = strings.TrimSpace(track)
	track = strings.TrimSuffix(strings.TrimPrefix(track, "["), "]")
	if track == "" {
		return 0, 0, false
	}

	for _, part := range strings.Split(track, ",") {
		key, value, _ := strings.Cut(strings.TrimSpace(part), " ")
		switch key {
		case "ahead":
			ahead, _ = strconv.Atoi(value)
		case "behind":
			behind, _ = strconv.Atoi(value)
		case "gone":
			gone = true
		}
	}
	return ahead, behind, gone
}
