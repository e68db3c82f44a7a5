package service

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattsolo1/grove-changes/pkg/models"
)

// GetFileStatus runs `git status --porcelain=v1` and returns the changed
// files with repository-relative, slash-separated paths.
func GetFileStatus(repoPath string) ([]models.Change, error) {
	cmd := exec.Command("git", "status", "--porcelain=v1", "--untracked-files=all")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git status failed: %w\n%s", err, string(output))
	}

	return ParseStatus(string(output)), nil
}

// ParseStatus parses porcelain v1 output. Renames and copies keep the
// destination as Path and the source as OrigPath.
func ParseStatus(output string) []models.Change {
	var changes []models.Change
	lines := strings.Split(output, "\n")

	for _, line := range lines {
		if len(line) < 4 {
			continue
		}
		change := models.Change{
			IndexStatus:    models.FileStatus(line[0]),
			WorktreeStatus: models.FileStatus(line[1]),
		}
		filePath := strings.TrimSpace(line[3:])

		if change.IndexStatus == models.StatusRenamed || change.IndexStatus == models.StatusCopied {
			if from, to, ok := strings.Cut(filePath, " -> "); ok {
				change.OrigPath = unquotePath(from)
				filePath = to
			}
		}
		change.Path = unquotePath(filePath)
		if change.Path == "" {
			continue
		}
		changes = append(changes, change)
	}

	return changes
}

// unquotePath undoes git's C-style quoting of unusual file names.
func unquotePath(p string) string {
	if len(p) >= 2 && p[0] == '"' && p[len(p)-1] == '"' {
		if unquoted, err := strconv.Unquote(p); err == nil {
			return unquoted
		}
	}
	return p
}
