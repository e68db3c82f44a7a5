package service

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/mattsolo1/grove-changes/pkg/models"
)

// GetLfsVersion runs `git lfs version` in repoPath.
func GetLfsVersion(repoPath string) (models.Version, error) {
	cmd := exec.Command("git", "lfs", "version")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return models.Version{}, fmt.Errorf("git lfs version failed: %w\n%s", err, string(output))
	}

	for _, line := range strings.Split(string(output), "\n") {
		if v, ok := ParseLfsVersionLine(line); ok {
			return v, nil
		}
	}
	return models.Version{}, fmt.Errorf("unexpected git lfs version output: %q", strings.TrimSpace(string(output)))
}

// ParseLfsVersionLine parses a line such as
// "git-lfs/2.4.0 (GitHub; windows amd64; go 1.8.3; git 6f4b2e98)".
// Empty or unrecognized lines return false.
func ParseLfsVersionLine(line string) (models.Version, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return models.Version{}, false
	}

	parts := strings.FieldsFunc(line, func(r rune) bool { return r == '/' || r == ' ' })
	if len(parts) < 2 {
		return models.Version{}, false
	}

	v, err := models.ParseVersion(parts[1])
	if err != nil {
		return models.Version{}, false
	}
	return v, true
}
