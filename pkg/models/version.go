package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a dotted major.minor.patch version, as reported by git-lfs.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
	// Special holds anything after a '-' or '+', e.g. "rc1".
	Special string `json:"special,omitempty"`
}

// ParseVersion parses strings like "2.4.0", "v3.1" or "2.13.3-rc1".
func ParseVersion(s string) (Version, error) {
	var v Version
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return v, fmt.Errorf("empty version")
	}

	if i := strings.IndexAny(s, "-+"); i >= 0 {
		v.Special = s[i+1:]
		s = s[:i]
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid version %q", s)
	}
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return v, fmt.Errorf("invalid version component %q: %w", part, err)
		}
		*fields[i] = n
	}
	return v, nil
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Special != "" {
		s += "-" + v.Special
	}
	return s
}

// Less reports whether v orders before other. Special suffixes are ignored.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}
