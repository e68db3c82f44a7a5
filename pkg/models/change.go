package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileStatus is a single porcelain v1 status letter.
type FileStatus byte

const (
	StatusUnmodified FileStatus = ' '
	StatusModified   FileStatus = 'M'
	StatusTypeChange FileStatus = 'T'
	StatusAdded      FileStatus = 'A'
	StatusDeleted    FileStatus = 'D'
	StatusRenamed    FileStatus = 'R'
	StatusCopied     FileStatus = 'C'
	StatusUnmerged   FileStatus = 'U'
	StatusUntracked  FileStatus = '?'
	StatusIgnored    FileStatus = '!'
)

var statusNames = map[FileStatus]string{
	StatusUnmodified: "unmodified",
	StatusModified:   "modified",
	StatusTypeChange: "type changed",
	StatusAdded:      "added",
	StatusDeleted:    "deleted",
	StatusRenamed:    "renamed",
	StatusCopied:     "copied",
	StatusUnmerged:   "unmerged",
	StatusUntracked:  "untracked",
	StatusIgnored:    "ignored",
}

var titleCaser = cases.Title(language.English)

// Change is one entry of the working tree status.
type Change struct {
	Path           string     `json:"path" yaml:"path"`
	OrigPath       string     `json:"orig_path,omitempty" yaml:"orig_path,omitempty"` // Source path of a rename or copy
	IndexStatus    FileStatus `json:"index_status" yaml:"index_status"`
	WorktreeStatus FileStatus `json:"worktree_status" yaml:"worktree_status"`
}

// Code returns the two-letter porcelain code, e.g. "M " or "??".
func (c Change) Code() string {
	return string([]byte{byte(c.IndexStatus), byte(c.WorktreeStatus)})
}

// Staged returns true if the index holds a change for this path.
func (c Change) Staged() bool {
	switch c.IndexStatus {
	case StatusUnmodified, StatusUntracked, StatusIgnored:
		return false
	}
	return true
}

// Untracked returns true for files git does not know about.
func (c Change) Untracked() bool {
	return c.IndexStatus == StatusUntracked
}

// Status returns the most relevant status letter: the worktree one when the
// file has unstaged changes, the index one otherwise.
func (c Change) Status() FileStatus {
	if c.WorktreeStatus != StatusUnmodified {
		return c.WorktreeStatus
	}
	return c.IndexStatus
}

// StatusLabel returns a display label such as "Modified" or "Untracked".
func (c Change) StatusLabel() string {
	if c.IndexStatus == StatusUnmerged || c.WorktreeStatus == StatusUnmerged {
		return titleCaser.String(statusNames[StatusUnmerged])
	}
	name, ok := statusNames[c.Status()]
	if !ok {
		name = strings.TrimSpace(c.Code())
	}
	return titleCaser.String(name)
}
