package service

import (
	"sort"
	"strings"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

// comparePaths orders paths segment by segment so that every folder's
// entries end up contiguous, which tree.Load relies on.
func comparePaths(a, b, sep string) bool {
	as := strings.Split(a, sep)
	bs := strings.Split(b, sep)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return as[i] < bs[i]
		}
	}
	return len(as) < len(bs)
}

// ChangeRecords converts status entries into sorted tree records. Staged
// entries start out checked.
func ChangeRecords(changes []models.Change) []tree.Record[models.Change] {
	records := make([]tree.Record[models.Change], 0, len(changes))
	for _, c := range changes {
		records = append(records, tree.Record[models.Change]{
			Path:      c.Path,
			IsChecked: c.Staged(),
			Data:      c,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return comparePaths(records[i].Path, records[j].Path, "/")
	})
	return records
}

// BranchRecords converts branches into sorted tree records. Remote-tracking
// branches sit under their remote's name; when a local branch has the same
// tree path it sorts first and wins. The checked out branch is active.
func BranchRecords(branches []models.Branch) []tree.Record[models.Branch] {
	records := make([]tree.Record[models.Branch], 0, len(branches))
	for _, b := range branches {
		records = append(records, tree.Record[models.Branch]{
			Path:     b.TreePath(),
			IsActive: b.IsCurrent,
			Data:     b,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Path == records[j].Path {
			return !records[i].Data.IsRemote() && records[j].Data.IsRemote()
		}
		return comparePaths(records[i].Path, records[j].Path, "/")
	})
	return records
}
