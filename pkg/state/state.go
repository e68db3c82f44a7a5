// Package state persists the collapse, check and selection state of trees
// between invocations.
package state

import (
	"fmt"
	"sort"
)

// State is the persisted side-state of one tree. It satisfies tree.Store.
type State struct {
	Collapsed map[string]struct{}
	Checked   map[string]struct{}
	Selected  string

	dirty bool
	saved bool
}

// New returns an empty state.
func New() *State {
	return &State{
		Collapsed: make(map[string]struct{}),
		Checked:   make(map[string]struct{}),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CollapsedFolders returns the collapsed paths in sorted order.
func (s *State) CollapsedFolders() []string {
	return sortedKeys(s.Collapsed)
}

// CheckedFiles returns the checked paths in sorted order.
func (s *State) CheckedFiles() []string {
	return sortedKeys(s.Checked)
}

// SelectedPath returns the persisted selection.
func (s *State) SelectedPath() string {
	return s.Selected
}

// AddCheckedNode records path as checked.
func (s *State) AddCheckedNode(path string) {
	if _, ok := s.Checked[path]; ok {
		return
	}
	s.Checked[path] = struct{}{}
	s.dirty = true
}

// RemoveCheckedNode forgets path.
func (s *State) RemoveCheckedNode(path string) {
	if _, ok := s.Checked[path]; !ok {
		return
	}
	delete(s.Checked, path)
	s.dirty = true
}

// SetCollapsed replaces the collapsed set with paths.
func (s *State) SetCollapsed(paths []string) {
	next := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		next[p] = struct{}{}
	}
	if !equalSets(s.Collapsed, next) {
		s.Collapsed = next
		s.dirty = true
	}
}

// SetSelected replaces the selected path.
func (s *State) SetSelected(path string) {
	if s.Selected != path {
		s.Selected = path
		s.dirty = true
	}
}

// Dirty reports whether the state changed since it was loaded or saved.
func (s *State) Dirty() bool {
	return s.dirty
}

// MarkClean resets the dirty flag, typically after a successful Save.
func (s *State) MarkClean() {
	s.dirty = false
}

// Saved reports whether the state was loaded from, or written to, a backend.
// A state that was never saved is the first run of its scope.
func (s *State) Saved() bool {
	return s.saved
}

func (s *State) markSaved() {
	s.dirty = false
	s.saved = true
}

func equalSets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Backend loads and saves State per scope. A scope identifies one tree of
// one repository, see Scope.
type Backend interface {
	Load(scope string) (*State, error)
	Save(scope string, s *State) error
	// Scopes lists every scope with stored state, sorted.
	Scopes() ([]string, error)
	Close() error
}

// Scope builds the storage key for the tree named name in repoPath.
func Scope(repoPath, name string) string {
	return repoPath + "#" + name
}

// Backend kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindYAML   = "yaml"
)

// Open returns the backend of the given kind rooted at dataDir.
func Open(kind, dataDir string) (Backend, error) {
	switch kind {
	case "", KindSQLite:
		return NewSQLiteBackend(dataDir)
	case KindYAML:
		return NewFileBackend(dataDir)
	default:
		return nil, fmt.Errorf("unknown state backend %q (want %q or %q)", kind, KindSQLite, KindYAML)
	}
}
