package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-changes/pkg/state"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

// Session couples a tree with the persisted state it reads from and writes
// back to. A session is used from a single goroutine.
type Session[T any] struct {
	Tree    *tree.Tree[T]
	State   *state.State
	Records []tree.Record[T]

	scope   string
	backend state.Backend
	logger  *logrus.Entry
}

func openSession[T any](s *Service, name string, opts tree.Options, records []tree.Record[T]) (*Session[T], error) {
	scope := state.Scope(s.RepoPath, name)
	st, err := s.backend.Load(scope)
	if err != nil {
		return nil, fmt.Errorf("load %s state: %w", name, err)
	}

	logger := s.logger.WithField("tree", name)
	t := tree.New[T](opts, st)
	t.SetLogger(logger)

	return &Session[T]{
		Tree:    t,
		State:   st,
		Records: records,
		scope:   scope,
		backend: s.backend,
		logger:  logger,
	}, nil
}

// Scope returns the key the session's state is stored under.
func (s *Session[T]) Scope() string {
	return s.scope
}

// Load builds the tree from the session's records. A record's IsChecked seed
// only applies until the scope's state has been saved once.
func (s *Session[T]) Load() {
	records := s.Records
	if s.State.Saved() {
		records = make([]tree.Record[T], len(s.Records))
		for i, r := range s.Records {
			r.IsChecked = false
			records[i] = r
		}
	}
	s.Tree.Load(records)
}

// SetDisplayRoot shows or hides the root node from the next Load on.
func (s *Session[T]) SetDisplayRoot(display bool) {
	opts := s.Tree.Options()
	opts.DisplayRootNode = display
	s.Tree.SetOptions(opts)
}

func (s *Session[T]) indexOf(path string) (int, error) {
	idx := s.Tree.IndexOf(path)
	if idx == 0 && !s.Tree.Options().DisplayRootNode {
		idx = -1
	}
	if idx < 0 {
		return -1, fmt.Errorf("path not found in %s: %s", s.Tree.Options().Title, path)
	}
	return idx, nil
}

// ToggleChecked toggles the check state of each path in order. It stops at
// the first path that is not in the tree.
func (s *Session[T]) ToggleChecked(paths ...string) error {
	if !s.Tree.Options().IsCheckable {
		return fmt.Errorf("%s is not checkable", s.Tree.Options().Title)
	}
	for _, p := range paths {
		idx, err := s.indexOf(p)
		if err != nil {
			return err
		}
		s.Tree.ToggleNodeChecked(idx)
	}
	return nil
}

// ToggleCollapsed collapses or expands each folder path in order.
func (s *Session[T]) ToggleCollapsed(paths ...string) error {
	for _, p := range paths {
		idx, err := s.indexOf(p)
		if err != nil {
			return err
		}
		if !s.Tree.Node(idx).IsFolderOrContainer() {
			return fmt.Errorf("not a folder: %s", p)
		}
		s.Tree.ToggleNodeVisibility(idx)
	}
	return nil
}

// Select makes path the selected node.
func (s *Session[T]) Select(path string) error {
	if !s.Tree.Options().IsSelectable {
		return fmt.Errorf("%s is not selectable", s.Tree.Options().Title)
	}
	idx, err := s.indexOf(path)
	if err != nil {
		return err
	}
	s.Tree.SetSelectedIndex(idx)
	return nil
}

// SetAllChecked checks or clears every node.
func (s *Session[T]) SetAllChecked(checked bool) error {
	if !s.Tree.Options().IsCheckable {
		return fmt.Errorf("%s is not checkable", s.Tree.Options().Title)
	}
	s.Tree.SetCheckStateOnAll(checked)
	return nil
}

// Save copies the tree's collapse and selection into the state and writes it
// when anything changed.
func (s *Session[T]) Save() error {
	s.State.SetCollapsed(s.Tree.CollapsedFolders())
	if s.Tree.Options().IsSelectable {
		s.State.SetSelected(s.Tree.SelectedNodePath())
	}
	if !s.State.Dirty() {
		s.logger.Debug("State unchanged, skipping save")
		return nil
	}
	if err := s.backend.Save(s.scope, s.State); err != nil {
		return fmt.Errorf("save %s: %w", s.scope, err)
	}
	s.logger.WithField("scope", s.scope).Debug("Saved tree state")
	return nil
}
