// Package tree maintains a flattened, depth-ordered check tree built from
// flat path records.
//
// The nodes of a Tree are kept in a single pre-order slice. Ancestor,
// descendant and sibling relationships are never stored; they are derived by
// scanning contiguous index ranges and comparing levels. The descendants of
// nodes[i] are exactly the nodes that follow it while their level is greater
// than nodes[i].Level.
//
// A Tree is owned by a single goroutine. None of its methods lock or block,
// and callers receiving data from other goroutines must hand it back to the
// owner before calling Load or any toggle method.
package tree

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// MetaSuffix is the suffix that marks a sidecar file of the preceding leaf.
const MetaSuffix = ".meta"

// DefaultPathSeparator is used when Options.PathSeparator is empty.
const DefaultPathSeparator = "/"

// Options configures how a Tree is built. They are read at the start of
// every Load.
type Options struct {
	Title            string
	DisplayRootNode  bool
	IsSelectable     bool
	IsCheckable      bool
	PathSeparator    string
	PromoteMetaFiles bool
}

// Store supplies and receives the state that survives rebuilds.
type Store interface {
	CollapsedFolders() []string
	CheckedFiles() []string
	SelectedPath() string
	AddCheckedNode(path string)
	RemoveCheckedNode(path string)
}

type nopStore struct{}

func (nopStore) CollapsedFolders() []string { return nil }
func (nopStore) CheckedFiles() []string     { return nil }
func (nopStore) SelectedPath() string       { return "" }
func (nopStore) AddCheckedNode(string)      {}
func (nopStore) RemoveCheckedNode(string)   {}

// Tree is a hierarchical check tree over records carrying a payload of type T.
type Tree[T any] struct {
	opts     Options
	store    Store
	decorate func(*Node[T])
	logger   *logrus.Entry

	nodes    []*Node[T]
	selected int
}

// New creates an empty tree. A nil store keeps no state between rebuilds.
func New[T any](opts Options, store Store) *Tree[T] {
	if store == nil {
		store = nopStore{}
	}
	return &Tree[T]{
		opts:     opts,
		store:    store,
		logger:   logrus.NewEntry(logrus.StandardLogger()).WithField("component", "tree"),
		selected: -1,
	}
}

// SetDecorator installs the hook invoked once for every node created by Load.
func (t *Tree[T]) SetDecorator(fn func(*Node[T])) {
	t.decorate = fn
}

// SetLogger replaces the tree's logger.
func (t *Tree[T]) SetLogger(logger *logrus.Entry) {
	if logger == nil {
		return
	}
	t.logger = logger.WithField("component", "tree")
}

// Options returns the current build options.
func (t *Tree[T]) Options() Options {
	return t.opts
}

// SetOptions replaces the build options. They take effect on the next Load.
func (t *Tree[T]) SetOptions(opts Options) {
	t.opts = opts
}

func (t *Tree[T]) separator() string {
	if t.opts.PathSeparator == "" {
		return DefaultPathSeparator
	}
	return t.opts.PathSeparator
}

func toSet(paths []string) map[string]struct{} {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return set
}

// Load discards the current nodes and rebuilds the tree from records.
//
// Records must be ordered so that records sharing a path prefix are
// contiguous; Load does not sort. Collapse, check and selection state are
// read from the store and applied to the matching nodes of the new tree.
func (t *Tree[T]) Load(records []Record[T]) {
	opts := t.opts
	sep := t.separator()

	collapsedFolders := toSet(t.store.CollapsedFolders())
	checkedFiles := toSet(t.store.CheckedFiles())
	selectedPath := t.store.SelectedPath()
	seen := make(map[string]struct{})

	displayRootLevel := 0
	if opts.DisplayRootNode {
		displayRootLevel = 1
	}

	hideChildren := false
	hideChildrenBelowLevel := 0
	var lastAddedNode *Node[T]

	t.clear()

	root := &Node[T]{
		Path:            opts.Title,
		Label:           opts.Title,
		Level:           displayRootLevel - 1,
		IsFolder:        true,
		TreeIsCheckable: opts.IsCheckable,
	}
	if _, ok := collapsedFolders[opts.Title]; ok && opts.DisplayRootNode {
		root.IsCollapsed = true
		hideChildren = true
		hideChildrenBelowLevel = root.Level
	}
	t.addNode(root, t.isSelected(opts.Title, selectedPath))

	for i := range records {
		record := &records[i]
		parts := strings.Split(record.Path, sep)
		promotedOffset := 0

		for level, label := range parts {
			nodePath := strings.Join(parts[:level+1], sep)
			isFolder := level < len(parts)-1

			if lastAddedNode != nil && !lastAddedNode.IsFolder && t.promoteNode(lastAddedNode, label) {
				lastAddedNode.IsContainer = true
				promotedOffset = 1

				if _, ok := collapsedFolders[lastAddedNode.Path]; ok && !lastAddedNode.IsCollapsed {
					lastAddedNode.IsCollapsed = true
					if !hideChildren {
						hideChildren = true
						hideChildrenBelowLevel = lastAddedNode.Level
					}
				}
			}

			if _, ok := seen[nodePath]; ok {
				continue
			}
			seen[nodePath] = struct{}{}

			node := &Node[T]{
				Path:            nodePath,
				Label:           label,
				Level:           level + displayRootLevel + promotedOffset,
				IsFolder:        isFolder,
				TreeIsCheckable: opts.IsCheckable,
			}

			if hideChildren {
				if node.Level <= hideChildrenBelowLevel {
					hideChildren = false
				} else {
					node.IsHidden = true
				}
			}

			if isFolder {
				if _, ok := collapsedFolders[nodePath]; ok {
					node.IsCollapsed = true
					if !hideChildren {
						hideChildren = true
						hideChildrenBelowLevel = node.Level
					}
				}
			} else {
				node.IsActive = record.IsActive
				data := record.Data
				node.Data = &data
				if opts.IsCheckable {
					_, persisted := checkedFiles[nodePath]
					if persisted || record.IsChecked {
						node.CheckState = Checked
					}
				}
			}

			t.addNode(node, t.isSelected(nodePath, selectedPath))
			lastAddedNode = node
		}
	}

	if opts.IsCheckable {
		t.rollupCheckStates()
		t.syncCheckedFiles(checkedFiles)
	}

	if t.decorate != nil {
		for _, node := range t.nodes {
			t.decorate(node)
		}
	}

	t.logger.WithFields(logrus.Fields{
		"title":    opts.Title,
		"records":  len(records),
		"nodes":    len(t.nodes),
		"selected": t.SelectedNodePath(),
	}).Debug("Loaded tree")
}

func (t *Tree[T]) isSelected(path, selectedPath string) bool {
	return t.opts.IsSelectable && selectedPath != "" && path == selectedPath
}

// promoteNode reports whether nextLabel is the sidecar of previous.
func (t *Tree[T]) promoteNode(previous *Node[T], nextLabel string) bool {
	if !t.opts.PromoteMetaFiles || previous == nil {
		return false
	}
	if !strings.HasSuffix(nextLabel, MetaSuffix) {
		return false
	}
	return previous.Label == strings.TrimSuffix(nextLabel, MetaSuffix)
}

// rollupCheckStates walks the nodes backwards so every folder and container
// sees the final state of its leaves.
func (t *Tree[T]) rollupCheckStates() {
	for index := len(t.nodes) - 1; index >= 0; index-- {
		node := t.nodes[index]
		if !node.IsFolderOrContainer() {
			continue
		}

		anyLeaf := false
		anyChecked := false
		allChecked := true
		for i := index + 1; i < len(t.nodes) && t.nodes[i].Level > node.Level; i++ {
			child := t.nodes[i]
			if child.IsFolder {
				continue
			}
			anyLeaf = true
			isChecked := child.CheckState == Checked
			anyChecked = anyChecked || isChecked
			allChecked = allChecked && isChecked
		}

		switch {
		case !anyLeaf:
			if node.IsFolder {
				node.CheckState = Empty
			}
		case !anyChecked:
			node.CheckState = Empty
		case allChecked:
			node.CheckState = Checked
		default:
			node.CheckState = Mixed
		}
	}
}

// syncCheckedFiles reports every difference between the persisted checked
// set and the checked leaves of the new tree, so the store mirrors the tree
// after a rebuild.
func (t *Tree[T]) syncCheckedFiles(persisted map[string]struct{}) {
	present := make(map[string]struct{}, len(persisted))
	for i, node := range t.nodes {
		if i == 0 || node.IsFolder {
			continue
		}
		_, wasPersisted := persisted[node.Path]
		if wasPersisted {
			present[node.Path] = struct{}{}
		}
		switch {
		case node.IsChecked() && !wasPersisted:
			t.store.AddCheckedNode(node.Path)
		case !node.IsChecked() && wasPersisted:
			t.store.RemoveCheckedNode(node.Path)
		}
	}
	for path := range persisted {
		if _, ok := present[path]; !ok {
			t.store.RemoveCheckedNode(path)
		}
	}
}

func (t *Tree[T]) addNode(node *Node[T], isSelected bool) *Node[T] {
	t.nodes = append(t.nodes, node)
	if isSelected {
		t.selected = len(t.nodes) - 1
	}
	return node
}

func (t *Tree[T]) clear() {
	t.nodes = t.nodes[:0:0]
	t.selected = -1
}

// Nodes returns the flattened node list. Callers must not reorder it.
func (t *Tree[T]) Nodes() []*Node[T] {
	return t.nodes
}

// Len returns the number of nodes including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Node returns the node at idx, or nil if idx is out of range.
func (t *Tree[T]) Node(idx int) *Node[T] {
	if idx < 0 || idx >= len(t.nodes) {
		return nil
	}
	return t.nodes[idx]
}

// IndexOf returns the index of the node with the given path, or -1.
func (t *Tree[T]) IndexOf(path string) int {
	for i, node := range t.nodes {
		if node.Path == path {
			return i
		}
	}
	return -1
}

// VisibleNodes returns the nodes that are not hidden by a collapsed ancestor,
// leaving out the root when it is not displayed.
func (t *Tree[T]) VisibleNodes() []*Node[T] {
	var visible []*Node[T]
	for i, node := range t.nodes {
		if i == 0 && !t.opts.DisplayRootNode {
			continue
		}
		if !node.IsHidden {
			visible = append(visible, node)
		}
	}
	return visible
}

// SelectedIndex returns the index of the selected node, or -1.
func (t *Tree[T]) SelectedIndex() int {
	return t.selected
}

// SelectedNode returns the selected node, or nil when nothing is selected.
func (t *Tree[T]) SelectedNode() *Node[T] {
	return t.Node(t.selected)
}

// SelectedNodePath returns the path of the selected node, or "".
func (t *Tree[T]) SelectedNodePath() string {
	if node := t.SelectedNode(); node != nil {
		return node.Path
	}
	return ""
}

// SetSelectedIndex selects the node at idx. Out of range indices and
// non-selectable trees clear the selection.
func (t *Tree[T]) SetSelectedIndex(idx int) {
	if !t.opts.IsSelectable || idx < 0 || idx >= len(t.nodes) {
		t.selected = -1
		return
	}
	t.selected = idx
}

// CollapsedFolders returns the paths of the currently collapsed nodes, in
// tree order, for the caller to persist.
func (t *Tree[T]) CollapsedFolders() []string {
	var paths []string
	for _, node := range t.nodes {
		if node.IsFolderOrContainer() && node.IsCollapsed {
			paths = append(paths, node.Path)
		}
	}
	return paths
}
