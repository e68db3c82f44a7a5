package tree

import "fmt"

// ToggleNodeVisibility collapses or expands the folder or container at idx.
//
// Expanding leaves the subtrees of nested collapsed nodes hidden. If the
// selected node ends up hidden, the toggled node becomes the selection.
func (t *Tree[T]) ToggleNodeVisibility(idx int) {
	node := t.Node(idx)
	if node == nil || !node.IsFolderOrContainer() {
		return
	}

	node.IsCollapsed = !node.IsCollapsed
	hide := node.IsCollapsed || node.IsHidden

	for i := idx + 1; i < len(t.nodes) && t.nodes[i].Level > node.Level; i++ {
		child := t.nodes[i]
		child.IsHidden = hide
		if !hide && child.IsFolderOrContainer() && child.IsCollapsed {
			// Skip the nested subtree; it stays hidden under its own fold.
			for i+1 < len(t.nodes) && t.nodes[i+1].Level > child.Level {
				i++
			}
		}
	}

	if selected := t.SelectedNode(); selected != nil && selected.IsHidden {
		t.selected = idx
	}
}

// ToggleNodeChecked flips the check state of the node at idx. Mixed and
// Empty become Checked, Checked becomes Empty. The new value is pushed down
// to every descendant and the ancestors are recomputed up to the root.
func (t *Tree[T]) ToggleNodeChecked(idx int) {
	node := t.Node(idx)
	if node == nil || !t.opts.IsCheckable {
		return
	}

	var checkState CheckState
	switch node.CheckState {
	case Mixed, Empty:
		checkState = Checked
	case Checked:
		checkState = Empty
	default:
		panic(fmt.Sprintf("tree: unknown check state %d on %q", int(node.CheckState), node.Path))
	}

	t.setCheckState(node, checkState)

	if node.IsFolderOrContainer() {
		t.setChildrenCheckState(idx, checkState)
	}

	t.updateParentsCheckState(idx)
}

// SetCheckStateOnAll checks or unchecks every node in the tree.
func (t *Tree[T]) SetCheckStateOnAll(isChecked bool) {
	if !t.opts.IsCheckable {
		return
	}
	state := Empty
	if isChecked {
		state = Checked
	}
	for _, node := range t.nodes {
		t.setCheckState(node, state)
	}
}

// setChildrenCheckState gives every descendant of idx the same terminal
// state; nested folders are not recomputed.
func (t *Tree[T]) setChildrenCheckState(idx int, state CheckState) {
	level := t.nodes[idx].Level
	for i := idx + 1; i < len(t.nodes) && t.nodes[i].Level > level; i++ {
		t.setCheckState(t.nodes[i], state)
	}
}

// updateParentsCheckState walks from idx to the root. At each level the
// parent inherits the node's state when every sibling shares it, and becomes
// Mixed otherwise.
func (t *Tree[T]) updateParentsCheckState(idx int) {
	for idx > 0 {
		node := t.nodes[idx]
		siblingsInSameState := true

		parentIndex := 0
		for i := idx - 1; i >= 0; i-- {
			previous := t.nodes[i]
			if previous.Level < node.Level {
				parentIndex = i
				break
			}
			if previous.Level == node.Level && previous.CheckState != node.CheckState {
				siblingsInSameState = false
			}
		}

		if siblingsInSameState {
			for i := idx + 1; i < len(t.nodes) && t.nodes[i].Level >= node.Level; i++ {
				following := t.nodes[i]
				if following.Level == node.Level && following.CheckState != node.CheckState {
					siblingsInSameState = false
					break
				}
			}
		}

		parentState := Mixed
		if siblingsInSameState {
			parentState = node.CheckState
		}
		t.setCheckState(t.nodes[parentIndex], parentState)

		idx = parentIndex
	}
}

// setCheckState stores state on node and reports leaf flips to the store.
func (t *Tree[T]) setCheckState(node *Node[T], state CheckState) {
	wasChecked := node.IsChecked()
	node.CheckState = state

	if node.IsFolder {
		return
	}
	isChecked := node.IsChecked()
	switch {
	case isChecked && !wasChecked:
		t.store.AddCheckedNode(node.Path)
	case !isChecked && wasChecked:
		t.store.RemoveCheckedNode(node.Path)
	}
}
