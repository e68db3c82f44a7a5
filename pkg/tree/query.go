package tree

// GetLeafNodes returns, in tree order, every non-folder descendant of node.
// Containers count as leaves. It returns nil if node is not part of the tree.
func (t *Tree[T]) GetLeafNodes(node *Node[T]) []*Node[T] {
	for i, n := range t.nodes {
		if n == node {
			return t.LeafNodesAt(i)
		}
	}
	return nil
}

// LeafNodesAt is GetLeafNodes for the node at idx.
func (t *Tree[T]) LeafNodesAt(idx int) []*Node[T] {
	node := t.Node(idx)
	if node == nil {
		return nil
	}
	var results []*Node[T]
	for i := idx + 1; i < len(t.nodes) && t.nodes[i].Level > node.Level; i++ {
		if !t.nodes[i].IsFolder {
			results = append(results, t.nodes[i])
		}
	}
	return results
}

// GetCheckedFiles returns the paths of the checked leaves in tree order.
func (t *Tree[T]) GetCheckedFiles() []string {
	var paths []string
	for i, node := range t.nodes {
		if i == 0 || node.IsFolder {
			continue
		}
		if node.IsChecked() {
			paths = append(paths, node.Path)
		}
	}
	return paths
}
