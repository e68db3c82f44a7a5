package tree

import "fmt"

// CheckState is the tri-state check value of a node.
type CheckState int

const (
	Empty CheckState = iota
	Checked
	Mixed
)

func (s CheckState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Checked:
		return "checked"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("CheckState(%d)", int(s))
	}
}

// Record is one flat input row handed to Load. Path segments are joined by
// the tree's path separator; empty segments are not supported.
type Record[T any] struct {
	Path      string
	IsActive  bool
	IsChecked bool
	Data      T
}

// Node represents a single line in the flattened tree.
type Node[T any] struct {
	Path  string
	Label string
	Level int

	IsFolder    bool
	IsContainer bool
	IsCollapsed bool
	IsHidden    bool
	IsActive    bool

	TreeIsCheckable bool
	CheckState      CheckState

	// Icon is assigned by the tree's Decorator, if any.
	Icon string

	// Data is the source record; nil for folders and the root.
	Data *T
}

// IsFolderOrContainer returns true if the node groups other nodes.
func (n *Node[T]) IsFolderOrContainer() bool {
	return n.IsFolder || n.IsContainer
}

// IsChecked reports whether the node counts as checked for persistence.
func (n *Node[T]) IsChecked() bool {
	return n.CheckState != Empty
}
