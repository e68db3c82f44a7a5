// Package treeview prints trees as indented text for the command line.
package treeview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattsolo1/grove-core/tui/theme"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

// Decorate assigns the generic folder, container and file icons.
func Decorate[T any](node *tree.Node[T]) {
	switch {
	case node.IsContainer:
		node.Icon = theme.IconFolderTree
	case node.IsFolder:
		node.Icon = theme.IconFolder
	default:
		node.Icon = theme.IconNote
	}
}

// DecorateBranch marks remote-tracking branches apart from local ones.
func DecorateBranch(node *tree.Node[models.Branch]) {
	Decorate(node)
	if node.Data == nil {
		return
	}
	if node.Data.IsRemote() {
		node.Icon = theme.IconEarth
	} else {
		node.Icon = theme.IconRepo
	}
}

// Options controls Render.
type Options[T any] struct {
	// Color enables lipgloss styling. Leave it off when output is not a terminal.
	Color bool
	// Icons prints the icon set by the decorator in front of each label.
	Icons bool
	// Detail returns extra text shown after a node's label, e.g. a status.
	Detail func(node *tree.Node[T]) string
}

type styler struct {
	color bool
}

func (s styler) render(style lipgloss.Style, text string) string {
	if !s.color || text == "" {
		return text
	}
	return style.Render(text)
}

var (
	folderStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultTheme.Colors.Blue)
	checkedStyle = lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Green)
	mixedStyle   = lipgloss.NewStyle().Foreground(theme.DefaultTheme.Colors.Orange)
	activeStyle  = lipgloss.NewStyle().Bold(true)
)

// Render writes the visible nodes of t to w, one per line. The selected node
// is marked with a cursor, folders with their fold state and, when the tree
// is checkable, every node with its check box.
func Render[T any](w io.Writer, t *tree.Tree[T], opts Options[T]) error {
	s := styler{color: opts.Color}
	treeOpts := t.Options()
	selected := t.SelectedNode()

	var b strings.Builder
	if !treeOpts.DisplayRootNode && treeOpts.Title != "" {
		b.WriteString(s.render(theme.DefaultTheme.Header, treeOpts.Title))
		b.WriteString("\n")
	}

	visible := t.VisibleNodes()
	for _, node := range visible {
		b.WriteString(renderLine(s, node, node == selected, opts))
		b.WriteString("\n")
	}

	switch {
	case len(visible) == 0:
		b.WriteString(s.render(theme.DefaultTheme.Muted, "No changes."))
		b.WriteString("\n")
	case treeOpts.IsCheckable:
		footer := fmt.Sprintf("%d/%d checked", len(t.GetCheckedFiles()), len(t.LeafNodesAt(0)))
		b.WriteString(s.render(theme.DefaultTheme.Muted, footer))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderLine[T any](s styler, node *tree.Node[T], isSelected bool, opts Options[T]) string {
	var b strings.Builder

	if isSelected {
		b.WriteString(s.render(theme.DefaultTheme.Highlight, "▶ "))
	} else {
		b.WriteString("  ")
	}

	if node.Level > 0 {
		b.WriteString(strings.Repeat("  ", node.Level))
	}

	switch {
	case !node.IsFolderOrContainer():
		b.WriteString("  ")
	case node.IsCollapsed:
		b.WriteString("▸ ")
	default:
		b.WriteString("▾ ")
	}

	if node.TreeIsCheckable {
		b.WriteString(checkBox(s, node.CheckState))
		b.WriteString(" ")
	}

	if opts.Icons && node.Icon != "" {
		b.WriteString(node.Icon)
		b.WriteString(" ")
	}

	label := node.Label
	switch {
	case node.IsFolder:
		label = s.render(folderStyle, label)
	case node.IsActive:
		label = s.render(activeStyle, label+" *")
	}
	if isSelected {
		label = s.render(theme.DefaultTheme.Selected, label)
	}
	b.WriteString(label)

	if opts.Detail != nil {
		if detail := opts.Detail(node); detail != "" {
			b.WriteString(" ")
			b.WriteString(s.render(theme.DefaultTheme.Muted, detail))
		}
	}

	return b.String()
}

func checkBox(s styler, state tree.CheckState) string {
	switch state {
	case tree.Checked:
		return s.render(checkedStyle, "[x]")
	case tree.Mixed:
		return s.render(mixedStyle, "[-]")
	default:
		return "[ ]"
	}
}
