package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/internal/treeview"
	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/service"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

// displayFlags are shared by every command that prints a tree.
type displayFlags struct {
	noColor bool
	icons   bool
	root    bool
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&f.icons, "icons", false, "Show file and folder icons")
	cmd.Flags().BoolVar(&f.root, "root", false, "Show the tree's root node")
}

func (f displayFlags) color() bool {
	if f.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// loadChanges opens and builds the changes tree. showRoot forces the root
// node on; otherwise the display_root setting applies.
func loadChanges(s *service.Service, showRoot bool) (*service.Session[models.Change], error) {
	sess, err := s.OpenChanges()
	if err != nil {
		return nil, fmt.Errorf("read changes: %w", err)
	}
	if showRoot {
		sess.SetDisplayRoot(true)
	}
	sess.Tree.SetDecorator(treeview.Decorate[models.Change])
	sess.Load()
	return sess, nil
}

func loadBranches(s *service.Service, showRoot bool) (*service.Session[models.Branch], error) {
	sess, err := s.OpenBranches()
	if err != nil {
		return nil, fmt.Errorf("read branches: %w", err)
	}
	if showRoot {
		sess.SetDisplayRoot(true)
	}
	sess.Tree.SetDecorator(treeview.DecorateBranch)
	sess.Load()
	return sess, nil
}

func changeDetail(node *tree.Node[models.Change]) string {
	if node.Data == nil {
		return ""
	}
	detail := node.Data.StatusLabel()
	if node.Data.OrigPath != "" {
		detail += " from " + node.Data.OrigPath
	}
	return detail
}

func branchDetail(node *tree.Node[models.Branch]) string {
	if node.Data == nil {
		return ""
	}
	parts := []string{node.Data.Hash}
	if node.Data.Upstream != "" {
		parts = append(parts, "→ "+node.Data.Upstream)
	}
	if track := node.Data.TrackingLabel(); track != "" {
		parts = append(parts, track)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func renderChanges(sess *service.Session[models.Change], flags displayFlags) error {
	return treeview.Render(os.Stdout, sess.Tree, treeview.Options[models.Change]{
		Color:  flags.color(),
		Icons:  flags.icons,
		Detail: changeDetail,
	})
}

func renderBranches(sess *service.Session[models.Branch], flags displayFlags) error {
	return treeview.Render(os.Stdout, sess.Tree, treeview.Options[models.Branch]{
		Color:  flags.color(),
		Icons:  flags.icons,
		Detail: branchDetail,
	})
}
