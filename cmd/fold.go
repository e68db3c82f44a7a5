package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

func NewFoldCmd(svc **service.Service) *cobra.Command {
	var (
		inBranches bool
		flags      displayFlags
	)

	cmd := &cobra.Command{
		Use:   "fold <path>...",
		Short: "Collapse or expand folders",
		Long: `Collapse an expanded folder or expand a collapsed one. Nested folders keep
their own fold state.

Examples:
  changes fold src
  changes fold --branches origin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inBranches {
				sess, err := loadBranches(*svc, flags.root)
				if err != nil {
					return err
				}
				if err := sess.ToggleCollapsed(args...); err != nil {
					return err
				}
				if err := sess.Save(); err != nil {
					return err
				}
				return renderBranches(sess, flags)
			}

			sess, err := loadChanges(*svc, flags.root)
			if err != nil {
				return err
			}
			if err := sess.ToggleCollapsed(args...); err != nil {
				return err
			}
			if err := sess.Save(); err != nil {
				return err
			}
			return renderChanges(sess, flags)
		},
	}

	cmd.Flags().BoolVar(&inBranches, "branches", false, "Fold in the branch tree instead of the changes tree")
	flags.register(cmd)

	return cmd
}
