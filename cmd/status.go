package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

func NewStatusCmd(svc **service.Service) *cobra.Command {
	var flags displayFlags

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show working tree changes as a tree",
		Aliases: []string{"st"},
		Long: `Show the changed files of the repository as a collapsible checkbox tree.

Check, fold and selection state is kept between runs. On the first run in a
repository, staged files start out checked. After that only the saved check
state counts: a staged file you uncheck stays unchecked, and files staged
later start out unchecked.

Examples:
  changes status
  changes status --icons`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadChanges(*svc, flags.root)
			if err != nil {
				return err
			}
			if err := renderChanges(sess, flags); err != nil {
				return err
			}
			// Loading may have pruned files that are no longer changed.
			return sess.Save()
		},
	}

	flags.register(cmd)

	return cmd
}
