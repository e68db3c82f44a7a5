package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

func NewBranchesCmd(svc **service.Service) *cobra.Command {
	var flags displayFlags

	cmd := &cobra.Command{
		Use:     "branches",
		Short:   "Show local and remote branches as a tree",
		Aliases: []string{"br"},
		Long: `Show local and remote-tracking branches grouped by name segment.

Remote branches are listed under their remote. The checked out branch is
marked with '*'. Branches with an upstream show how many commits they are
ahead (↑) and behind (↓), as of the last fetch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := loadBranches(*svc, flags.root)
			if err != nil {
				return err
			}
			return renderBranches(sess, flags)
		},
	}

	flags.register(cmd)

	return cmd
}
