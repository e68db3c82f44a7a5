package cmd

import (
	"context"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

var selectUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.select")

func NewSelectCmd(svc **service.Service) *cobra.Command {
	var inBranches bool

	cmd := &cobra.Command{
		Use:   "select <path>",
		Short: "Remember a node as the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				selected string
				err      error
			)
			if inBranches {
				selected, err = selectIn(loadBranches, *svc, args[0])
			} else {
				selected, err = selectIn(loadChanges, *svc, args[0])
			}
			if err != nil {
				return err
			}

			selectUlog.Info("Selection updated").
				Field("path", selected).
				Pretty("Selected " + selected).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&inBranches, "branches", false, "Select in the branch tree instead of the changes tree")

	return cmd
}

func selectIn[T any](load func(*service.Service, bool) (*service.Session[T], error), s *service.Service, path string) (string, error) {
	sess, err := load(s, false)
	if err != nil {
		return "", err
	}
	if err := sess.Select(path); err != nil {
		return "", err
	}
	if err := sess.Save(); err != nil {
		return "", err
	}
	return sess.Tree.SelectedNodePath(), nil
}
