package cmd

import (
	"context"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

var stateUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.state")

func NewStateCmd(svc **service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "List the trees with saved state for this repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scopes, err := (*svc).StoredScopes()
			if err != nil {
				return err
			}

			pretty := strings.Join(scopes, "\n")
			if len(scopes) == 0 {
				pretty = "No saved state"
			}

			stateUlog.Info("Stored scopes").
				Field("count", len(scopes)).
				Pretty(pretty).
				PrettyOnly().
				Log(context.Background())
			return nil
		},
	}
}
