package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

var checkedUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.checked")

func NewCheckedCmd(svc **service.Service) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "checked",
		Short: "Print the checked files, one per line",
		Long: `Print the checked files in tree order, one per line, for use in scripts.

Example:
  git add -- $(changes checked)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			sess, err := loadChanges(*svc, false)
			if err != nil {
				return err
			}
			if err := sess.Save(); err != nil {
				return err
			}

			files := sess.Tree.GetCheckedFiles()
			if files == nil {
				files = []string{}
			}

			pretty := strings.Join(files, "\n")
			if jsonOutput {
				data, err := json.MarshalIndent(files, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal checked files to JSON: %w", err)
				}
				pretty = string(data)
			}

			checkedUlog.Info("Checked files").
				Field("count", len(files)).
				Pretty(pretty).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as a JSON array")

	return cmd
}
