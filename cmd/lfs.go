package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/service"
)

var lfsUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.lfs")

func NewLfsCmd(svc **service.Service) *cobra.Command {
	var jsonOutput bool
	var minVersion string

	cmd := &cobra.Command{
		Use:   "lfs",
		Short: "Print the installed git-lfs version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			v, err := (*svc).LfsVersion()
			if err != nil {
				return err
			}

			if err := checkMinVersion(v, minVersion); err != nil {
				return err
			}

			pretty := "git-lfs " + v.String()
			if jsonOutput {
				data, err := json.MarshalIndent(v, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal version to JSON: %w", err)
				}
				pretty = string(data)
			}

			lfsUlog.Info("git-lfs version").
				Field("version", v.String()).
				Pretty(pretty).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
	cmd.Flags().StringVar(&minVersion, "min", "", "Fail unless git-lfs is at least this version (e.g. 3.0.0)")

	return cmd
}

// checkMinVersion returns an error when v is older than min. An empty min
// always passes.
func checkMinVersion(v models.Version, min string) error {
	if min == "" {
		return nil
	}
	want, err := models.ParseVersion(min)
	if err != nil {
		return fmt.Errorf("invalid --min version: %w", err)
	}
	if v.Less(want) {
		return fmt.Errorf("git-lfs %s is older than required %s", v.String(), want.String())
	}
	return nil
}
