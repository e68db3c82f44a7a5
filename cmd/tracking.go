package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/models"
	"github.com/mattsolo1/grove-changes/pkg/service"
)

var trackingUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.tracking")

func NewTrackingCmd(svc **service.Service) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tracking",
		Short: "Show the current branch's upstream and how far it has diverged",
		Long: `Show the checked out branch, the upstream it tracks, the upstream's remote
and URL, and the ahead/behind commit counts. Counts are as of the last fetch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			t, err := (*svc).Tracking()
			if err != nil {
				return err
			}

			pretty := formatTracking(t)
			if jsonOutput {
				data, err := json.MarshalIndent(t, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal tracking status to JSON: %w", err)
				}
				pretty = string(data)
			}

			trackingUlog.Info("Tracking status").
				Field("branch", t.Branch).
				Field("upstream", t.Upstream).
				Field("ahead", t.Ahead).
				Field("behind", t.Behind).
				Pretty(pretty).
				PrettyOnly().
				Log(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func formatTracking(t models.Tracking) string {
	branch := t.Branch
	if branch == "" {
		branch = "(detached)"
	}
	if !t.IsTracking() {
		return fmt.Sprintf("Branch:   %s\nUpstream: none", branch)
	}

	lines := []string{
		"Branch:   " + branch,
		"Upstream: " + t.Upstream,
	}
	if t.Remote != "" {
		remote := t.Remote
		if t.RemoteURL != "" {
			remote += " (" + t.RemoteURL + ")"
		}
		lines = append(lines, "Remote:   "+remote)
	}
	lines = append(lines, fmt.Sprintf("Ahead:    %d\nBehind:   %d", t.Ahead, t.Behind))
	return strings.Join(lines, "\n")
}
