package main

import (
	"fmt"
	"os"

	"github.com/mattsolo1/grove-core/cli"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/cmd"
	"github.com/mattsolo1/grove-changes/cmd/config"
	"github.com/mattsolo1/grove-changes/pkg/service"
)

var svc *service.Service

func main() {
	rootCmd := cli.NewStandardCommand(
		"changes",
		"Browse working tree changes and branches as checkbox trees",
	)
	rootCmd.PersistentFlags().StringVarP(&config.RepoPath, "repo", "C", "", "Repository to operate on (default is the current directory)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// This runs once before any subcommand
		config.InitConfig()
		logger := config.NewLogger()

		if cmd.Annotations["repo"] == "none" {
			return nil
		}

		var err error
		svc, err = config.InitService(logger)
		if err != nil {
			return fmt.Errorf("failed to initialize service: %w", err)
		}
		logger.WithFields(logrus.Fields{
			"repo":   svc.RepoPath,
			"branch": svc.Branch,
		}).Debug("Service ready")
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if svc == nil {
			return nil
		}
		return svc.Close()
	}

	// Add subcommands
	for _, sub := range []*cobra.Command{
		cmd.NewStatusCmd(&svc),
		cmd.NewBranchesCmd(&svc),
		cmd.NewCheckCmd(&svc),
		cmd.NewFoldCmd(&svc),
		cmd.NewSelectCmd(&svc),
		cmd.NewCheckedCmd(&svc),
		cmd.NewLfsCmd(&svc),
		cmd.NewTrackingCmd(&svc),
		cmd.NewStateCmd(&svc),
	} {
		config.AddGlobalFlags(sub)
		rootCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
