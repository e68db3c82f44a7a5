package cmd

import (
	"context"
	"fmt"

	grovelogging "github.com/mattsolo1/grove-core/logging"
	"github.com/spf13/cobra"

	"github.com/mattsolo1/grove-changes/pkg/service"
)

var checkUlog = grovelogging.NewUnifiedLogger("grove-changes.cmd.check")

func NewCheckCmd(svc **service.Service) *cobra.Command {
	var (
		checkAll  bool
		checkNone bool
		flags     displayFlags
	)

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Toggle the check state of files or folders",
		Long: `Toggle the check state of the given paths in the changes tree.

Checking a folder checks everything below it. A folder whose files are only
partly checked shows as [-].

Examples:
  changes check src/main.go
  changes check src
  changes check --all
  changes check --none`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if checkAll && checkNone {
				return fmt.Errorf("--all and --none are mutually exclusive")
			}
			if !checkAll && !checkNone && len(args) == 0 {
				return fmt.Errorf("specify at least one path, or --all/--none")
			}

			sess, err := loadChanges(*svc, flags.root)
			if err != nil {
				return err
			}

			switch {
			case checkAll, checkNone:
				err = sess.SetAllChecked(checkAll)
			default:
				err = sess.ToggleChecked(args...)
			}
			if err != nil {
				return err
			}

			if err := sess.Save(); err != nil {
				return err
			}

			checked := sess.Tree.GetCheckedFiles()
			checkUlog.Info("Check state updated").
				Field("checked", len(checked)).
				Field("scope", sess.Scope()).
				Log(ctx)

			return renderChanges(sess, flags)
		},
	}

	cmd.Flags().BoolVar(&checkAll, "all", false, "Check every file")
	cmd.Flags().BoolVar(&checkNone, "none", false, "Clear every check")
	flags.register(cmd)

	return cmd
}
