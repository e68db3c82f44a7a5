package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-changes/pkg/service"
	"github.com/mattsolo1/grove-changes/pkg/state"
	"github.com/mattsolo1/grove-changes/pkg/tree"
)

var (
	cfgFile  string
	RepoPath string
)

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "changes")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHANGES")

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "changes"))
	viper.SetDefault("state_backend", state.KindSQLite)
	viper.SetDefault("display_root", false)
	viper.SetDefault("promote_meta", true)
	viper.SetDefault("path_separator", tree.DefaultPathSeparator)
	viper.SetDefault("checkable", true)
	viper.SetDefault("selectable", true)
	viper.SetDefault("show_untracked", true)
	viper.SetDefault("log_level", "warn")

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// NewLogger returns the stderr logger configured by log_level.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// ServiceConfig builds the service configuration from viper.
func ServiceConfig() *service.Config {
	config := service.DefaultConfig(viper.GetString("data_dir"))
	config.StateBackend = viper.GetString("state_backend")
	config.DisplayRoot = viper.GetBool("display_root")
	config.PromoteMeta = viper.GetBool("promote_meta")
	config.PathSeparator = viper.GetString("path_separator")
	config.Checkable = viper.GetBool("checkable")
	config.Selectable = viper.GetBool("selectable")
	config.ShowUntracked = viper.GetBool("show_untracked")
	return config
}

func InitService(logger *logrus.Logger) (*service.Service, error) {
	repo := RepoPath
	if repo == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		repo = wd
	}

	return service.New(ServiceConfig(), repo, logrus.NewEntry(logger))
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/changes/config.yaml)")
}
