package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-changes/pkg/state"
)

func TestInitConfigReadsFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "state_backend: yaml\npromote_meta: false\npath_separator: \"::\"\nlog_level: debug\nshow_untracked: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfgFile = path
	t.Cleanup(func() { cfgFile = "" })
	InitConfig()

	config := ServiceConfig()
	assert.Equal(t, state.KindYAML, config.StateBackend)
	assert.False(t, config.PromoteMeta)
	assert.True(t, config.Checkable)
	assert.Equal(t, "::", config.PathSeparator)
	assert.False(t, config.ShowUntracked)
	assert.Equal(t, logrus.DebugLevel, NewLogger().GetLevel())
}

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { cfgFile = "" })
	InitConfig()

	config := ServiceConfig()
	assert.Equal(t, state.KindSQLite, config.StateBackend)
	assert.True(t, config.PromoteMeta)
	assert.True(t, config.Selectable)
	assert.True(t, config.ShowUntracked)
	assert.Equal(t, "/", config.PathSeparator)
	assert.Equal(t, logrus.WarnLevel, NewLogger().GetLevel())
}
