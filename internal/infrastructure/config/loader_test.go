package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 2, mgr.viper.GetInt("panes.initial_count"))
	assert.Equal(t, 1500, mgr.viper.GetInt("panes.loading_delay_ms"))
	assert.Equal(t, "grid", mgr.viper.GetString("appearance.layout"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.dark_palette.accent"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Appearance.Layout = "  STACK "
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = "text"
	cfg.Logging.LogDir = ""
	cfg.Placeholder.Endpoint = " "
	cfg.Panes.Presets = nil

	normalizeConfig(cfg)

	assert.Equal(t, "stack", cfg.Appearance.Layout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Logging.LogDir)
	assert.Equal(t, "https://api.a0.dev/assets/image", cfg.Placeholder.Endpoint)
	assert.Len(t, cfg.Panes.Presets, 4)
}

func TestManagerLoad_CreatesDefaultFile(t *testing.T) {
	dir := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	configFile := filepath.Join(dir, "config", "multiview", "config.toml")
	assert.FileExists(t, configFile)
	assert.Equal(t, configFile, mgr.GetConfigFile())

	cfg := mgr.Get()
	assert.Equal(t, 2, cfg.Panes.InitialCount)
	assert.Len(t, cfg.Panes.Presets, 4)
	assert.Equal(t, filepath.Join(dir, "state", "multiview", "logs"), cfg.Logging.LogDir)
}

func TestManagerLoad_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	t.Setenv("MULTIVIEW_PANES_INITIAL_COUNT", "6")
	t.Setenv("MULTIVIEW_LOG_LEVEL", "warn")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 6, cfg.Panes.InitialCount)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestManagerLoad_InvalidFile(t *testing.T) {
	dir := isolateXDG(t)
	configDir := filepath.Join(dir, "config", "multiview")
	require.NoError(t, os.MkdirAll(configDir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[panes]\ninitial_count = 500\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "panes.initial_count")
}

func TestManager_GetReturnsCopy(t *testing.T) {
	isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Panes.InitialCount = 99
	cfg.Panes.Presets[0].Name = "changed"

	again := mgr.Get()
	assert.Equal(t, 2, again.Panes.InitialCount)
	assert.Equal(t, "Basic", again.Panes.Presets[0].Name)
}

func TestManager_ConfigChangeReloadsAndNotifies(t *testing.T) {
	dir := isolateXDG(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	configFile := filepath.Join(dir, "config", "multiview", "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[appearance]\ndark_mode = true\nlayout = \"stack\"\n"), filePerm))
	mgr.handleConfigEvent(fsnotify.Event{Name: configFile, Op: fsnotify.Write})

	require.Len(t, got, 1)
	assert.True(t, got[0].Appearance.DarkMode)
	assert.Equal(t, "stack", mgr.Get().Appearance.Layout)

	// An invalid edit keeps the previous config and does not notify.
	require.NoError(t, os.WriteFile(configFile, []byte("[appearance]\nlayout = \"mosaic\"\n"), filePerm))
	mgr.handleConfigEvent(fsnotify.Event{Name: configFile, Op: fsnotify.Write})

	assert.Len(t, got, 1)
	assert.Equal(t, "stack", mgr.Get().Appearance.Layout)
}
