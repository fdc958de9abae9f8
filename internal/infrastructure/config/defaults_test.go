package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/multiview/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, entity.DefaultPaneCount, cfg.Panes.InitialCount)
	assert.Equal(t, 1500, cfg.Panes.LoadingDelayMs)
	assert.Equal(t, "https://api.a0.dev/assets/image", cfg.Placeholder.Endpoint)
	assert.Equal(t, "grid", cfg.Appearance.Layout)
	assert.False(t, cfg.Appearance.DarkMode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	require.Len(t, cfg.Panes.Presets, 4)
	assert.Equal(t, "Basic", cfg.Panes.Presets[0].Name)
	assert.Equal(t, 8, cfg.Panes.Presets[3].Panes)

	require.NoError(t, validateConfig(cfg))
}

func TestPanesConfig_Helpers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1.5s", cfg.Panes.LoadingDelay().String())
	assert.Equal(t, entity.DefaultPresets(), cfg.Panes.EntityPresets())
}

func TestAppearanceConfig_LayoutMode(t *testing.T) {
	assert.Equal(t, entity.LayoutStack, AppearanceConfig{Layout: "stack"}.LayoutMode())
	assert.Equal(t, entity.LayoutGrid, AppearanceConfig{Layout: "diagonal"}.LayoutMode())
}
