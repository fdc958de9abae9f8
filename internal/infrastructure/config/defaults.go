package config

import (
	"github.com/bnema/multiview/internal/application/usecase"
	"github.com/bnema/multiview/internal/domain/entity"
	domainurl "github.com/bnema/multiview/internal/domain/url"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogMaxSizeMB  = 10 // megabytes
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7 // days

	defaultLayout = "grid"
)

// DefaultConfig returns the default configuration values for multiview.
func DefaultConfig() *Config {
	logDir, err := GetLogDir()
	if err != nil {
		logDir = ""
	}

	presets := entity.DefaultPresets()
	presetConfigs := make([]PresetConfig, 0, len(presets))
	for _, p := range presets {
		presetConfigs = append(presetConfigs, PresetConfig{Name: p.Name, Panes: p.Panes, Description: p.Description})
	}

	return &Config{
		Panes: PanesConfig{
			InitialCount:   entity.DefaultPaneCount,
			LoadingDelayMs: int(usecase.DefaultLoadingDelay.Milliseconds()),
			Presets:        presetConfigs,
		},
		Placeholder: PlaceholderConfig{
			Endpoint: domainurl.DefaultPlaceholderEndpoint,
		},
		Appearance: AppearanceConfig{
			Layout:   defaultLayout,
			DarkMode: false,
			LightPalette: ColorPalette{
				Background:     "#fafafa",
				Surface:        "#f4f4f5",
				SurfaceVariant: "#e4e4e7",
				Text:           "#18181b",
				Muted:          "#71717a",
				Accent:         "#22c55e", // Green-500
				Border:         "#d4d4d8",
			},
			DarkPalette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#18181b",
				SurfaceVariant: "#27272a",
				Text:           "#fafafa",
				Muted:          "#a1a1aa",
				Accent:         "#4ade80", // Green-400
				Border:         "#3f3f46",
			},
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			LogDir:        logDir,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
		},
	}
}
