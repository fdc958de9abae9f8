// Package config loads, validates and watches the multiview configuration file.
package config

import (
	"time"

	"github.com/bnema/multiview/internal/domain/entity"
)

// Config represents the complete configuration for multiview.
type Config struct {
	// Panes controls how many panes open and how long refreshes stay in loading state.
	Panes PanesConfig `mapstructure:"panes" yaml:"panes" toml:"panes" json:"panes"`
	// Placeholder configures the generated preview image service for website panes.
	Placeholder PlaceholderConfig `mapstructure:"placeholder" yaml:"placeholder" toml:"placeholder" json:"placeholder"`
	Appearance  AppearanceConfig  `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	Logging     LoggingConfig     `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// PanesConfig holds pane collection settings.
type PanesConfig struct {
	// InitialCount is used when browse is started without a count (1-100).
	InitialCount int `mapstructure:"initial_count" yaml:"initial_count" toml:"initial_count" json:"initial_count" jsonschema:"minimum=1,maximum=100"`
	// LoadingDelayMs is how long a refreshed pane shows its spinner.
	LoadingDelayMs int `mapstructure:"loading_delay_ms" yaml:"loading_delay_ms" toml:"loading_delay_ms" json:"loading_delay_ms" jsonschema:"minimum=1"`
	// Presets are the choices offered on the selection screen.
	Presets []PresetConfig `mapstructure:"presets" yaml:"presets" toml:"presets" json:"presets"`
}

// PresetConfig is one entry of the selection screen.
type PresetConfig struct {
	Name        string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	Panes       int    `mapstructure:"panes" yaml:"panes" toml:"panes" json:"panes" jsonschema:"minimum=1,maximum=100"`
	Description string `mapstructure:"description" yaml:"description" toml:"description" json:"description"`
}

// PlaceholderConfig holds the preview image endpoint.
type PlaceholderConfig struct {
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" toml:"endpoint" json:"endpoint"`
}

// AppearanceConfig holds UI preferences.
type AppearanceConfig struct {
	// Layout is the initial layout: "grid" or "stack".
	Layout string `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout" jsonschema:"enum=grid,enum=stack"`
	// DarkMode starts the browser screen with the dark palette.
	DarkMode     bool         `mapstructure:"dark_mode" yaml:"dark_mode" toml:"dark_mode" json:"dark_mode"`
	LightPalette ColorPalette `mapstructure:"light_palette" yaml:"light_palette" toml:"light_palette" json:"light_palette"`
	DarkPalette  ColorPalette `mapstructure:"dark_palette" yaml:"dark_palette" toml:"dark_palette" json:"dark_palette"`
}

// ColorPalette contains semantic color tokens for light/dark themes.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output, rotated by size.
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
}

// LoadingDelay returns the configured spinner duration.
func (p PanesConfig) LoadingDelay() time.Duration {
	return time.Duration(p.LoadingDelayMs) * time.Millisecond
}

// EntityPresets converts the configured presets to domain presets.
func (p PanesConfig) EntityPresets() []entity.Preset {
	out := make([]entity.Preset, 0, len(p.Presets))
	for _, pc := range p.Presets {
		out = append(out, entity.Preset{Name: pc.Name, Panes: pc.Panes, Description: pc.Description})
	}
	return out
}

// LayoutMode parses Layout. Invalid values fall back to grid; validation reports them.
func (a AppearanceConfig) LayoutMode() entity.LayoutMode {
	mode, err := entity.ParseLayoutMode(a.Layout)
	if err != nil {
		return entity.LayoutGrid
	}
	return mode
}
