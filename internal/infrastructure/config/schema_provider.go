package config

import (
	"fmt"
	"strconv"

	"github.com/bnema/multiview/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionPanes       = "Panes"
	SectionPlaceholder = "Placeholder"
	SectionAppearance  = "Appearance"
	SectionLogging     = "Logging"
)

// SchemaProvider lists configuration keys with their defaults.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 20)
	keys = append(keys, p.getPanesKeys(defaults)...)
	keys = append(keys, p.getPlaceholderKeys(defaults)...)
	keys = append(keys, p.getAppearanceKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getPanesKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "panes.initial_count",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Panes.InitialCount),
			Description: "Panes opened when browse runs without a count",
			Range:       fmt.Sprintf("1-%d", entity.MaxPanes),
			Section:     SectionPanes,
		},
		{
			Key:         "panes.loading_delay_ms",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Panes.LoadingDelayMs),
			Description: "How long a refreshed pane shows its loading spinner",
			Range:       ">=1",
			Section:     SectionPanes,
		},
		{
			Key:         "panes.presets",
			Type:        "[]preset",
			Default:     fmt.Sprintf("%d presets", len(defaults.Panes.Presets)),
			Description: "Choices on the selection screen (name, panes, description)",
			Section:     SectionPanes,
		},
	}
}

func (*SchemaProvider) getPlaceholderKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "placeholder.endpoint",
			Type:        "string",
			Default:     defaults.Placeholder.Endpoint,
			Description: "Preview image service used for website panes",
			Section:     SectionPlaceholder,
		},
	}
}

func (*SchemaProvider) getAppearanceKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "appearance.layout",
			Type:        "string",
			Default:     defaults.Appearance.Layout,
			Description: "Initial pane arrangement",
			Values:      []string{"grid", "stack"},
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_mode",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Appearance.DarkMode),
			Description: "Start the browser screen with the dark palette",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.light_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Light theme color palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
		{
			Key:         "appearance.dark_palette.*",
			Type:        "string",
			Default:     "(hex colors)",
			Description: "Dark theme color palette (background, surface, surface_variant, text, muted, accent, border)",
			Section:     SectionAppearance,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Write logs to a rotating file",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     defaults.Logging.LogDir,
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxSizeMB),
			Description: "Rotate the log file after this many megabytes",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxAgeDays),
			Description: "Maximum age of rotated log files in days",
			Range:       ">=0",
			Section:     SectionLogging,
		},
	}
}
