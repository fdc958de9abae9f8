package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/multiview/internal/domain/entity"
	"github.com/bnema/multiview/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePanes(&config.Panes)...)
	validationErrors = append(validationErrors, validatePlaceholder(&config.Placeholder)...)
	validationErrors = append(validationErrors, validateAppearance(&config.Appearance)...)
	validationErrors = append(validationErrors, validateLogging(&config.Logging)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validatePanes(p *PanesConfig) []string {
	var errs []string

	if p.InitialCount < 1 || p.InitialCount > entity.MaxPanes {
		errs = append(errs, fmt.Sprintf("panes.initial_count must be between 1 and %d (got: %d)", entity.MaxPanes, p.InitialCount))
	}
	if p.LoadingDelayMs < 1 {
		errs = append(errs, fmt.Sprintf("panes.loading_delay_ms must be positive (got: %d)", p.LoadingDelayMs))
	}

	for i, preset := range p.Presets {
		if strings.TrimSpace(preset.Name) == "" {
			errs = append(errs, fmt.Sprintf("panes.presets[%d].name cannot be empty", i))
		}
		if preset.Panes < 1 || preset.Panes > entity.MaxPanes {
			errs = append(errs, fmt.Sprintf("panes.presets[%d].panes must be between 1 and %d (got: %d)", i, entity.MaxPanes, preset.Panes))
		}
	}

	return errs
}

func validatePlaceholder(p *PlaceholderConfig) []string {
	u, err := url.Parse(p.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return []string{fmt.Sprintf("placeholder.endpoint must be an http(s) URL (got: %s)", p.Endpoint)}
	}
	if u.RawQuery != "" {
		return []string{"placeholder.endpoint must not contain a query string"}
	}
	return nil
}

func validateAppearance(a *AppearanceConfig) []string {
	var errs []string

	if _, err := entity.ParseLayoutMode(a.Layout); err != nil {
		errs = append(errs, fmt.Sprintf("appearance.layout must be one of: grid, stack (got: %s)", a.Layout))
	}

	errs = append(errs, validatePalette("appearance.light_palette", a.LightPalette)...)
	errs = append(errs, validatePalette("appearance.dark_palette", a.DarkPalette)...)
	return errs
}

func validatePalette(prefix string, p ColorPalette) []string {
	return validation.ValidatePaletteHex(prefix,
		validation.NamedColor{Name: "background", Value: p.Background},
		validation.NamedColor{Name: "surface", Value: p.Surface},
		validation.NamedColor{Name: "surface_variant", Value: p.SurfaceVariant},
		validation.NamedColor{Name: "text", Value: p.Text},
		validation.NamedColor{Name: "muted", Value: p.Muted},
		validation.NamedColor{Name: "accent", Value: p.Accent},
		validation.NamedColor{Name: "border", Value: p.Border},
	)
}

func validateLogging(l *LoggingConfig) []string {
	var errs []string

	switch l.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
		// Valid
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)", l.Level))
	}

	switch l.Format {
	case "console", "json":
		// Valid
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", l.Format))
	}

	if l.MaxSizeMB < 0 {
		errs = append(errs, "logging.max_size_mb must be non-negative")
	}
	if l.MaxBackups < 0 {
		errs = append(errs, "logging.max_backups must be non-negative")
	}
	if l.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_age_days must be non-negative")
	}
	if l.EnableFileLog && l.LogDir == "" {
		errs = append(errs, "logging.log_dir is required when logging.enable_file_log is true")
	}

	return errs
}
