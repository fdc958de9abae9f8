package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	out := fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	if !exists {
		out += fmt.Sprintf("  %s\n", r.theme.Subtle.Render("Config file will be created on first run with all defaults."))
	}
	return out
}

// RenderStatus renders the effective configuration.
func (r *ConfigRenderer) RenderStatus(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	row := func(k string, v any) string {
		return fmt.Sprintf("    %s %s", keyStyle.Render(fmt.Sprintf("%-24s", k)), valStyle.Render(fmt.Sprint(v)))
	}

	presets := make([]string, 0, len(cfg.Panes.Presets))
	for _, p := range cfg.Panes.Presets {
		presets = append(presets, fmt.Sprintf("%s(%d)", p.Name, p.Panes))
	}

	lines := []string{
		"",
		fmt.Sprintf("  %s Config %s", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path)),
		"",
		r.theme.Highlight.Render("  Panes"),
		row("initial_count", cfg.Panes.InitialCount),
		row("loading_delay_ms", cfg.Panes.LoadingDelayMs),
		row("presets", strings.Join(presets, " ")),
		r.theme.Highlight.Render("  Placeholder"),
		row("endpoint", cfg.Placeholder.Endpoint),
		r.theme.Highlight.Render("  Appearance"),
		row("layout", cfg.Appearance.Layout),
		row("dark_mode", cfg.Appearance.DarkMode),
		row("light_palette.accent", cfg.Appearance.LightPalette.Accent),
		row("dark_palette.accent", cfg.Appearance.DarkPalette.Accent),
		r.theme.Highlight.Render("  Logging"),
		row("level", cfg.Logging.Level),
		row("format", cfg.Logging.Format),
		row("enable_file_log", cfg.Logging.EnableFileLog),
		row("log_dir", cfg.Logging.LogDir),
		"",
	}
	return strings.Join(lines, "\n")
}

// RenderSchemaWritten renders the path of a written schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Generated JSON schema %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
