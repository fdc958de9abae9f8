package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// MULTIVIEW_PANES_INITIAL_COUNT, MULTIVIEW_APPEARANCE_DARK_MODE, ...
	v.SetEnvPrefix("MULTIVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "MULTIVIEW_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind MULTIVIEW_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "MULTIVIEW_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind MULTIVIEW_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf(
					"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
					configDir,
					createErr,
				)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
			}
		} else {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// normalizeConfig fills values a user may leave blank and canonicalizes enums.
func normalizeConfig(config *Config) {
	config.Appearance.Layout = strings.ToLower(strings.TrimSpace(config.Appearance.Layout))
	if config.Appearance.Layout == "" {
		config.Appearance.Layout = defaultLayout
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	if config.Logging.LogDir == "" {
		if logDir, err := GetLogDir(); err == nil {
			config.Logging.LogDir = logDir
		}
	}

	config.Placeholder.Endpoint = strings.TrimSpace(config.Placeholder.Endpoint)
	if config.Placeholder.Endpoint == "" {
		config.Placeholder.Endpoint = DefaultConfig().Placeholder.Endpoint
	}

	if len(config.Panes.Presets) == 0 {
		config.Panes.Presets = DefaultConfig().Panes.Presets
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Panes.Presets = append([]PresetConfig(nil), m.config.Panes.Presets...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPanesDefaults(defaults)
	m.setPlaceholderDefaults(defaults)
	m.setAppearanceDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setPanesDefaults(defaults *Config) {
	m.viper.SetDefault("panes.initial_count", defaults.Panes.InitialCount)
	m.viper.SetDefault("panes.loading_delay_ms", defaults.Panes.LoadingDelayMs)

	presets := make([]map[string]any, 0, len(defaults.Panes.Presets))
	for _, p := range defaults.Panes.Presets {
		presets = append(presets, map[string]any{
			"name":        p.Name,
			"panes":       p.Panes,
			"description": p.Description,
		})
	}
	m.viper.SetDefault("panes.presets", presets)
}

func (m *Manager) setPlaceholderDefaults(defaults *Config) {
	m.viper.SetDefault("placeholder.endpoint", defaults.Placeholder.Endpoint)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.layout", defaults.Appearance.Layout)
	m.viper.SetDefault("appearance.dark_mode", defaults.Appearance.DarkMode)
	setPaletteDefaults(m.viper, "appearance.light_palette", defaults.Appearance.LightPalette)
	setPaletteDefaults(m.viper, "appearance.dark_palette", defaults.Appearance.DarkPalette)
}

func setPaletteDefaults(v *viper.Viper, prefix string, p ColorPalette) {
	v.SetDefault(prefix+".background", p.Background)
	v.SetDefault(prefix+".surface", p.Surface)
	v.SetDefault(prefix+".surface_variant", p.SurfaceVariant)
	v.SetDefault(prefix+".text", p.Text)
	v.SetDefault(prefix+".muted", p.Muted)
	v.SetDefault(prefix+".accent", p.Accent)
	v.SetDefault(prefix+".border", p.Border)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager.
// This is useful for accessing watcher functionality.
func GetManager() *Manager {
	return globalManager
}
