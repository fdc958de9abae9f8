// Package cli wires configuration, logging and the Bubble Tea TUI together.
package cli

import (
	"context"
	"time"

	"github.com/bnema/multiview/internal/cli/styles"
	"github.com/bnema/multiview/internal/domain/build"
	"github.com/bnema/multiview/internal/infrastructure/config"
	"github.com/bnema/multiview/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	// ConfigErr is set when the config file could not be loaded; defaults are used instead.
	ConfigErr error

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and sets up logging.
// The TUI owns the terminal, so logs only go to the rotating file.
func NewApp() (*App, error) {
	cfg, cfgErr := loadConfig()
	theme := styles.NewTheme(cfg, cfg.Appearance.DarkMode)

	logger, logCleanup, err := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: time.RFC3339,
		},
		logging.FileConfig{
			Enabled:    cfg.Logging.EnableFileLog,
			LogDir:     cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	)
	if err != nil {
		// Logging is best effort; keep running with a silent logger.
		logger, logCleanup, _ = logging.NewWithFile(logging.DefaultConfig(), logging.FileConfig{})
	}
	ctx := logging.WithContext(context.Background(), logger)

	log := logging.FromContext(ctx)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("using default configuration")
	}
	log.Debug().
		Str("layout", cfg.Appearance.Layout).
		Int("initial_count", cfg.Panes.InitialCount).
		Msg("app initialized")

	return &App{
		Config:     cfg,
		Theme:      theme,
		BuildInfo:  build.DevInfo(),
		ConfigErr:  cfgErr,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads the global configuration, falling back to defaults.
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return config.DefaultConfig(), err
	}
	return config.Get(), nil
}
