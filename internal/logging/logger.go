package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

const logDirPerm = 0o755

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// FileConfig controls the rotating log file.
type FileConfig struct {
	Enabled       bool
	LogDir        string
	Filename      string // defaults to multiview.log
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool // also log to stderr; off while the TUI owns the terminal
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newLogger(formatWriter(os.Stderr, cfg), cfg)
}

func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

func formatWriter(w io.Writer, cfg Config) io.Writer {
	if cfg.Format == "console" || cfg.Format == "text" {
		return zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
		}
	}
	return w
}

// NewWithFile creates a logger writing to a size-rotated file in cfg.LogDir.
// The returned cleanup closes the file. With file logging disabled and stderr
// off, the logger discards everything.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled {
		if fileCfg.LogDir == "" {
			return zerolog.Nop(), cleanup, fmt.Errorf("log directory not set")
		}
		if err := os.MkdirAll(fileCfg.LogDir, logDirPerm); err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("create log dir: %w", err)
		}

		name := fileCfg.Filename
		if name == "" {
			name = "multiview.log"
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(fileCfg.LogDir, name),
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
		}
		// Files always get JSON lines.
		writers = append(writers, rotator)
		cleanup = func() {
			_ = rotator.Close()
		}
	}

	if fileCfg.WriteToStderr {
		writers = append(writers, formatWriter(os.Stderr, cfg))
	}

	if len(writers) == 0 {
		return zerolog.Nop(), cleanup, nil
	}

	return newLogger(zerolog.MultiLevelWriter(writers...), cfg), cleanup, nil
}

// ParseLevel converts a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = "json"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// MULTIVIEW_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// MULTIVIEW_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("MULTIVIEW_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("MULTIVIEW_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
