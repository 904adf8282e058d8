package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/aircnc-api/internal/config"
)

// ParseLevel maps a configured level name to a slog.Level (case-insensitive).
// The second return value is false when the name is not recognized, in which
// case slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a JSON logger writing to out at the given level.
func New(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger on stdout
// with the appropriate log level and sets it as the default logger for the
// application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.LogLevel)

	logger := New(os.Stdout, level)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	// This allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger, nil
}
