// Package logger builds the application slog.Logger from configuration.
package logger

import (
	"io"
	"log/slog"
	"os"

	slogsentry "github.com/samber/slog-sentry/v2"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/yashx/asha/pkg/config"
)

// New constructs the application logger: console output in the configured
// format, optional rotated file sink, optional Sentry forwarding for errors.
// Sensitive attributes are masked before any handler sees them.
func New(cfg config.Config) *slog.Logger {
	level := parseLevel(cfg.Logger.Level)

	handlers := []slog.Handler{newConsoleHandler(os.Stdout, cfg.Logger.Format, level)}

	if cfg.Logger.File.Enabled && cfg.Logger.File.Path != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.Logger.File.Path,
			MaxSize:    cfg.Logger.File.MaxSizeMB,
			MaxBackups: cfg.Logger.File.MaxBackups,
			MaxAge:     cfg.Logger.File.MaxAgeDays,
			Compress:   cfg.Logger.File.Compress,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotated, &slog.HandlerOptions{Level: level}))
	}

	if cfg.Sentry.Enabled {
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
	}

	var handler slog.Handler
	if len(handlers) == 1 {
		handler = handlers[0]
	} else {
		handler = NewMultiHandler(handlers...)
	}

	return slog.New(NewMaskingHandler(handler)).With(slog.String("env", cfg.AppEnv))
}

func newConsoleHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}

	return slog.NewJSONHandler(w, opts)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
