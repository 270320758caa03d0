// Package logger sets up the application's structured JSON logging and
// carries request-scoped loggers through contexts.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/Vitorsj90/Minha-API/internal/config"
)

// contextKey is a private type for context keys defined in this package.
// Using a dedicated type prevents collisions with keys from other packages.
type contextKey int

// loggerKey is the context key under which a request-scoped logger is stored.
const loggerKey contextKey = iota

// levelNames maps the accepted log level settings, lower-cased, to their
// slog levels.
var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Setup builds the application's JSON logger from the configured log level,
// installs it as the process-wide default, and returns it. An unrecognized
// level falls back to info with a warning on stderr; stdout stays reserved
// for the JSON log stream.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, ok := levelNames[strings.ToLower(cfg.LogLevel)]
	if !ok {
		level = slog.LevelInfo
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Warn(
			"unknown log level, falling back to info",
			"log_level", cfg.LogLevel)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger, nil
}

// WithLogger returns a copy of the parent context that carries the given
// logger. Handlers and middleware use it to attach a request-scoped logger
// (typically enriched with a trace ID) that downstream layers retrieve with
// FromContext or FromContextOrDefault.
//
// ALLOW-PANIC: a nil logger indicates a programming error in the caller and
// must fail fast rather than silently losing log output.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if log == nil {
		panic("logger.WithLogger: nil logger")
	}
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger stored in the context by WithLogger.
// If the context carries no logger (or is nil), the process-wide default
// logger is returned so callers can always log safely.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in the context by
// WithLogger, falling back to the provided default when the context carries
// none. It differs from FromContext in letting a component supply its own
// component-scoped logger as the fallback instead of the process default.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return defaultLogger
}
