// Package logger owns the process-wide log/slog setup: a JSON handler on
// stdout at the configured level. It also carries request-scoped loggers
// through context.Context, so a request's trace ID follows it across layers.
package logger
