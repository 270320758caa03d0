package logger_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/Vitorsj90/Minha-API/internal/config"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preserveDefaultLogger restores the process-wide default logger after the
// test, since Setup replaces it.
func preserveDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

// captureStderr runs fn with os.Stderr redirected into a pipe and returns
// everything fn wrote there.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	prev := os.Stderr
	os.Stderr = w
	fn()
	os.Stderr = prev

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestSetupConfiguresLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase", "DEBUG", slog.LevelDebug},
		{"mixed case", "Info", slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preserveDefaultLogger(t)

			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tc.want))
			if tc.want > slog.LevelDebug {
				assert.False(t, log.Enabled(ctx, tc.want-4),
					"records below the configured level must be dropped")
			}
		})
	}
}

func TestSetupInstallsDefaultLogger(t *testing.T) {
	preserveDefaultLogger(t)

	log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())
}

func TestSetupUnknownLevelFallsBackToInfo(t *testing.T) {
	preserveDefaultLogger(t)

	var (
		log *slog.Logger
		err error
	)
	stderr := captureStderr(t, func() {
		log, err = logger.Setup(config.ServerConfig{Port: 8080, LogLevel: "loud"})
	})

	require.NoError(t, err)
	require.NotNil(t, log)

	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))

	assert.Contains(t, stderr, "unknown log level")
	assert.Contains(t, stderr, "loud")
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default()
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		ctx  context.Context
		want *slog.Logger
	}{
		{"nil context", nil, fallback},
		{"context without a logger", context.Background(), fallback},
		{"context carrying a logger", logger.WithLogger(context.Background(), stored), stored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, logger.FromContextOrDefault(tt.ctx, fallback))
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Run("stores the logger in the context", func(t *testing.T) {
		stored := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := logger.WithLogger(context.Background(), stored)

		assert.Same(t, stored, logger.FromContext(ctx))
	})

	t.Run("panics on a nil logger", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestFromContext(t *testing.T) {
	t.Run("nil_context_returns_process_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(nil)) //nolint:staticcheck // exercising nil-context fallback
	})

	t.Run("empty_context_returns_process_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	})
}
