package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// defaultShutdownTimeout bounds graceful shutdown when no timeout is configured.
const defaultShutdownTimeout = 10 * time.Second

// startHTTPServer runs the HTTP server until the parent context is canceled
// or a termination signal arrives, then drains in-flight requests within the
// configured shutdown timeout.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	// SIGINT and SIGTERM cancel the context instead of killing the process.
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		// ListenAndServe reports ErrServerClosed only after Shutdown, so a
		// return this early is a startup or serve failure.
		app.logger.Error("Server failed", "error", err)
		return fmt.Errorf("server failed: %w", err)
	case <-signalCtx.Done():
		app.logger.Info("Shutdown requested, draining requests")
	}

	timeout := defaultShutdownTimeout
	if app.config.Server.ShutdownTimeoutSeconds > 0 {
		timeout = time.Duration(app.config.Server.ShutdownTimeoutSeconds) * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server exited")
	return nil
}
