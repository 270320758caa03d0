package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Vitorsj90/Minha-API/internal/config"
	"github.com/Vitorsj90/Minha-API/internal/platform/memory"
	"github.com/Vitorsj90/Minha-API/internal/service"
	"github.com/Vitorsj90/Minha-API/internal/store"
)

// application bundles the dependencies shared across the server: config,
// logger, store, and service.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication wires the dependency graph bottom-up: store first, then the
// service on top of it. Config and logger must already be loaded.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// The task collection lives in process memory and starts empty on
	// every boot.
	app.taskStore = memory.NewMemoryTaskStore(logger)

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	logger.Info("Application wired", "store", "memory")
	return app, nil
}

// Run builds the router and serves HTTP until ctx is canceled or a
// termination signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on the way out. The task
// collection lives in process memory only, so there is nothing to flush
// or close.
func (app *application) cleanup() {
	app.logger.Info("Application stopped")
}
