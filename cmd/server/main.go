// Package main implements the entry point for the Minha-API server,
// a small REST service managing an in-memory collection of tasks.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/Vitorsj90/Minha-API/internal/config"
	"github.com/Vitorsj90/Minha-API/internal/platform/logger"
)

// main is the entry point for the task API server. It initializes
// configuration and logging, wires the application dependencies, and runs
// the HTTP server until a termination signal arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server terminated with error: %v", err)
	}
}

// initializeApp loads configuration, installs the logger, and wires the
// application dependencies on top of them.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	slog.Info("Configuration loaded", "port", cfg.Server.Port, "log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger)
}
