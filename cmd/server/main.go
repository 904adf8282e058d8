// Package main implements the entry point for the aircnc API server,
// which serves home listings, bookings and payment intents for the
// rental marketplace.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/platform/logger"
	"github.com/phrazzld/aircnc-api/internal/platform/mongodb"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run loads configuration, connects the store and serves until the process
// is signaled to stop.
func run(ctx context.Context) error {
	cfg, l, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	client, err := mongodb.Connect(ctx, cfg.Database, l)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app, err := newApplication(cfg, l, client)
	if err != nil {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(cleanupCtx)
		return err
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name,
		"mail_enabled", cfg.Mail.Enabled)

	return cfg, l, nil
}
