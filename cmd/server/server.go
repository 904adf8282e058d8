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

// shutdownTimeout bounds graceful shutdown, including waiting for
// outstanding notifications.
const shutdownTimeout = 10 * time.Second

// startHTTPServer serves router until ctx is canceled or the process
// receives SIGINT or SIGTERM, then shuts down gracefully.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var listenErr error
	select {
	case <-serverCtx.Done():
		app.logger.Info("Shutting down server...")
	case listenErr = <-serveErr:
		if listenErr != nil {
			app.logger.Error("Server failed", "error", listenErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		app.cleanup(shutdownCtx)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup(shutdownCtx)

	if listenErr != nil {
		return fmt.Errorf("failed to listen: %w", listenErr)
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
