package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/events"
	"github.com/phrazzld/aircnc-api/internal/platform/mail"
	"github.com/phrazzld/aircnc-api/internal/platform/mongodb"
	"github.com/phrazzld/aircnc-api/internal/platform/stripe"
	"github.com/phrazzld/aircnc-api/internal/redact"
	"github.com/phrazzld/aircnc-api/internal/service/auth"
	"github.com/phrazzld/aircnc-api/internal/service/notification"
	"github.com/phrazzld/aircnc-api/internal/service/payment"
	"github.com/phrazzld/aircnc-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the application is assembled without a live store.
	db     *mongodb.Client
	pinger store.Pinger

	userStore    store.UserStore
	homeStore    store.HomeStore
	bookingStore store.BookingStore

	tokens  auth.TokenService
	intents payment.IntentService

	eventEmitter events.EventEmitter
	dispatcher   *notification.Dispatcher
}

// newApplication wires stores, services and the notification pipeline on top
// of an established database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *mongodb.Client) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		pinger: db,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	database := db.Database()
	app.userStore = mongodb.NewMongoUserStore(database, logger)
	app.homeStore = mongodb.NewMongoHomeStore(database, logger)
	app.bookingStore = mongodb.NewMongoBookingStore(database, logger)

	app.intents = payment.NewService(stripe.NewGateway(cfg.Payment.StripeSecretKey), cfg.Payment.Currency, logger)

	app.dispatcher = notification.NewDispatcher(mail.NewSender(cfg.Mail, logger), logger)
	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(app.dispatcher)
	app.eventEmitter = emitter

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup waits for in-flight notifications and then closes the store.
func (app *application) cleanup(ctx context.Context) {
	if app.dispatcher != nil {
		if err := app.dispatcher.Wait(ctx); err != nil {
			app.logger.Warn("Pending notifications abandoned", "error", redact.Error(err))
		}
	}

	if app.db != nil {
		if err := app.db.Disconnect(ctx); err != nil {
			app.logger.Error("Error closing database connection", "error", redact.Error(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
