package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/aircnc-api/internal/config"
	"github.com/phrazzld/aircnc-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. They match the collections used by the existing dataset.
const (
	HomesCollection    = "homes"
	UsersCollection    = "users"
	BookingsCollection = "bookings"
)

// Client owns the connection to the document database.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

// Ensure Client implements store.Pinger
var _ store.Pinger = (*Client)(nil)

// Connect opens the connection pool described by cfg and verifies it with a
// ping against the primary. The caller owns the returned Client and must call
// Disconnect on shutdown.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", "database", cfg.Name)

	return NewClient(client, cfg.Name, logger), nil
}

// NewClient wraps an already connected driver client.
func NewClient(client *mongo.Client, dbName string, logger *slog.Logger) *Client {
	return &Client{
		client: client,
		db:     client.Database(dbName),
		logger: logger.With("component", "mongodb"),
	}
}

// Database returns the handle shared by all stores.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return mapError("database", "ping", err)
	}
	return nil
}

// Disconnect closes the connection pool, waiting for in-use connections up to
// the deadline of ctx.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect database client: %w", err)
	}
	c.logger.Info("Database connection closed")
	return nil
}
