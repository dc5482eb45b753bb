package mongostore

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Config carries the store connection settings, usually sourced from the
// process environment.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store is the single process-wide handle to the document database. It is
// created once at startup, injected into the services, and read-only after
// construction.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.SugaredLogger
}

var _ io.Closer = (*Store)(nil)

func Connect(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Username,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping store: %w", err)
	}

	log.Infow("connected to document store", "database", cfg.Database)
	return &Store{client: client, db: client.Database(cfg.Database), log: log}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
