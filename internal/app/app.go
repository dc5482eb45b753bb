package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tripstack/travelapi/internal/adapters/httpapi"
	"github.com/tripstack/travelapi/internal/adapters/mongostore"
	"github.com/tripstack/travelapi/internal/core/domain"
	"github.com/tripstack/travelapi/internal/core/usecase"
)

type Config struct {
	Addr     string
	StoreURI string
	Username string
	Password string
	Database string
}

// NewServer wires the store, services and HTTP handler into a ready-to-run
// server. The store handle is created once here and shared by every service;
// nothing reconnects mid-request.
func NewServer(ctx context.Context, cfg Config, log *zap.SugaredLogger) (*http.Server, io.Closer, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store, err := mongostore.Connect(connectCtx, mongostore.Config{
		URI:      cfg.StoreURI,
		Username: cfg.Username,
		Password: cfg.Password,
		Database: cfg.Database,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect document store: %w", err)
	}

	if err := store.EnsureIndexes(connectCtx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("provision indexes: %w", err)
	}

	validator, err := usecase.NewValidator()
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("load resource schemas: %w", err)
	}

	airports := usecase.NewResourceService[domain.Airport](domain.CollectionAirport, store, validator)
	airlines := usecase.NewResourceService[domain.Airline](domain.CollectionAirline, store, validator)
	routes := usecase.NewResourceService[domain.Route](domain.CollectionRoute, store, validator)
	hotels := usecase.NewResourceService[domain.Hotel](domain.CollectionHotel, store, validator)
	queries := usecase.NewQueryService(store)

	handler := httpapi.NewHandler(airports, airlines, routes, hotels, queries, log)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server, store, nil
}
