package ports

import (
	"context"

	"github.com/tripstack/travelapi/internal/core/domain"
)

// DocumentStore is the point-access surface of the document database. All
// operations address exactly one document by collection and key.
type DocumentStore interface {
	// Get decodes the document at key into out, or returns domain.ErrNotFound.
	Get(ctx context.Context, collection, key string, out any) error
	// Insert stores a new document, or returns domain.ErrAlreadyExists.
	Insert(ctx context.Context, collection, key string, doc any) error
	// Upsert creates or fully replaces the document at key. Idempotent.
	Upsert(ctx context.Context, collection, key string, doc any) error
	// Remove deletes the document at key, or returns domain.ErrNotFound.
	Remove(ctx context.Context, collection, key string) error
}

// QueryStore is the query surface of the document database. Joins and
// full-text matching run entirely inside the store; callers only supply
// filter values and pagination bounds.
type QueryStore interface {
	ListAirports(ctx context.Context, country string, page domain.Page) ([]domain.Airport, error)
	// DirectConnections returns the distinct destination FAA codes reachable
	// from the given airport with zero stops.
	DirectConnections(ctx context.Context, airportCode string, page domain.Page) ([]string, error)
	ListAirlines(ctx context.Context, country string, page domain.Page) ([]domain.Airline, error)
	// AirlinesToAirport joins routes to airlines through the route's
	// airlineid key and returns the airlines serving the destination.
	AirlinesToAirport(ctx context.Context, destinationCode string, page domain.Page) ([]domain.Airline, error)
	SearchHotels(ctx context.Context, name string, page domain.Page) ([]domain.Hotel, error)
	FilterHotels(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error)
}
