package usecase

import (
	"context"

	"github.com/tripstack/travelapi/internal/core/domain"
	"github.com/tripstack/travelapi/internal/core/ports"
)

// QueryService fronts the store's query engine for the list, join and
// full-text endpoints. It owns pagination normalization; filter values pass
// through untouched because the store binds them as parameters.
type QueryService struct {
	store ports.QueryStore
}

func NewQueryService(store ports.QueryStore) *QueryService {
	return &QueryService{store: store}
}

func (s *QueryService) ListAirports(ctx context.Context, country string, page domain.Page) ([]domain.Airport, error) {
	return s.store.ListAirports(ctx, country, page.Normalized())
}

func (s *QueryService) DirectConnections(ctx context.Context, airportCode string, page domain.Page) ([]string, error) {
	return s.store.DirectConnections(ctx, airportCode, page.Normalized())
}

func (s *QueryService) ListAirlines(ctx context.Context, country string, page domain.Page) ([]domain.Airline, error) {
	return s.store.ListAirlines(ctx, country, page.Normalized())
}

func (s *QueryService) AirlinesToAirport(ctx context.Context, destinationCode string, page domain.Page) ([]domain.Airline, error) {
	return s.store.AirlinesToAirport(ctx, destinationCode, page.Normalized())
}

func (s *QueryService) SearchHotels(ctx context.Context, name string, page domain.Page) ([]domain.Hotel, error) {
	return s.store.SearchHotels(ctx, name, page.Normalized())
}

func (s *QueryService) FilterHotels(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
	return s.store.FilterHotels(ctx, filter, page.Normalized())
}
