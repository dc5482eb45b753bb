package mongostore

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripstack/travelapi/internal/core/domain"
)

var (
	airportProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "airportname", Value: 1},
		{Key: "city", Value: 1},
		{Key: "country", Value: 1},
		{Key: "faa", Value: 1},
		{Key: "icao", Value: 1},
		{Key: "tz", Value: 1},
	}
	airlineProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "callsign", Value: 1},
		{Key: "country", Value: 1},
		{Key: "iata", Value: 1},
		{Key: "icao", Value: 1},
		{Key: "name", Value: 1},
	}
	hotelProjection = bson.D{
		{Key: "_id", Value: 0},
		{Key: "name", Value: 1},
		{Key: "title", Value: 1},
		{Key: "description", Value: 1},
		{Key: "country", Value: 1},
		{Key: "city", Value: 1},
		{Key: "state", Value: 1},
	}
)

func (s *Store) ListAirports(ctx context.Context, country string, page domain.Page) ([]domain.Airport, error) {
	opts := options.Find().
		SetProjection(airportProjection).
		SetSort(bson.D{{Key: "airportname", Value: 1}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	airports := make([]domain.Airport, 0, page.Limit)
	if err := s.find(ctx, domain.CollectionAirport, countryFilter(country), opts, &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (s *Store) ListAirlines(ctx context.Context, country string, page domain.Page) ([]domain.Airline, error) {
	opts := options.Find().
		SetProjection(airlineProjection).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	airlines := make([]domain.Airline, 0, page.Limit)
	if err := s.find(ctx, domain.CollectionAirline, countryFilter(country), opts, &airlines); err != nil {
		return nil, err
	}
	return airlines, nil
}

func (s *Store) AirlinesToAirport(ctx context.Context, destinationCode string, page domain.Page) ([]domain.Airline, error) {
	cur, err := s.db.Collection(domain.CollectionRoute).Aggregate(ctx, airlinesToAirportPipeline(destinationCode, page))
	if err != nil {
		return nil, fmt.Errorf("query airlines to airport: %w", err)
	}
	airlines := make([]domain.Airline, 0, page.Limit)
	if err := cur.All(ctx, &airlines); err != nil {
		return nil, fmt.Errorf("decode airlines to airport: %w", err)
	}
	return airlines, nil
}

func (s *Store) DirectConnections(ctx context.Context, airportCode string, page domain.Page) ([]string, error) {
	cur, err := s.db.Collection(domain.CollectionRoute).Aggregate(ctx, directConnectionsPipeline(airportCode, page))
	if err != nil {
		return nil, fmt.Errorf("query direct connections: %w", err)
	}
	var rows []struct {
		DestinationAirport string `bson:"destinationairport"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode direct connections: %w", err)
	}
	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.DestinationAirport)
	}
	return codes, nil
}

func (s *Store) SearchHotels(ctx context.Context, name string, page domain.Page) ([]domain.Hotel, error) {
	filter := bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: name}}}}
	opts := options.Find().
		SetProjection(hotelProjection).
		SetSort(bson.D{{Key: "score", Value: bson.D{{Key: "$meta", Value: "textScore"}}}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	hotels := make([]domain.Hotel, 0, page.Limit)
	if err := s.find(ctx, domain.CollectionHotel, filter, opts, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *Store) FilterHotels(ctx context.Context, filter domain.HotelFilter, page domain.Page) ([]domain.Hotel, error) {
	opts := options.Find().
		SetProjection(hotelProjection).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit))

	hotels := make([]domain.Hotel, 0, page.Limit)
	if err := s.find(ctx, domain.CollectionHotel, hotelFilterDocument(filter), opts, &hotels); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (s *Store) find(ctx context.Context, collection string, filter bson.D, opts *options.FindOptions, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("query %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s rows: %w", collection, err)
	}
	return nil
}

func countryFilter(country string) bson.D {
	if country == "" {
		return bson.D{}
	}
	return bson.D{{Key: "country", Value: country}}
}

// airlinesToAirportPipeline joins routes arriving at the destination to their
// airlines through the route's airlineid key, deduplicates by airline, and
// projects the airline listing fields. The join runs entirely in the store.
func airlinesToAirportPipeline(destinationCode string, page domain.Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "destinationairport", Value: destinationCode}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionAirline},
			{Key: "localField", Value: "airlineid"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "airlines"},
		}}},
		{{Key: "$unwind", Value: "$airlines"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$airlines._id"},
			{Key: "airline", Value: bson.D{{Key: "$first", Value: "$airlines"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$airline"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
		{{Key: "$skip", Value: int64(page.Offset)}},
		{{Key: "$limit", Value: int64(page.Limit)}},
		{{Key: "$project", Value: airlineProjection}},
	}
}

// directConnectionsPipeline returns the distinct destination codes of
// nonstop routes leaving the given airport.
func directConnectionsPipeline(airportCode string, page domain.Page) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "sourceairport", Value: airportCode},
			{Key: "stops", Value: 0},
		}}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$destinationairport"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$skip", Value: int64(page.Offset)}},
		{{Key: "$limit", Value: int64(page.Limit)}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "destinationairport", Value: "$_id"},
		}}},
	}
}

// hotelFilterDocument builds a conjunctive filter over whichever fields are
// set, matching case-insensitively. An empty filter matches every hotel.
func hotelFilterDocument(filter domain.HotelFilter) bson.D {
	doc := bson.D{}
	add := func(field, value string) {
		if value == "" {
			return
		}
		doc = append(doc, bson.E{Key: field, Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(value),
			Options: "i",
		}})
	}
	add("name", filter.Name)
	add("title", filter.Title)
	add("description", filter.Description)
	add("country", filter.Country)
	add("city", filter.City)
	add("state", filter.State)
	return doc
}
