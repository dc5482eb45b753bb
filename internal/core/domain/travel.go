package domain

// Collection names inside the store's namespace. Document keys are
// human-readable and prefixed with the collection name, e.g. "airline_10".
const (
	CollectionAirport = "airport"
	CollectionAirline = "airline"
	CollectionRoute   = "route"
	CollectionHotel   = "hotel"
)

// Geo is an airport's coordinates. When present, all three fields are set.
type Geo struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
	Alt float64 `json:"alt" bson:"alt"`
}

type Airport struct {
	ID          int64  `json:"id,omitempty" bson:"id,omitempty"`
	Type        string `json:"type,omitempty" bson:"type,omitempty"`
	AirportName string `json:"airportname,omitempty" bson:"airportname,omitempty"`
	City        string `json:"city" bson:"city"`
	Country     string `json:"country" bson:"country"`
	FAA         string `json:"faa" bson:"faa"`
	ICAO        string `json:"icao,omitempty" bson:"icao,omitempty"`
	TZ          string `json:"tz,omitempty" bson:"tz,omitempty"`
	Geo         *Geo   `json:"geo,omitempty" bson:"geo,omitempty"`
}

type Airline struct {
	Name     string `json:"name" bson:"name"`
	IATA     string `json:"iata" bson:"iata"`
	ICAO     string `json:"icao" bson:"icao"`
	Callsign string `json:"callsign" bson:"callsign"`
	Country  string `json:"country" bson:"country"`
}

// ScheduleEntry is one recurring flight on a route. Day is 0 (Sunday)
// through 6 (Saturday); UTC is the departure time of day.
type ScheduleEntry struct {
	Day    int    `json:"day" bson:"day"`
	Flight string `json:"flight" bson:"flight"`
	UTC    string `json:"utc" bson:"utc"`
}

// Route links a source airport to a destination airport via an airline.
// AirlineID is the airline's document key; the store enforces no referential
// integrity, the link is logical only.
type Route struct {
	Airline            string          `json:"airline" bson:"airline"`
	AirlineID          string          `json:"airlineid" bson:"airlineid"`
	SourceAirport      string          `json:"sourceairport" bson:"sourceairport"`
	DestinationAirport string          `json:"destinationairport" bson:"destinationairport"`
	Stops              int             `json:"stops" bson:"stops"`
	Equipment          string          `json:"equipment,omitempty" bson:"equipment,omitempty"`
	Schedule           []ScheduleEntry `json:"schedule,omitempty" bson:"schedule,omitempty"`
	Distance           float64         `json:"distance,omitempty" bson:"distance,omitempty"`
}

type Hotel struct {
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Country     string `json:"country,omitempty" bson:"country,omitempty"`
	City        string `json:"city,omitempty" bson:"city,omitempty"`
	State       string `json:"state,omitempty" bson:"state,omitempty"`
}

// HotelFilter narrows a hotel listing by whichever fields are non-empty.
// An empty filter matches every hotel.
type HotelFilter struct {
	Name        string
	Title       string
	Description string
	Country     string
	City        string
	State       string
}
