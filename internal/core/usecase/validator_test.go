package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tripstack/travelapi/internal/core/domain"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	return v
}

func violationsFor(t *testing.T, v *Validator, resource, payload string) []domain.FieldViolation {
	t.Helper()
	err := v.Validate(resource, json.RawMessage(payload))
	if err == nil {
		t.Fatalf("Validate(%s, %s) = nil, want violations", resource, payload)
	}
	var sv *domain.ErrSchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("Validate returned %T, want *domain.ErrSchemaViolation", err)
	}
	return sv.Violations
}

func fields(violations []domain.FieldViolation) map[string]bool {
	out := make(map[string]bool, len(violations))
	for _, v := range violations {
		out[v.Field] = true
	}
	return out
}

func TestValidAirportPasses(t *testing.T) {
	v := newTestValidator(t)
	payload := `{"airportname":"Heathrow","city":"London","country":"United Kingdom","faa":"LHR","icao":"EGLL","tz":"Europe/London","geo":{"lat":51.47,"lon":-0.45,"alt":83}}`
	if err := v.Validate(domain.CollectionAirport, json.RawMessage(payload)); err != nil {
		t.Fatalf("Validate = %v, want nil", err)
	}
}

func TestMissingRequiredFieldsAllReported(t *testing.T) {
	v := newTestValidator(t)
	violations := violationsFor(t, v, domain.CollectionAirline, `{}`)
	if len(violations) < 5 {
		t.Fatalf("got %d violations, want one per missing required field (5)", len(violations))
	}
	got := fields(violations)
	for _, want := range []string{"name", "iata", "icao", "callsign", "country"} {
		if !got[want] {
			t.Errorf("violations missing field %q: %+v", want, violations)
		}
	}
}

func TestNestedFieldPathPrefixes(t *testing.T) {
	v := newTestValidator(t)
	payload := `{"city":"Paris","country":"France","faa":"CDG","geo":{"lat":"not-a-number","lon":2.55}}`
	violations := violationsFor(t, v, domain.CollectionAirport, payload)
	got := fields(violations)
	if !got["geo.lat"] {
		t.Errorf("expected a geo.lat violation, got %+v", violations)
	}
	if !got["geo.alt"] {
		t.Errorf("expected a geo.alt violation for the missing field, got %+v", violations)
	}
}

func TestNumericFieldRejectsString(t *testing.T) {
	v := newTestValidator(t)
	payload := `{"airline":"AF","airlineid":"airline_137","sourceairport":"CDG","destinationairport":"JFK","stops":"0"}`
	violations := violationsFor(t, v, domain.CollectionRoute, payload)
	if !fields(violations)["stops"] {
		t.Errorf("expected a stops violation, got %+v", violations)
	}
}

func TestScheduleEntryPaths(t *testing.T) {
	v := newTestValidator(t)
	payload := `{"airline":"AF","airlineid":"airline_137","sourceairport":"CDG","destinationairport":"JFK","schedule":[{"day":9,"flight":"AF006","utc":"10:13:00"}]}`
	violations := violationsFor(t, v, domain.CollectionRoute, payload)
	if !fields(violations)["schedule.0.day"] {
		t.Errorf("expected a schedule.0.day violation, got %+v", violations)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	v := newTestValidator(t)
	payload := `{"name":"40-Mile Air","iata":"Q5","icao":"MLA","callsign":"MILE-AIR","country":"United States","bogus":1}`
	violations := violationsFor(t, v, domain.CollectionAirline, payload)
	if len(violations) == 0 {
		t.Fatal("expected a violation for the unknown field")
	}
}

func TestInvalidJSONBody(t *testing.T) {
	v := newTestValidator(t)
	violations := violationsFor(t, v, domain.CollectionAirline, `{not json`)
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(violations))
	}
}

func TestMissingPropertiesParsing(t *testing.T) {
	got := missingProperties("missing properties: 'name', 'country'")
	if len(got) != 2 || got[0] != "name" || got[1] != "country" {
		t.Fatalf("missingProperties = %v, want [name country]", got)
	}
	if missingProperties("expected number, but got string") != nil {
		t.Fatal("non-required message should yield no fields")
	}
}
