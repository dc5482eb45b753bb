package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tripstack/travelapi/internal/core/domain"
)

// recordingStore counts document operations so tests can assert the store is
// never reached when validation fails.
type recordingStore struct {
	gets    int
	inserts int
	upserts int
	removes int
	err     error
	lastDoc any
}

func (s *recordingStore) Get(_ context.Context, _, _ string, out any) error {
	s.gets++
	return s.err
}

func (s *recordingStore) Insert(_ context.Context, _, _ string, doc any) error {
	s.inserts++
	s.lastDoc = doc
	return s.err
}

func (s *recordingStore) Upsert(_ context.Context, _, _ string, doc any) error {
	s.upserts++
	s.lastDoc = doc
	return s.err
}

func (s *recordingStore) Remove(_ context.Context, _, _ string) error {
	s.removes++
	return s.err
}

func airlineService(t *testing.T, store *recordingStore) *ResourceService[domain.Airline] {
	t.Helper()
	return NewResourceService[domain.Airline](domain.CollectionAirline, store, newTestValidator(t))
}

const validAirline = `{"name":"40-Mile Air","iata":"Q5","icao":"MLA","callsign":"MILE-AIR","country":"United States"}`

func TestCreateValidatesBeforeStore(t *testing.T) {
	store := &recordingStore{}
	svc := airlineService(t, store)

	_, err := svc.Create(context.Background(), "airline_10", json.RawMessage(`{}`))
	var sv *domain.ErrSchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("Create = %v, want schema violation", err)
	}
	if store.inserts != 0 {
		t.Fatal("store reached despite failed validation")
	}
}

func TestCreateNormalizesPayload(t *testing.T) {
	store := &recordingStore{}
	svc := airlineService(t, store)

	doc, err := svc.Create(context.Background(), "airline_10", json.RawMessage(validAirline))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.Name != "40-Mile Air" || doc.Country != "United States" {
		t.Fatalf("unexpected normalized doc: %+v", doc)
	}
	if store.inserts != 1 {
		t.Fatalf("inserts = %d, want 1", store.inserts)
	}
}

func TestCreateSurfacesConflict(t *testing.T) {
	store := &recordingStore{err: domain.ErrAlreadyExists}
	svc := airlineService(t, store)

	_, err := svc.Create(context.Background(), "airline_10", json.RawMessage(validAirline))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create = %v, want ErrAlreadyExists", err)
	}
}

func TestReplaceValidatesBeforeStore(t *testing.T) {
	store := &recordingStore{}
	svc := airlineService(t, store)

	_, err := svc.Replace(context.Background(), "airline_10", json.RawMessage(`{"name":42}`))
	var sv *domain.ErrSchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("Replace = %v, want schema violation", err)
	}
	if store.upserts != 0 {
		t.Fatal("store reached despite failed validation")
	}
}

func TestInvalidKeyShortCircuits(t *testing.T) {
	store := &recordingStore{}
	svc := airlineService(t, store)

	if _, err := svc.Get(context.Background(), "bad key"); !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("Get = %v, want ErrInvalidKey", err)
	}
	if err := svc.Delete(context.Background(), ""); !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("Delete = %v, want ErrInvalidKey", err)
	}
	if store.gets+store.removes != 0 {
		t.Fatal("store reached despite invalid key")
	}
}

func TestDeleteSurfacesNotFound(t *testing.T) {
	store := &recordingStore{err: domain.ErrNotFound}
	svc := airlineService(t, store)

	if err := svc.Delete(context.Background(), "airline_404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Delete = %v, want ErrNotFound", err)
	}
}
