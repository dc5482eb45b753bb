package mongostore

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tripstack/travelapi/internal/core/domain"
)

func TestIndexArtifactParses(t *testing.T) {
	defs, err := parseIndexArtifact(indexArtifact)
	if err != nil {
		t.Fatalf("parseIndexArtifact: %v", err)
	}

	hotel := defs[domain.CollectionHotel]
	if len(hotel) != 1 {
		t.Fatalf("hotel has %d index defs, want 1", len(hotel))
	}
	if len(hotel[0].Text) == 0 {
		t.Fatal("hotel index is not a full-text definition")
	}
	if hotel[0].Text["name"] <= hotel[0].Text["description"] {
		t.Fatal("hotel name should outweigh description in search ranking")
	}

	if len(defs[domain.CollectionRoute]) == 0 {
		t.Fatal("route secondary indexes missing")
	}
}

func TestIndexArtifactRejectsBadDefs(t *testing.T) {
	if _, err := parseIndexArtifact([]byte(`{"hotel":[{"name":""}]}`)); err == nil {
		t.Fatal("unnamed index accepted")
	}
	if _, err := parseIndexArtifact([]byte(`{"hotel":[{"name":"x"}]}`)); err == nil {
		t.Fatal("fieldless index accepted")
	}
	if _, err := parseIndexArtifact([]byte(`not json`)); err == nil {
		t.Fatal("malformed artifact accepted")
	}
}

func TestTextIndexModel(t *testing.T) {
	def := indexDef{Name: "hotel_fts", Text: map[string]int{"name": 10, "description": 1}}
	model := def.model()

	keys := model.Keys.(bson.D)
	if len(keys) != 2 {
		t.Fatalf("keys = %v, want 2 fields", keys)
	}
	for _, e := range keys {
		if e.Value != "text" {
			t.Errorf("key %v is not a text field", e)
		}
	}
	if model.Options.Weights == nil {
		t.Fatal("text index model carries no weights")
	}
	if *model.Options.Name != "hotel_fts" {
		t.Fatalf("name = %q", *model.Options.Name)
	}
}

func TestCompoundIndexModel(t *testing.T) {
	def := indexDef{Name: "route_source_stops", Keys: map[string]int{"sourceairport": 1, "stops": 1}}
	model := def.model()

	keys := model.Keys.(bson.D)
	if len(keys) != 2 {
		t.Fatalf("keys = %v, want 2 fields", keys)
	}
	for _, e := range keys {
		if e.Value != 1 {
			t.Errorf("key %v is not ascending", e)
		}
	}
}
