package mongostore

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexArtifact is the static index-definition file. It declares the hotel
// full-text index and the secondary indexes backing the list and join
// queries, keyed by collection name.
//
//go:embed indexes.json
var indexArtifact []byte

type indexDef struct {
	Name string         `json:"name"`
	Keys map[string]int `json:"keys,omitempty"`
	// Text maps field name to full-text weight. A def carries either Keys
	// or Text, not both.
	Text map[string]int `json:"text,omitempty"`
}

// EnsureIndexes provisions every index named in the artifact. Creation is
// idempotent: an index that already exists with the same definition is left
// untouched.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	defs, err := parseIndexArtifact(indexArtifact)
	if err != nil {
		return fmt.Errorf("parse index artifact: %w", err)
	}

	collections := make([]string, 0, len(defs))
	for collection := range defs {
		collections = append(collections, collection)
	}
	sort.Strings(collections)

	for _, collection := range collections {
		models := make([]mongo.IndexModel, 0, len(defs[collection]))
		for _, def := range defs[collection] {
			models = append(models, def.model())
		}
		if _, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", collection, err)
		}
		s.log.Infow("ensured indexes", "collection", collection, "count", len(models))
	}
	return nil
}

func parseIndexArtifact(raw []byte) (map[string][]indexDef, error) {
	var defs map[string][]indexDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return nil, err
	}
	for collection, idxs := range defs {
		for _, def := range idxs {
			if def.Name == "" {
				return nil, fmt.Errorf("unnamed index on collection %q", collection)
			}
			if len(def.Keys) == 0 && len(def.Text) == 0 {
				return nil, fmt.Errorf("index %q declares no fields", def.Name)
			}
		}
	}
	return defs, nil
}

func (d indexDef) model() mongo.IndexModel {
	opts := options.Index().SetName(d.Name)

	if len(d.Text) > 0 {
		keys := bson.D{}
		weights := bson.D{}
		for _, field := range sortedFields(d.Text) {
			keys = append(keys, bson.E{Key: field, Value: "text"})
			weights = append(weights, bson.E{Key: field, Value: d.Text[field]})
		}
		return mongo.IndexModel{Keys: keys, Options: opts.SetWeights(weights)}
	}

	keys := bson.D{}
	for _, field := range sortedFields(d.Keys) {
		keys = append(keys, bson.E{Key: field, Value: d.Keys[field]})
	}
	return mongo.IndexModel{Keys: keys, Options: opts}
}

func sortedFields(m map[string]int) []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
