package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripstack/travelapi/internal/core/domain"
)

func (s *Store) Get(ctx context.Context, collection, key string, out any) error {
	err := s.db.Collection(collection).FindOne(ctx, keyFilter(key)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *Store) Insert(ctx context.Context, collection, key string, doc any) error {
	keyed, err := withKey(key, doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, key, err)
	}
	_, err = s.db.Collection(collection).InsertOne(ctx, keyed)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *Store) Upsert(ctx context.Context, collection, key string, doc any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, keyFilter(key), doc, opts)
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, key string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, keyFilter(key))
	if err != nil {
		return fmt.Errorf("remove %s/%s: %w", collection, key, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func keyFilter(key string) bson.D {
	return bson.D{{Key: "_id", Value: key}}
}

// withKey re-encodes doc with the document key as _id. Domain types carry no
// key field of their own; the key lives in the URL path and the store only.
func withKey(key string, doc any) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var fields bson.D
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return append(bson.D{{Key: "_id", Value: key}}, fields...), nil
}
