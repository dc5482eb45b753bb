package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tripstack/travelapi/internal/core/domain"
	"github.com/tripstack/travelapi/internal/core/ports"
)

// ResourceService implements the four document operations for one resource
// family. Every resource follows the same flow — validate, perform one store
// call, surface the outcome — so the service is generic over the document
// type and instantiated once per collection.
type ResourceService[T any] struct {
	collection string
	store      ports.DocumentStore
	validator  *Validator
}

func NewResourceService[T any](collection string, store ports.DocumentStore, validator *Validator) *ResourceService[T] {
	return &ResourceService[T]{collection: collection, store: store, validator: validator}
}

func (s *ResourceService[T]) Get(ctx context.Context, key string) (T, error) {
	var doc T
	if err := domain.ValidateKey(key); err != nil {
		return doc, err
	}
	if err := s.store.Get(ctx, s.collection, key, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// Create validates the payload, then inserts it at key. Insertion fails
// closed with domain.ErrAlreadyExists when the key is taken; an existing
// document is never overwritten.
func (s *ResourceService[T]) Create(ctx context.Context, key string, body json.RawMessage) (T, error) {
	doc, err := s.validated(key, body)
	if err != nil {
		return doc, err
	}
	if err := s.store.Insert(ctx, s.collection, key, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

// Replace validates the payload, then creates or fully replaces the document
// at key. Replacement is idempotent and never reports absence.
func (s *ResourceService[T]) Replace(ctx context.Context, key string, body json.RawMessage) (T, error) {
	doc, err := s.validated(key, body)
	if err != nil {
		return doc, err
	}
	if err := s.store.Upsert(ctx, s.collection, key, doc); err != nil {
		var zero T
		return zero, err
	}
	return doc, nil
}

func (s *ResourceService[T]) Delete(ctx context.Context, key string) error {
	if err := domain.ValidateKey(key); err != nil {
		return err
	}
	return s.store.Remove(ctx, s.collection, key)
}

// validated runs key and schema validation and decodes the raw payload into
// its normalized typed form. Unknown fields never reach the store.
func (s *ResourceService[T]) validated(key string, body json.RawMessage) (T, error) {
	var doc T
	if err := domain.ValidateKey(key); err != nil {
		return doc, err
	}
	if err := s.validator.Validate(s.collection, body); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return doc, fmt.Errorf("decode %s payload: %w", s.collection, err)
	}
	return doc, nil
}
