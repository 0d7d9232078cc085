// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/pkg/naturalkey"
)

// # Resolution

// Resolver implements get-or-create for every reference [Kind].
//
// It holds no state; the [Store] passed to each call carries the transaction.
type Resolver struct{}

// NewResolver constructs a [Resolver].
func NewResolver() *Resolver {
	return &Resolver{}
}

/*
Resolve returns the id of the entity identified by key, creating it when absent.

Description: The key is canonicalized for the kind, looked up, and inserted only
when the lookup finds nothing. A concurrent insert of the same key surfaces as
CONFLICT from the store and is returned unchanged.

Parameters:
  - context: context.Context
  - store: Store (bound to the active transaction)
  - kind: Kind
  - key: string (country code or name)

Returns:
  - int: Entity id
  - error: VALIDATION_ERROR for a blank key, CONFLICT, or STORAGE_ERROR
*/
func (resolver *Resolver) Resolve(context context.Context, store Store, kind Kind, key string) (int, error) {
	if !kind.Valid() {
		return 0, apperr.Internal(fmt.Errorf("reference: unknown kind %q", kind))
	}

	canonical := kind.Normalize(key)
	if canonical == "" {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   string(kind),
			Message: "This field is required",
		})
	}

	id, found, err := store.FindID(context, kind, canonical)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	return store.Insert(context, kind, canonical)
}

/*
ResolveAll resolves a request's list of keys for one kind.

Description: Keys are canonicalized and deduplicated first so each distinct key
is resolved exactly once. The returned ids follow first-seen order.

Returns:
  - []int: Distinct entity ids (empty, never nil, for an empty input)
  - error: First resolution failure
*/
func (resolver *Resolver) ResolveAll(context context.Context, store Store, kind Kind, keys []string) ([]int, error) {
	distinct := naturalkey.Distinct(keys, kind.Normalize)

	ids := make([]int, 0, len(distinct))
	for _, key := range distinct {
		id, err := resolver.Resolve(context, store, kind, key)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// # Listing

// Service serves the read-only reference listings.
type Service struct {
	repo Repository
}

// NewService constructs a new reference [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListCountries returns all known countries.
func (service *Service) ListCountries(context context.Context) ([]Country, error) {
	return service.repo.ListCountries(context)
}

// ListEntities returns all genres, actors or languages.
func (service *Service) ListEntities(context context.Context, kind Kind) ([]Entity, error) {
	if kind == KindCountry || !kind.Valid() {
		return nil, apperr.Internal(fmt.Errorf("reference: %q is not a named kind", kind))
	}
	return service.repo.ListEntities(context, kind)
}
