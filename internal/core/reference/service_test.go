// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecat/internal/core/reference"
	"github.com/taibuivan/cinecat/internal/platform/apperr"
)

// memoryStore is an in-memory [reference.Store] that records every call.
type memoryStore struct {
	rows    map[reference.Kind]map[string]int
	nextID  int
	inserts []string
	// conflictOn makes Insert fail as if a concurrent transaction won the race.
	conflictOn string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: map[reference.Kind]map[string]int{}}
}

func (s *memoryStore) FindID(_ context.Context, kind reference.Kind, key string) (int, bool, error) {
	id, ok := s.rows[kind][key]
	return id, ok, nil
}

func (s *memoryStore) Insert(_ context.Context, kind reference.Kind, key string) (int, error) {
	if key == s.conflictOn {
		return 0, apperr.Conflict("created concurrently")
	}
	if s.rows[kind] == nil {
		s.rows[kind] = map[string]int{}
	}
	s.nextID++
	s.rows[kind][key] = s.nextID
	s.inserts = append(s.inserts, string(kind)+":"+key)
	return s.nextID, nil
}

/*
TestResolver_Resolve_GetOrCreate checks that a second lookup reuses the row.
*/
func TestResolver_Resolve_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	resolver := reference.NewResolver()

	first, err := resolver.Resolve(ctx, store, reference.KindGenre, "Noir")
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, store, reference.KindGenre, "  Noir ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"genre:Noir"}, store.inserts)
}

/*
TestResolver_Resolve_KindsAreIndependent ensures equal keys of different kinds do not collide.
*/
func TestResolver_Resolve_KindsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	resolver := reference.NewResolver()

	_, err := resolver.Resolve(ctx, store, reference.KindGenre, "English")
	require.NoError(t, err)
	_, err = resolver.Resolve(ctx, store, reference.KindLanguage, "English")
	require.NoError(t, err)

	assert.Equal(t, []string{"genre:English", "language:English"}, store.inserts)
}

func TestResolver_Resolve_CountryCodeUppercased(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	resolver := reference.NewResolver()

	id, err := resolver.Resolve(ctx, store, reference.KindCountry, "us")
	require.NoError(t, err)

	again, err := resolver.Resolve(ctx, store, reference.KindCountry, "US")
	require.NoError(t, err)

	assert.Equal(t, id, again)
	assert.Equal(t, []string{"country:US"}, store.inserts)
}

func TestResolver_Resolve_BlankKey(t *testing.T) {
	_, err := reference.NewResolver().Resolve(context.Background(), newMemoryStore(), reference.KindActor, "   ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestResolver_Resolve_ConflictSurfaces(t *testing.T) {
	store := newMemoryStore()
	store.conflictOn = "Noir"

	_, err := reference.NewResolver().Resolve(context.Background(), store, reference.KindGenre, "Noir")
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestResolver_ResolveAll_Deduplicates verifies one resolution per distinct key, in first-seen order.
*/
func TestResolver_ResolveAll_Deduplicates(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	resolver := reference.NewResolver()

	ids, err := resolver.ResolveAll(ctx, store, reference.KindActor, []string{"Al Pacino", "Robert De Niro", "Al  Pacino", "Al Pacino"})
	require.NoError(t, err)

	assert.Len(t, ids, 2)
	assert.Equal(t, []string{"actor:Al Pacino", "actor:Robert De Niro"}, store.inserts)

	empty, err := resolver.ResolveAll(ctx, store, reference.KindActor, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

type failingStore struct{ memoryStore }

func (s *failingStore) FindID(context.Context, reference.Kind, string) (int, bool, error) {
	return 0, false, apperr.Storage(errors.New("connection reset"))
}

func TestResolver_ResolveAll_StopsOnError(t *testing.T) {
	_, err := reference.NewResolver().ResolveAll(context.Background(), &failingStore{}, reference.KindGenre, []string{"Drama"})
	assert.True(t, apperr.HasCode(err, apperr.CodeStorage))
}

// stubRepository serves fixed listings.
type stubRepository struct{}

func (stubRepository) ListCountries(context.Context) ([]reference.Country, error) {
	return []reference.Country{{ID: 1, Code: "US"}}, nil
}

func (stubRepository) ListEntities(_ context.Context, kind reference.Kind) ([]reference.Entity, error) {
	return []reference.Entity{{ID: 1, Name: string(kind)}}, nil
}

func TestService_ListEntities(t *testing.T) {
	service := reference.NewService(stubRepository{})

	genres, err := service.ListEntities(context.Background(), reference.KindGenre)
	require.NoError(t, err)
	assert.Equal(t, "genre", genres[0].Name)

	_, err = service.ListEntities(context.Background(), reference.KindCountry)
	assert.Error(t, err)

	countries, err := service.ListCountries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "US", countries[0].Code)
}
