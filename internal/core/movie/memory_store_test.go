// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/oapi-codegen/runtime/types"

	"github.com/taibuivan/cinecat/internal/core/movie"
	"github.com/taibuivan/cinecat/internal/core/reference"
)

// memoryState is one snapshot of the catalog tables.
type memoryState struct {
	movies    map[int]movieRow
	links     map[int]movie.Links
	refs      map[reference.Kind]map[string]int
	nextMovie int
	nextRef   int
}

type movieRow struct {
	draft     movie.Draft
	countryID int
}

func (state *memoryState) clone() *memoryState {
	refs := make(map[reference.Kind]map[string]int, len(state.refs))
	for kind, keys := range state.refs {
		refs[kind] = maps.Clone(keys)
	}
	return &memoryState{
		movies:    maps.Clone(state.movies),
		links:     maps.Clone(state.links),
		refs:      refs,
		nextMovie: state.nextMovie,
		nextRef:   state.nextRef,
	}
}

// memoryStore is an in-memory [movie.Store]. A transaction works on a clone
// of the state that replaces the committed state only when fn succeeds.
type memoryStore struct {
	mu    sync.Mutex
	state *memoryState
	txs   int

	// failAttach simulates a storage failure after the movie insert.
	failAttach error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{state: &memoryState{
		movies: map[int]movieRow{},
		links:  map[int]movie.Links{},
		refs:   map[reference.Kind]map[string]int{},
	}}
}

func (store *memoryStore) WithinTx(ctx context.Context, fn func(tx movie.Tx) error) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.txs++
	work := store.state.clone()
	if err := fn(&memoryTx{state: work, failAttach: store.failAttach}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	store.state = work
	return nil
}

func (store *memoryStore) Count(context.Context) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.state.movies), nil
}

func (store *memoryStore) List(_ context.Context, limit, offset int) ([]movie.Summary, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	ids := slices.Sorted(maps.Keys(store.state.movies))
	slices.Reverse(ids)

	result := []movie.Summary{}
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		result = append(result, summaryOf(ids[i], store.state.movies[ids[i]]))
	}
	return result, nil
}

func (store *memoryStore) FindByID(_ context.Context, id int) (*movie.Movie, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	row, ok := store.state.movies[id]
	if !ok {
		return nil, movie.ErrMovieNotFound
	}

	links := store.state.links[id]
	m := &movie.Movie{
		ID:        id,
		Name:      row.draft.Name,
		Date:      row.draft.Date,
		Score:     row.draft.Score,
		Overview:  row.draft.Overview,
		Status:    row.draft.Status,
		Budget:    row.draft.Budget,
		Revenue:   row.draft.Revenue,
		Genres:    store.entities(reference.KindGenre, links.GenreIDs),
		Actors:    store.entities(reference.KindActor, links.ActorIDs),
		Languages: store.entities(reference.KindLanguage, links.LanguageIDs),
	}
	for code, countryID := range store.state.refs[reference.KindCountry] {
		if countryID == row.countryID {
			m.Country = &reference.Country{ID: countryID, Code: code}
		}
	}
	return m, nil
}

// entities mirrors the SQL aggregation: linked rows ordered by name.
func (store *memoryStore) entities(kind reference.Kind, ids []int) []reference.Entity {
	result := []reference.Entity{}
	for name, id := range store.state.refs[kind] {
		if slices.Contains(ids, id) {
			result = append(result, reference.Entity{ID: id, Name: name})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// refCount returns how many rows of kind exist.
func (store *memoryStore) refCount(kind reference.Kind) int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.state.refs[kind])
}

func summaryOf(id int, row movieRow) movie.Summary {
	return movie.Summary{ID: id, Name: row.draft.Name, Date: row.draft.Date, Score: row.draft.Score, Overview: row.draft.Overview}
}

// memoryTx implements [movie.Tx] on a working copy.
type memoryTx struct {
	state      *memoryState
	failAttach error
}

func (tx *memoryTx) References() reference.Store { return memoryRefs{state: tx.state} }

// memoryRefs implements [reference.Store] on the same working copy.
type memoryRefs struct {
	state *memoryState
}

func (refs memoryRefs) FindID(_ context.Context, kind reference.Kind, key string) (int, bool, error) {
	id, ok := refs.state.refs[kind][key]
	return id, ok, nil
}

func (refs memoryRefs) Insert(_ context.Context, kind reference.Kind, key string) (int, error) {
	if refs.state.refs[kind] == nil {
		refs.state.refs[kind] = map[string]int{}
	}
	refs.state.nextRef++
	refs.state.refs[kind][key] = refs.state.nextRef
	return refs.state.nextRef, nil
}

func (tx *memoryTx) ExistsByNameAndDate(_ context.Context, name string, date types.Date, excludeID int) (bool, error) {
	for id, row := range tx.state.movies {
		if id != excludeID && row.draft.Name == name && row.draft.Date.Time.Equal(date.Time) {
			return true, nil
		}
	}
	return false, nil
}

func (tx *memoryTx) Insert(_ context.Context, draft *movie.Draft, countryID int) (int, error) {
	tx.state.nextMovie++
	tx.state.movies[tx.state.nextMovie] = movieRow{draft: *draft, countryID: countryID}
	return tx.state.nextMovie, nil
}

func (tx *memoryTx) Attach(_ context.Context, movieID int, links movie.Links) error {
	if tx.failAttach != nil {
		return tx.failAttach
	}
	tx.state.links[movieID] = links
	return nil
}

func (tx *memoryTx) LockByID(_ context.Context, id int) (*movie.Summary, error) {
	row, ok := tx.state.movies[id]
	if !ok {
		return nil, movie.ErrMovieNotFound
	}
	summary := summaryOf(id, row)
	return &summary, nil
}

func (tx *memoryTx) Update(_ context.Context, id int, patch movie.UpdatePatch) error {
	row, ok := tx.state.movies[id]
	if !ok {
		return movie.ErrMovieNotFound
	}
	if patch.Name != nil {
		row.draft.Name = *patch.Name
	}
	if patch.Date != nil {
		row.draft.Date = *patch.Date
	}
	if patch.Score != nil {
		row.draft.Score = *patch.Score
	}
	if patch.Overview != nil {
		row.draft.Overview = *patch.Overview
	}
	if patch.Status != nil {
		row.draft.Status = *patch.Status
	}
	if patch.Budget != nil {
		row.draft.Budget = *patch.Budget
	}
	if patch.Revenue != nil {
		row.draft.Revenue = *patch.Revenue
	}
	tx.state.movies[id] = row
	return nil
}

func (tx *memoryTx) Delete(_ context.Context, id int) error {
	if _, ok := tx.state.movies[id]; !ok {
		return movie.ErrMovieNotFound
	}
	delete(tx.state.movies, id)
	delete(tx.state.links, id)
	return nil
}

var errAttach = errors.New("attach failed")
