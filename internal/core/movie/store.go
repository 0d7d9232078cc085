// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"

	"github.com/oapi-codegen/runtime/types"

	"github.com/taibuivan/cinecat/internal/core/reference"
)

// # Movie Data Access

// Store is the persistence contract of the movie catalog.
//
// Reads run directly on the pool. Every mutation runs through [Store.WithinTx].
type Store interface {

	/*
		WithinTx runs fn inside one unit of work.

		Description: The transaction commits only when fn returns nil. Any error,
		panic or context cancellation rolls it back, so no partial movie or
		orphaned reference row ever becomes visible.
	*/
	WithinTx(context context.Context, fn func(tx Tx) error) error

	// Count returns the number of movies.
	Count(context context.Context) (int, error)

	// List returns one page of summaries, newest id first.
	List(context context.Context, limit, offset int) ([]Summary, error)

	/*
		FindByID loads a movie with its country, genres, actors and languages
		in one round trip.

		Returns:
		  - *Movie: The hydrated record
		  - error: ErrMovieNotFound when absent
	*/
	FindByID(context context.Context, id int) (*Movie, error)
}

// Links holds the resolved reference ids a new movie is attached to.
type Links struct {
	GenreIDs    []int
	ActorIDs    []int
	LanguageIDs []int
}

// Tx is the transaction-bound half of the [Store].
type Tx interface {

	// References exposes the reference tables inside the same transaction.
	References() reference.Store

	/*
		ExistsByNameAndDate reports whether another movie already holds (name, date).

		Parameters:
		  - excludeID: int (a movie id to ignore, 0 to check every row)
	*/
	ExistsByNameAndDate(context context.Context, name string, date types.Date, excludeID int) (bool, error)

	/*
		Insert stores the movie row.

		Returns:
		  - int: Generated id
		  - error: CONFLICT when a concurrent request took (name, date) first
	*/
	Insert(context context.Context, draft *Draft, countryID int) (int, error)

	// Attach inserts the association rows of a new movie.
	Attach(context context.Context, movieID int, links Links) error

	/*
		LockByID loads the movie row for update, blocking concurrent writers
		until the transaction ends.

		Returns:
		  - error: ErrMovieNotFound when absent
	*/
	LockByID(context context.Context, id int) (*Summary, error)

	// Update writes the non-nil fields of patch.
	Update(context context.Context, id int, patch UpdatePatch) error

	// Delete removes the movie. Association rows cascade; reference rows stay.
	Delete(context context.Context, id int) error
}
