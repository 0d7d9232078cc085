// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime/types"

	"github.com/taibuivan/cinecat/internal/core/reference"
	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/internal/platform/constants"
	"github.com/taibuivan/cinecat/pkg/pagination"
)

// # Errors

var (
	// ErrMovieNotFound is returned for any lookup of an absent movie id.
	ErrMovieNotFound = apperr.NotFound("Movie with the given ID was not found.")

	// ErrNoMovies is returned when the requested page holds no rows.
	ErrNoMovies = apperr.NotFound("No movies found.")

	// ErrEmptyPatch is returned for an update without any field.
	ErrEmptyPatch = apperr.ValidationError("No data provided")
)

// DuplicateError reports a (name, date) collision.
func DuplicateError(name string, date types.Date) *apperr.AppError {
	return apperr.Conflict(fmt.Sprintf(
		"A movie with the name '%s' and release date '%s' already exists.",
		name, date.Format(types.DateFormat),
	))
}

// # Service Layer

// Service orchestrates the movie catalog operations.
type Service struct {
	store    Store
	resolver *reference.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// Option customizes a [Service].
type Option func(*Service)

// WithClock replaces the wall clock used for the release-date ceiling.
func WithClock(now func() time.Time) Option {
	return func(service *Service) {
		service.now = now
	}
}

// NewService constructs a new [Service] with its required collaborators.
func NewService(store Store, resolver *reference.Resolver, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		store:    store,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Page is one window of the movie list.
type Page struct {
	Movies []Summary
	Window pagination.Window
}

// # Lookups

/*
GetMovie fetches a movie with all relationships.

Returns:
  - *Movie: The hydrated record
  - error: ErrMovieNotFound if no movie has this id
*/
func (service *Service) GetMovie(context context.Context, id int) (*Movie, error) {
	if !storableID(id) {
		return nil, ErrMovieNotFound
	}
	return service.store.FindByID(context, id)
}

// storableID reports whether id fits the movie id column. Larger ids cannot exist.
func storableID(id int) bool {
	return id <= constants.MaxEntityID
}

/*
ListMovies returns one page of movie summaries, newest first.

Description: The total is counted first. An empty catalog and a page past the
last one are both NOT_FOUND rather than an empty page.

Parameters:
  - context: context.Context
  - params: pagination.Params (validated page and per_page)

Returns:
  - *Page: Summaries plus the resolved pagination window
  - error: ErrNoMovies or storage errors
*/
func (service *Service) ListMovies(context context.Context, params pagination.Params) (*Page, error) {
	total, err := service.store.Count(context)
	if err != nil {
		return nil, err
	}

	window := pagination.NewWindow(params.Page, params.PerPage, total)
	if !window.Exists() {
		return nil, ErrNoMovies
	}

	movies, err := service.store.List(context, window.PerPage, window.Offset)
	if err != nil {
		return nil, err
	}

	return &Page{Movies: movies, Window: window}, nil
}

// # Mutations

/*
CreateMovie validates and stores a new movie.

Description: Validation runs first and touches nothing. Then, in a single unit
of work: the (name, date) duplicate check, resolution of the country and of
each distinct genre, actor and language, the movie insert and its association
rows. After commit the movie is reloaded with its relationships.

Parameters:
  - context: context.Context
  - input: CreateInput (decoded payload)

Returns:
  - *Movie: The stored record with generated id and resolved relationships
  - error: VALIDATION_ERROR, CONFLICT or STORAGE_ERROR
*/
func (service *Service) CreateMovie(context context.Context, input CreateInput) (*Movie, error) {
	draft, err := ValidateCreate(input, service.now())
	if err != nil {
		return nil, err
	}

	var movieID int
	err = service.store.WithinTx(context, func(tx Tx) error {

		// Duplicate check
		exists, err := tx.ExistsByNameAndDate(context, draft.Name, draft.Date, 0)
		if err != nil {
			return err
		}
		if exists {
			return DuplicateError(draft.Name, draft.Date)
		}

		// Reference resolution
		refs := tx.References()

		countryID, err := service.resolver.Resolve(context, refs, reference.KindCountry, draft.Country)
		if err != nil {
			return err
		}

		var links Links
		if links.GenreIDs, err = service.resolver.ResolveAll(context, refs, reference.KindGenre, draft.Genres); err != nil {
			return err
		}
		if links.ActorIDs, err = service.resolver.ResolveAll(context, refs, reference.KindActor, draft.Actors); err != nil {
			return err
		}
		if links.LanguageIDs, err = service.resolver.ResolveAll(context, refs, reference.KindLanguage, draft.Languages); err != nil {
			return err
		}

		// Persistence
		movieID, err = tx.Insert(context, draft, countryID)
		if err != nil {
			return err
		}

		return tx.Attach(context, movieID, links)
	})
	if err != nil {
		return nil, err
	}

	movie, err := service.store.FindByID(context, movieID)
	if err != nil {
		return nil, err
	}

	service.logger.Info("movie_created",
		slog.Int("movie_id", movie.ID),
		slog.String("name", movie.Name),
	)

	return movie, nil
}

/*
UpdateMovie applies a partial update to an existing movie.

Description: An empty patch is rejected before any I/O. Inside the unit of
work the row is locked (NOT_FOUND if absent), the present fields are
validated, and when the name or date changes the (name, date) pair is checked
against every other movie. Only the present fields are written.

Returns:
  - error: VALIDATION_ERROR, NOT_FOUND, CONFLICT or STORAGE_ERROR
*/
func (service *Service) UpdateMovie(context context.Context, id int, patch UpdatePatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}
	if !storableID(id) {
		return ErrMovieNotFound
	}

	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}

	err := service.store.WithinTx(context, func(tx Tx) error {
		current, err := tx.LockByID(context, id)
		if err != nil {
			return err
		}

		if err := patch.Validate(service.now()); err != nil {
			return err
		}

		if patch.Name != nil || patch.Date != nil {
			name, date := current.Name, current.Date
			if patch.Name != nil {
				name = *patch.Name
			}
			if patch.Date != nil {
				date = *patch.Date
			}

			if name != current.Name || !date.Time.Equal(current.Date.Time) {
				taken, err := tx.ExistsByNameAndDate(context, name, date, id)
				if err != nil {
					return err
				}
				if taken {
					return DuplicateError(name, date)
				}
			}
		}

		return tx.Update(context, id, patch)
	})
	if err != nil {
		return err
	}

	service.logger.Info("movie_updated", slog.Int("movie_id", id))
	return nil
}

/*
DeleteMovie removes a movie and its association rows.

Reference entities it pointed to are left in place for other movies.

Returns:
  - error: ErrMovieNotFound if no movie has this id
*/
func (service *Service) DeleteMovie(context context.Context, id int) error {
	if !storableID(id) {
		return ErrMovieNotFound
	}

	err := service.store.WithinTx(context, func(tx Tx) error {
		if _, err := tx.LockByID(context, id); err != nil {
			return err
		}
		return tx.Delete(context, id)
	})
	if err != nil {
		return err
	}

	service.logger.Info("movie_deleted", slog.Int("movie_id", id))
	return nil
}
