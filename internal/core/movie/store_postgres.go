// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oapi-codegen/runtime/types"

	"github.com/taibuivan/cinecat/internal/core/reference"
	"github.com/taibuivan/cinecat/internal/platform/database/schema"
	"github.com/taibuivan/cinecat/internal/platform/dberr"
	"github.com/taibuivan/cinecat/internal/platform/postgres"
	"github.com/taibuivan/cinecat/pkg/pointer"
)

// PostgresStore implements [Store] using a pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a fully wired postgres implementation.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// WithinTx runs fn in a transaction shared by the movie and reference tables.
func (repository *PostgresStore) WithinTx(context context.Context, fn func(tx Tx) error) error {
	err := postgres.WithinTx(context, repository.pool, func(tx pgx.Tx) error {
		return fn(&postgresTx{tx: tx, refs: reference.NewPostgresStore(tx)})
	})
	return dberr.Wrap(err, "movie_tx")
}

// Count returns the number of movies.
func (repository *PostgresStore) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Movie.Table)

	var total int
	if err := repository.pool.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_movies")
	}
	return total, nil
}

// List returns one page of summaries, newest id first.
func (repository *PostgresStore) List(context context.Context, limit, offset int) ([]Summary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		schema.Movie.ID, schema.Movie.Name, schema.Movie.Date, schema.Movie.Score, schema.Movie.Overview,
		schema.Movie.Table,
		schema.Movie.ID,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movies")
	}

	movies, err := pgx.CollectRows(rows, scanSummary)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_movie_summary")
	}
	return movies, nil
}

/*
FindByID loads a movie and all of its relationships.

Description: The country is joined and the genre, actor and language lists are
aggregated with json_agg sub-queries, so the whole record arrives in a single
round trip.
*/
func (repository *PostgresStore) FindByID(context context.Context, id int) (*Movie, error) {
	query := fmt.Sprintf(`
		SELECT
			m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s, m.%s,
			c.%s, c.%s, c.%s,
			%s AS genres,
			%s AS actors,
			%s AS languages
		FROM %s m
		LEFT JOIN %s c ON c.%s = m.%s
		WHERE m.%s = $1`,
		schema.Movie.ID, schema.Movie.Name, schema.Movie.Date, schema.Movie.Score,
		schema.Movie.Overview, schema.Movie.Status, schema.Movie.Budget, schema.Movie.Revenue,
		schema.Country.ID, schema.Country.Code, schema.Country.Name,
		aggregateNames(schema.MovieGenre, schema.Genre),
		aggregateNames(schema.MovieActor, schema.Actor),
		aggregateNames(schema.MovieLanguage, schema.Language),
		schema.Movie.Table,
		schema.Country.Table, schema.Country.ID, schema.Movie.CountryID,
		schema.Movie.ID,
	)

	var (
		movie                                 Movie
		status                                string
		countryID                             *int
		countryCode, countryName              *string
		genresJSON, actorsJSON, languagesJSON []byte
	)

	err := repository.pool.QueryRow(context, query, id).Scan(
		&movie.ID, &movie.Name, &movie.Date.Time, &movie.Score,
		&movie.Overview, &status, &movie.Budget, &movie.Revenue,
		&countryID, &countryCode, &countryName,
		&genresJSON, &actorsJSON, &languagesJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "find_movie")
	}

	movie.Status = Status(status)
	if countryID != nil {
		movie.Country = &reference.Country{ID: *countryID, Code: pointer.Val(countryCode), Name: countryName}
	}

	for _, relation := range []struct {
		raw    []byte
		target *[]reference.Entity
	}{
		{genresJSON, &movie.Genres},
		{actorsJSON, &movie.Actors},
		{languagesJSON, &movie.Languages},
	} {
		if err := json.Unmarshal(relation.raw, relation.target); err != nil {
			return nil, dberr.Wrap(err, "decode_movie_relations")
		}
	}

	return &movie, nil
}

// aggregateNames builds a sub-query returning a movie's linked entities as a JSON array.
func aggregateNames(link schema.MovieLinkTable, ref schema.NamedTable) string {
	return fmt.Sprintf(`COALESCE((
				SELECT json_agg(json_build_object('id', r.%s, 'name', r.%s) ORDER BY r.%s)
				FROM %s r
				JOIN %s l ON l.%s = r.%s
				WHERE l.%s = m.%s
			), '[]')`,
		ref.ID, ref.Name, ref.Name,
		ref.Table,
		link.Table, link.RefID, ref.ID,
		link.MovieID, schema.Movie.ID,
	)
}

func scanSummary(row pgx.CollectableRow) (Summary, error) {
	var summary Summary
	err := row.Scan(&summary.ID, &summary.Name, &summary.Date.Time, &summary.Score, &summary.Overview)
	return summary, err
}

// # Transaction

// postgresTx implements [Tx] on an open pgx transaction.
type postgresTx struct {
	tx   pgx.Tx
	refs *reference.PostgresStore
}

func (transaction *postgresTx) References() reference.Store {
	return transaction.refs
}

func (transaction *postgresTx) ExistsByNameAndDate(context context.Context, name string, date types.Date, excludeID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2 AND %s <> $3)`,
		schema.Movie.Table, schema.Movie.Name, schema.Movie.Date, schema.Movie.ID,
	)

	var exists bool
	if err := transaction.tx.QueryRow(context, query, name, date.Time, excludeID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "movie_exists")
	}
	return exists, nil
}

func (transaction *postgresTx) Insert(context context.Context, draft *Draft, countryID int) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`,
		schema.Movie.Table,
		schema.Movie.Name, schema.Movie.Date, schema.Movie.Score, schema.Movie.Overview,
		schema.Movie.Status, schema.Movie.Budget, schema.Movie.Revenue, schema.Movie.CountryID,
		schema.Movie.ID,
	)

	var id int
	err := transaction.tx.QueryRow(context, query,
		draft.Name, draft.Date.Time, draft.Score, draft.Overview,
		string(draft.Status), draft.Budget, draft.Revenue, countryID,
	).Scan(&id)

	// A concurrent create won the (name, date) race after our existence check.
	if dberr.IsUniqueViolation(err) {
		return 0, DuplicateError(draft.Name, draft.Date).WithCause(err)
	}
	if err != nil {
		return 0, dberr.Wrap(err, "insert_movie")
	}
	return id, nil
}

/*
Attach inserts every association row of a new movie.

Description: All rows of the three link tables are queued on one pgx.Batch and
sent in a single round trip.
*/
func (transaction *postgresTx) Attach(context context.Context, movieID int, links Links) error {
	batch := &pgx.Batch{}

	for _, group := range []struct {
		table schema.MovieLinkTable
		ids   []int
	}{
		{schema.MovieGenre, links.GenreIDs},
		{schema.MovieActor, links.ActorIDs},
		{schema.MovieLanguage, links.LanguageIDs},
	} {
		query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`, group.table.Table, group.table.MovieID, group.table.RefID)
		for _, id := range group.ids {
			batch.Queue(query, movieID, id)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	if err := transaction.tx.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "attach_movie_links")
	}
	return nil
}

func (transaction *postgresTx) LockByID(context context.Context, id int) (*Summary, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		FOR UPDATE`,
		schema.Movie.ID, schema.Movie.Name, schema.Movie.Date, schema.Movie.Score, schema.Movie.Overview,
		schema.Movie.Table,
		schema.Movie.ID,
	)

	rows, err := transaction.tx.Query(context, query, id)
	if err != nil {
		return nil, dberr.Wrap(err, "lock_movie")
	}

	summary, err := pgx.CollectExactlyOneRow(rows, scanSummary)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "lock_movie")
	}
	return &summary, nil
}

// Update writes only the fields present in patch.
func (transaction *postgresTx) Update(context context.Context, id int, patch UpdatePatch) error {
	var (
		assignments []string
		args        []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set(schema.Movie.Name, *patch.Name)
	}
	if patch.Date != nil {
		set(schema.Movie.Date, patch.Date.Time)
	}
	if patch.Score != nil {
		set(schema.Movie.Score, *patch.Score)
	}
	if patch.Overview != nil {
		set(schema.Movie.Overview, *patch.Overview)
	}
	if patch.Status != nil {
		set(schema.Movie.Status, string(*patch.Status))
	}
	if patch.Budget != nil {
		set(schema.Movie.Budget, *patch.Budget)
	}
	if patch.Revenue != nil {
		set(schema.Movie.Revenue, *patch.Revenue)
	}

	if len(assignments) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		schema.Movie.Table, strings.Join(assignments, ", "), schema.Movie.ID, len(args),
	)

	tag, err := transaction.tx.Exec(context, query, args...)
	if dberr.IsUniqueViolation(err) && patch.Name != nil && patch.Date != nil {
		return DuplicateError(*patch.Name, *patch.Date).WithCause(err)
	}
	if err != nil {
		return dberr.Wrap(err, "update_movie")
	}
	if tag.RowsAffected() == 0 {
		return ErrMovieNotFound
	}
	return nil
}

func (transaction *postgresTx) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Movie.Table, schema.Movie.ID)

	tag, err := transaction.tx.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}
	if tag.RowsAffected() == 0 {
		return ErrMovieNotFound
	}
	return nil
}
