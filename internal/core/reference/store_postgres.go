// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/internal/platform/database/schema"
	"github.com/taibuivan/cinecat/internal/platform/dberr"
)

// Querier is the subset of pgx shared by pools, connections and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// # Transactional Store

// PostgresStore implements [Store] on top of an open transaction.
type PostgresStore struct {
	db Querier
}

// NewPostgresStore binds a [Store] to tx.
func NewPostgresStore(tx pgx.Tx) *PostgresStore {
	return &PostgresStore{db: tx}
}

/*
FindID looks up an entity by its canonical natural key.

Description: Country rows are matched on code; genre, actor and language rows on name.
*/
func (store *PostgresStore) FindID(context context.Context, kind Kind, key string) (int, bool, error) {
	table, idColumn, keyColumn := kind.table()
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, idColumn, table, keyColumn)

	var id int
	err := store.db.QueryRow(context, query, key).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, dberr.Wrap(err, "find_"+string(kind))
	}

	return id, true, nil
}

/*
Insert creates an entity with the given natural key.

Description: A unique_violation means a concurrent transaction created the same
key between our lookup and this insert. It is reported as CONFLICT so the
client can retry; the surrounding transaction is already aborted by Postgres.
*/
func (store *PostgresStore) Insert(context context.Context, kind Kind, key string) (int, error) {
	table, idColumn, keyColumn := kind.table()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`, table, keyColumn, idColumn)

	var id int
	err := store.db.QueryRow(context, query, key).Scan(&id)
	if dberr.IsUniqueViolation(err) {
		return 0, apperr.Conflict(fmt.Sprintf("The %s '%s' was created by a concurrent request, please retry.", kind, key)).WithCause(err)
	}
	if err != nil {
		return 0, dberr.Wrap(err, "insert_"+string(kind))
	}

	return id, nil
}

// # Listing Repository

// PostgresRepository implements [Repository] using a pgxpool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListCountries retrieves all countries ordered by code.
func (repository *PostgresRepository) ListCountries(context context.Context) ([]Country, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Country.ID, schema.Country.Code, schema.Country.Name,
		schema.Country.Table, schema.Country.Code,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_countries")
	}

	countries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Country, error) {
		var c Country
		err := row.Scan(&c.ID, &c.Code, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_country")
	}

	return countries, nil
}

// ListEntities retrieves all genres, actors or languages ordered by name.
func (repository *PostgresRepository) ListEntities(context context.Context, kind Kind) ([]Entity, error) {
	table, idColumn, nameColumn := kind.table()
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`, idColumn, nameColumn, table, nameColumn)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_"+string(kind))
	}

	entities, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Entity, error) {
		var e Entity
		err := row.Scan(&e.ID, &e.Name)
		return e, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_"+string(kind))
	}

	return entities, nil
}
