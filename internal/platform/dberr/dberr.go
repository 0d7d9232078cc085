// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
)

// Wrap inspects a database error and classifies it as an [apperr.AppError].
//
//   - pgx.ErrNoRows becomes NOT_FOUND with a generic message.
//   - SQLSTATE 23505 (unique_violation) becomes CONFLICT.
//   - Errors that already are AppErrors pass through untouched.
//   - Anything else becomes STORAGE_ERROR carrying the action for the logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.As(err) != nil {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource not found").WithCause(err)
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict("The resource was created concurrently, retry the request").WithCause(err)
	}

	return apperr.Storage(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
