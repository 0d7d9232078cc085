// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Store is the transaction-bound access the [Resolver] needs.
//
// Implementations must run every call inside the caller's unit of work so that
// lookups and inserts commit or roll back together with the movie write.
type Store interface {

	/*
		FindID looks up an entity by its canonical natural key.

		Returns:
		  - int: The entity id when found
		  - bool: false when no row carries the key
		  - error: Storage failures
	*/
	FindID(context context.Context, kind Kind, key string) (int, bool, error)

	/*
		Insert creates an entity with the given natural key.

		Returns:
		  - int: The generated id
		  - error: CONFLICT when another transaction inserted the key first
	*/
	Insert(context context.Context, kind Kind, key string) (int, error)
}

// Repository is the read-only listing side of the reference tables.
type Repository interface {
	// ListCountries returns every country ordered by code.
	ListCountries(context context.Context) ([]Country, error)

	// ListEntities returns every genre, actor or language ordered by name.
	ListEntities(context context.Context, kind Kind) ([]Entity, error)
}
