// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the shared catalog entities that movies point to.

Countries, genres, actors and languages are created lazily the first time a
movie names them and are never deleted. Each is identified by a natural key
(a country code or a name) that is unique per [Kind].

# Core Responsibility

  - Resolution: one generic get-or-create over every [Kind], see [Resolver].
  - Discovery: read-only listings of each kind, see [Service].
*/
package reference

import (
	"github.com/taibuivan/cinecat/internal/platform/database/schema"
	"github.com/taibuivan/cinecat/pkg/naturalkey"
)

// # Kinds

// Kind identifies one family of reference entities.
type Kind string

const (
	KindCountry  Kind = "country"
	KindGenre    Kind = "genre"
	KindActor    Kind = "actor"
	KindLanguage Kind = "language"
)

// Kinds lists every reference kind in a stable order.
var Kinds = []Kind{KindCountry, KindGenre, KindActor, KindLanguage}

// Normalize returns the canonical natural key for this kind.
func (k Kind) Normalize(key string) string {
	if k == KindCountry {
		return naturalkey.CountryCode(key)
	}
	return naturalkey.Name(key)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindCountry, KindGenre, KindActor, KindLanguage:
		return true
	}
	return false
}

// table returns the backing table and its natural-key column.
func (k Kind) table() (table, id, key string) {
	switch k {
	case KindCountry:
		return schema.Country.Table, schema.Country.ID, schema.Country.Code
	case KindGenre:
		return schema.Genre.Table, schema.Genre.ID, schema.Genre.Name
	case KindActor:
		return schema.Actor.Table, schema.Actor.ID, schema.Actor.Name
	default:
		return schema.Language.Table, schema.Language.ID, schema.Language.Name
	}
}

// # Entities

// Country is a production country. Name stays null for lazily created rows.
type Country struct {
	ID   int     `json:"id"`
	Code string  `json:"code"`
	Name *string `json:"name"`
}

// Entity is a genre, actor or language.
type Entity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
