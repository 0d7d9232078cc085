// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie defines the movie catalog: its entities, validation rules and the
operations that create, read, list, update and delete movies.

Core Responsibility:

  - Integrity: (name, date) is unique; score, money and release date are bounded.
  - Relationships: country, genres, actors and languages are resolved through
    [reference.Resolver] inside the same unit of work as the movie write.
  - Hydration: a movie is always returned with its relationships loaded in one query.
*/
package movie

import (
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/cinecat/internal/core/reference"
)

// # Domain Enums

// Status describes where a movie is in its production. It carries no workflow.
type Status string

const (
	StatusReleased       Status = "Released"
	StatusPostProduction Status = "Post Production"
	StatusInProduction   Status = "In Production"
)

// IsValid reports whether s is a recognised [Status] value. Matching is case-sensitive.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusReleased,
		StatusPostProduction,
		StatusInProduction:
		return true
	}
	return false
}

// statusValues lists the enumeration for validation messages.
var statusValues = []string{
	string(StatusReleased),
	string(StatusPostProduction),
	string(StatusInProduction),
}

// # Core Entities

// Movie is the full catalog record with its relationships.
type Movie struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Date      types.Date         `json:"date"`
	Score     float64            `json:"score"`
	Overview  string             `json:"overview"`
	Status    Status             `json:"status"`
	Budget    decimal.Decimal    `json:"budget"`
	Revenue   decimal.Decimal    `json:"revenue"`
	Country   *reference.Country `json:"country"`
	Genres    []reference.Entity `json:"genres"`
	Actors    []reference.Entity `json:"actors"`
	Languages []reference.Entity `json:"languages"`
}

// Summary is the list projection of a movie.
type Summary struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Date     types.Date `json:"date"`
	Score    float64    `json:"score"`
	Overview string     `json:"overview"`
}

// # Inputs

// CreateInput is the decoded create payload. Pointer fields distinguish a
// missing value from a zero value; a nil list means the key was absent or null.
type CreateInput struct {
	Name      *string          `json:"name"`
	Date      *types.Date      `json:"date"`
	Score     *float64         `json:"score"`
	Overview  *string          `json:"overview"`
	Status    *Status          `json:"status"`
	Budget    *decimal.Decimal `json:"budget"`
	Revenue   *decimal.Decimal `json:"revenue"`
	Country   *string          `json:"country"`
	Genres    []string         `json:"genres"`
	Actors    []string         `json:"actors"`
	Languages []string         `json:"languages"`
}

// Draft is a create payload that passed validation, with canonical keys.
type Draft struct {
	Name      string
	Date      types.Date
	Score     float64
	Overview  string
	Status    Status
	Budget    decimal.Decimal
	Revenue   decimal.Decimal
	Country   string
	Genres    []string
	Actors    []string
	Languages []string
}

// UpdatePatch is a partial update. Absent and null keys are both nil and leave
// the stored value untouched. Relationships are not patchable.
type UpdatePatch struct {
	Name     *string          `json:"name"`
	Date     *types.Date      `json:"date"`
	Score    *float64         `json:"score"`
	Overview *string          `json:"overview"`
	Status   *Status          `json:"status"`
	Budget   *decimal.Decimal `json:"budget"`
	Revenue  *decimal.Decimal `json:"revenue"`
}

// IsEmpty reports whether the patch carries no field at all.
func (patch UpdatePatch) IsEmpty() bool {
	return patch.Name == nil && patch.Date == nil && patch.Score == nil &&
		patch.Overview == nil && patch.Status == nil &&
		patch.Budget == nil && patch.Revenue == nil
}

// # Field Identifiers

const (
	FieldName      = "name"
	FieldDate      = "date"
	FieldScore     = "score"
	FieldOverview  = "overview"
	FieldStatus    = "status"
	FieldBudget    = "budget"
	FieldRevenue   = "revenue"
	FieldCountry   = "country"
	FieldGenres    = "genres"
	FieldActors    = "actors"
	FieldLanguages = "languages"
)
