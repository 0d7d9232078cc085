// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/cinecat/internal/core/reference"
	"github.com/taibuivan/cinecat/internal/platform/constants"
	"github.com/taibuivan/cinecat/internal/platform/validate"
	"github.com/taibuivan/cinecat/pkg/naturalkey"
)

// countryCodeRegex matches an upper-cased ISO alpha-2 or alpha-3 code.
var countryCodeRegex = regexp.MustCompile(`^[A-Z]{2,3}$`)

// ReleaseCeiling returns the latest release date accepted on the calendar day of now.
func ReleaseCeiling(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, constants.ReleaseHorizonDays)
}

/*
ValidateCreate checks a create payload and returns its canonical [Draft].

Description: Every rule is evaluated so the caller receives all violations at
once. The check is pure; now only anchors the release-date ceiling.

Parameters:
  - input: CreateInput
  - now: time.Time (current instant, its calendar date is "today")

Returns:
  - *Draft: Validated payload with trimmed name, upper-cased country and deduplicated lists
  - error: VALIDATION_ERROR with one detail per violated rule
*/
func ValidateCreate(input CreateInput, now time.Time) (*Draft, error) {
	validator := &validate.Validator{}

	// Scalars
	validator.Present(FieldName, input.Name != nil)
	if input.Name != nil {
		validateName(validator, *input.Name)
	}

	validator.Present(FieldDate, input.Date != nil)
	if input.Date != nil {
		validator.NotAfter(FieldDate, input.Date.Time, ReleaseCeiling(now))
	}

	validator.Present(FieldScore, input.Score != nil)
	if input.Score != nil {
		validator.Range(FieldScore, *input.Score, constants.MinScore, constants.MaxScore)
	}

	validator.Present(FieldOverview, input.Overview != nil)

	validator.Present(FieldStatus, input.Status != nil)
	if input.Status != nil {
		validateStatus(validator, *input.Status)
	}

	validator.Present(FieldBudget, input.Budget != nil)
	if input.Budget != nil {
		validateMoney(validator, FieldBudget, *input.Budget)
	}

	validator.Present(FieldRevenue, input.Revenue != nil)
	if input.Revenue != nil {
		validateMoney(validator, FieldRevenue, *input.Revenue)
	}

	// Relationships
	var country string
	validator.Present(FieldCountry, input.Country != nil)
	if input.Country != nil {
		country = naturalkey.CountryCode(*input.Country)
		validator.Custom(FieldCountry, !countryCodeRegex.MatchString(country), "Must be a 2 or 3 letter alphabetic country code")
	}

	validateNames(validator, FieldGenres, input.Genres)
	validateNames(validator, FieldActors, input.Actors)
	validateNames(validator, FieldLanguages, input.Languages)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Draft{
		Name:      strings.TrimSpace(*input.Name),
		Date:      *input.Date,
		Score:     *input.Score,
		Overview:  *input.Overview,
		Status:    *input.Status,
		Budget:    *input.Budget,
		Revenue:   *input.Revenue,
		Country:   country,
		Genres:    naturalkey.Distinct(input.Genres, reference.KindGenre.Normalize),
		Actors:    naturalkey.Distinct(input.Actors, reference.KindActor.Normalize),
		Languages: naturalkey.Distinct(input.Languages, reference.KindLanguage.Normalize),
	}, nil
}

/*
Validate checks the fields present in a partial update.

Absent fields are not checked. The empty-patch rule is enforced by the service
before the movie is loaded.
*/
func (patch UpdatePatch) Validate(now time.Time) error {
	validator := &validate.Validator{}

	if patch.Name != nil {
		validateName(validator, *patch.Name)
	}
	if patch.Date != nil {
		validator.NotAfter(FieldDate, patch.Date.Time, ReleaseCeiling(now))
	}
	if patch.Score != nil {
		validator.Range(FieldScore, *patch.Score, constants.MinScore, constants.MaxScore)
	}
	if patch.Status != nil {
		validateStatus(validator, *patch.Status)
	}
	if patch.Budget != nil {
		validateMoney(validator, FieldBudget, *patch.Budget)
	}
	if patch.Revenue != nil {
		validateMoney(validator, FieldRevenue, *patch.Revenue)
	}

	return validator.Err()
}

// # Rule Helpers

func validateName(validator *validate.Validator, name string) {
	validator.Required(FieldName, name).MaxLen(FieldName, strings.TrimSpace(name), constants.MaxNameLength)
}

// validateMoney keeps budget and revenue within what the money columns store exactly.
func validateMoney(validator *validate.Validator, field string, value decimal.Decimal) {
	validator.NonNegative(field, value).Money(field, value, constants.MoneyIntegerDigits, constants.MoneyScale)
}

func validateStatus(validator *validate.Validator, status Status) {
	if !status.IsValid() {
		validator.OneOf(FieldStatus, string(status), statusValues...)
	}
}

// validateNames requires the list itself (an empty list is fine) and checks every entry.
func validateNames(validator *validate.Validator, field string, names []string) {
	validator.Present(field, names != nil)

	for i, name := range names {
		entry := fmt.Sprintf("%s[%d]", field, i)
		validator.Required(entry, name).MaxLen(entry, naturalkey.Name(name), constants.MaxNameLength)
	}
}
