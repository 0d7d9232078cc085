// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// The fluent [Validator] is used by the domain layer for business rules. Struct
// tag validation through go-playground/validator is reserved for transport
// shaped inputs such as query parameters, see [Struct].
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")

	// structValidator is safe for concurrent use and caches struct metadata.
	structValidator = newStructValidator()
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// Present fails if a required field was absent from the payload.
func (v *Validator) Present(field string, present bool) *Validator {
	if !present {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %g and %g", min, max))
	}
	return v
}

// NonNegative fails if the decimal value is below zero.
func (v *Validator) NonNegative(field string, value decimal.Decimal) *Validator {
	if value.IsNegative() {
		v.add(field, "Must be greater than or equal to 0")
	}
	return v
}

// Money fails if value has more than scale fractional digits or reaches
// 10^integerDigits in magnitude.
func (v *Validator) Money(field string, value decimal.Decimal, integerDigits, scale int32) *Validator {
	if !value.Equal(value.Truncate(scale)) {
		v.add(field, fmt.Sprintf("Must have at most %d decimal places", scale))
	}
	if limit := decimal.New(1, integerDigits); value.Abs().GreaterThanOrEqual(limit) {
		v.add(field, fmt.Sprintf("Must be less than %s", limit.String()))
	}
	return v
}

// NotAfter fails if value falls on a later calendar day than limit.
func (v *Validator) NotAfter(field string, value, limit time.Time) *Validator {
	if value.After(limit) {
		v.add(field, fmt.Sprintf("Must not be later than %s", limit.Format(time.DateOnly)))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("country", len(code) < 2, "Must be a 2 or 3 letter country code")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method, call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

/*
Struct validates target against its `validate` struct tags.

Field names in the returned details come from the `query` tag when present,
otherwise from the Go field name.

Returns:
  - error: VALIDATION_ERROR with one detail per failed tag, or nil
*/
func Struct(target any) error {
	err := structValidator.Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, apperr.FieldError{
			Field:   fe.Field(),
			Message: tagMessage(fe),
		})
	}
	return apperr.ValidationError("Validation failed", details...)
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("Failed the %q rule", fe.Tag())
	}
}

// newStructValidator reports fields by their `query` tag name when present.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name, _, _ := strings.Cut(field.Tag.Get("query"), ","); name != "" && name != "-" {
			return name
		}
		return field.Name
	})
	return v
}
