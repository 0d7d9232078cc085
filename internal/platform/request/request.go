// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/internal/platform/validate"
)

// maxBodyBytes caps request bodies read by [DecodeJSON].
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

A type mismatch (for example a string where a number is expected) is reported
against the offending field; any other decoding failure yields
validate.ErrInvalidJSON.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: VALIDATION_ERROR if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))

	if err := decoder.Decode(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   typeErr.Field,
				Message: "Must be a valid " + jsonKind(typeErr.Type.Kind()),
			}).WithCause(err)
		}

		return validate.ErrInvalidJSON.WithCause(err)
	}
	return nil
}

// jsonKind names the JSON type a Go type decodes from.
func jsonKind(kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return "string"
	}
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
PositiveID parses a named URL parameter as an integer id of at least 1.

Returns:
  - int: The id
  - error: VALIDATION_ERROR when the value is not an integer or is below 1
*/
func PositiveID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(Param(request, name))
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer greater than or equal to 1",
		})
	}
	return id, nil
}
