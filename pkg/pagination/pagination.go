// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides the page arithmetic and response metadata for
// list endpoints.
//
// # Overview
//
// A [Window] is computed from the requested page, the page size and the total
// row count. Unlike a clamping paginator, a page past the end does not exist:
// callers check [Window.Exists] and report NOT_FOUND.
package pagination

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/internal/platform/constants"
	"github.com/taibuivan/cinecat/internal/platform/validate"
)

// Params holds the parsed page and per_page from a request's query string.
type Params struct {
	Page    int `query:"page" validate:"min=1"`
	PerPage int `query:"per_page" validate:"min=1,max=20"`
}

// Window is the resolved position of one page inside a result set.
type Window struct {
	Page       int
	PerPage    int
	Offset     int
	TotalPages int
	TotalItems int
}

// NewWindow computes the offset and page count for the given request.
//
// TotalPages is ceil(total / perPage) and is 0 for an empty result set.
func NewWindow(page, perPage, total int) Window {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * perPage
	}

	return Window{
		Page:       page,
		PerPage:    perPage,
		Offset:     offset,
		TotalPages: totalPages,
		TotalItems: total,
	}
}

// Exists reports whether the requested page holds at least one row.
func (w Window) Exists() bool {
	return w.TotalItems > 0 && w.Page >= 1 && w.Page <= w.TotalPages
}

// Links returns the previous and next page tokens of the form
// "<basePath>?page=N&per_page=M". Either is nil when there is no such page.
func (w Window) Links(basePath string) (prev, next *string) {
	if !w.Exists() {
		return nil, nil
	}
	if w.Page > 1 {
		link := pageLink(basePath, w.Page-1, w.PerPage)
		prev = &link
	}
	if w.Page < w.TotalPages {
		link := pageLink(basePath, w.Page+1, w.PerPage)
		next = &link
	}
	return prev, next
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalItems int     `json:"total_items"`
	TotalPages int     `json:"total_pages"`
	PrevPage   *string `json:"prev_page"`
	NextPage   *string `json:"next_page"`
}

// Meta builds the response metadata, with links rooted at basePath.
func (w Window) Meta(basePath string) Meta {
	prev, next := w.Links(basePath)
	return Meta{
		Page:       w.Page,
		PerPage:    w.PerPage,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages,
		PrevPage:   prev,
		NextPage:   next,
	}
}

func pageLink(basePath string, page, perPage int) string {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	// url.Values.Encode sorts keys, which happens to put page first.
	return basePath + "?" + query.Encode()
}

// FromRequest parses "page" and "per_page" query parameters.
//
// # Validation
//
// Missing values fall back to the defaults. Malformed or out-of-range values
// are rejected with VALIDATION_ERROR instead of being clamped.
func FromRequest(r *http.Request) (Params, error) {
	query := r.URL.Query()

	page, pageOK := parseIntParam(query, "page", constants.DefaultPage)
	perPage, perPageOK := parseIntParam(query, "per_page", constants.DefaultPerPage)

	var details []apperr.FieldError
	if !pageOK {
		details = append(details, apperr.FieldError{Field: "page", Message: "Must be an integer"})
	}
	if !perPageOK {
		details = append(details, apperr.FieldError{Field: "per_page", Message: "Must be an integer"})
	}
	if len(details) > 0 {
		return Params{}, apperr.ValidationError("Validation failed", details...)
	}

	params := Params{Page: page, PerPage: perPage}
	if err := validate.Struct(params); err != nil {
		return Params{}, err
	}
	return params, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(query url.Values, key string, defaultVal int) (int, bool) {
	raw := query.Get(key)
	if raw == "" {
		return defaultVal, true
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
