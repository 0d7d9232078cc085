// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecat/internal/core/movie"
	"github.com/taibuivan/cinecat/internal/platform/respond"
)

const createBody = `{
	"name": "The Maltese Falcon",
	"date": "1941-09-01",
	"score": 88.5,
	"overview": "A detective hunts a jeweled falcon.",
	"status": "Released",
	"budget": 375000,
	"revenue": "1000000.50",
	"country": "us",
	"genres": ["Noir", "Mystery"],
	"actors": ["Humphrey Bogart"],
	"languages": ["English"]
}`

func newTestRouter() http.Handler {
	router := chi.NewRouter()
	router.Mount("/api/v1/movies", movie.NewHandler(newTestService(newMemoryStore())).Routes())
	return router
}

func serve(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Lifecycle drives create, read, list, update and delete over HTTP.
*/
func TestHandler_Lifecycle(t *testing.T) {
	router := newTestRouter()

	// Create
	created := serve(t, router, http.MethodPost, "/api/v1/movies/", createBody)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var createdBody struct {
		Data struct {
			ID      int    `json:"id"`
			Date    string `json:"date"`
			Budget  string `json:"budget"`
			Country struct {
				Code string  `json:"code"`
				Name *string `json:"name"`
			} `json:"country"`
			Genres []struct {
				Name string `json:"name"`
			} `json:"genres"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))
	assert.Equal(t, "1941-09-01", createdBody.Data.Date)
	assert.Equal(t, "375000", createdBody.Data.Budget)
	assert.Equal(t, "US", createdBody.Data.Country.Code)
	assert.Nil(t, createdBody.Data.Country.Name)
	assert.Len(t, createdBody.Data.Genres, 2)

	// Duplicate
	duplicate := serve(t, router, http.MethodPost, "/api/v1/movies/", createBody)
	assert.Equal(t, http.StatusConflict, duplicate.Code)

	// Read
	fetched := serve(t, router, http.MethodGet, "/api/v1/movies/1", "")
	assert.Equal(t, http.StatusOK, fetched.Code)

	// List
	listed := serve(t, router, http.MethodGet, "/api/v1/movies/?page=1&per_page=10", "")
	require.Equal(t, http.StatusOK, listed.Code)

	var page respond.PaginatedEnvelope
	require.NoError(t, json.Unmarshal(listed.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Meta.TotalPages)
	assert.Equal(t, 1, page.Meta.TotalItems)
	assert.Nil(t, page.Meta.PrevPage)
	assert.Nil(t, page.Meta.NextPage)

	// Update
	updated := serve(t, router, http.MethodPatch, "/api/v1/movies/1", `{"score": 50}`)
	require.Equal(t, http.StatusOK, updated.Code)
	assert.JSONEq(t, `{"data":{"detail":"Movie updated successfully."}}`, updated.Body.String())

	// Delete
	deleted := serve(t, router, http.MethodDelete, "/api/v1/movies/1", "")
	assert.Equal(t, http.StatusNoContent, deleted.Code)
	assert.Empty(t, deleted.Body.String())

	gone := serve(t, router, http.MethodGet, "/api/v1/movies/1", "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
	assert.Contains(t, gone.Body.String(), "Movie with the given ID was not found.")
}

/*
TestHandler_StatusMapping checks the status code of each rejection path.
*/
func TestHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"non_numeric_score", http.MethodPost, "/api/v1/movies/", strings.Replace(createBody, "88.5", `"high"`, 1), http.StatusBadRequest},
		{"non_numeric_budget", http.MethodPost, "/api/v1/movies/", strings.Replace(createBody, "375000", `"lots"`, 1), http.StatusBadRequest},
		{"malformed_date", http.MethodPost, "/api/v1/movies/", strings.Replace(createBody, "1941-09-01", "01/09/1941", 1), http.StatusBadRequest},
		{"malformed_json", http.MethodPost, "/api/v1/movies/", `{"name":`, http.StatusBadRequest},
		{"id_zero", http.MethodGet, "/api/v1/movies/0", "", http.StatusBadRequest},
		{"id_text", http.MethodGet, "/api/v1/movies/abc", "", http.StatusBadRequest},
		{"missing_movie", http.MethodGet, "/api/v1/movies/999", "", http.StatusNotFound},
		{"id_beyond_int4", http.MethodGet, "/api/v1/movies/3000000000", "", http.StatusNotFound},
		{"patch_id_beyond_int4", http.MethodPatch, "/api/v1/movies/3000000000", `{"score": 1}`, http.StatusNotFound},
		{"delete_id_beyond_int4", http.MethodDelete, "/api/v1/movies/3000000000", "", http.StatusNotFound},
		{"empty_catalog", http.MethodGet, "/api/v1/movies/", "", http.StatusNotFound},
		{"per_page_too_large", http.MethodGet, "/api/v1/movies/?per_page=21", "", http.StatusBadRequest},
		{"page_text", http.MethodGet, "/api/v1/movies/?page=first", "", http.StatusBadRequest},
		{"empty_patch", http.MethodPatch, "/api/v1/movies/1", `{}`, http.StatusBadRequest},
		{"null_only_patch", http.MethodPatch, "/api/v1/movies/1", `{"name": null}`, http.StatusBadRequest},
		{"patch_missing_movie", http.MethodPatch, "/api/v1/movies/999", `{"score": 1}`, http.StatusNotFound},
		{"delete_missing_movie", http.MethodDelete, "/api/v1/movies/999", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(t, newTestRouter(), tt.method, tt.target, tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.NotEmpty(t, envelope.Code)
			assert.NotEmpty(t, envelope.Error)
		})
	}
}

/*
TestHandler_FieldDetails checks a decode failure names the offending field.
*/
func TestHandler_FieldDetails(t *testing.T) {
	body := strings.Replace(createBody, "88.5", `"high"`, 1)
	recorder := serve(t, newTestRouter(), http.MethodPost, "/api/v1/movies/", body)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, movie.FieldScore, envelope.Details[0].Field)
}
