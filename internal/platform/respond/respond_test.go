// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/internal/platform/respond"
)

/*
TestError_StatusMapping verifies the envelope and status for each error kind.
*/
func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not_found", apperr.NotFound("Movie with the given ID was not found."), http.StatusNotFound, apperr.CodeNotFound, "Movie with the given ID was not found."},
		{"conflict", apperr.Conflict("duplicate"), http.StatusConflict, apperr.CodeConflict, "duplicate"},
		{"validation", apperr.ValidationError("Validation failed", apperr.FieldError{Field: "score", Message: "bad"}), http.StatusBadRequest, apperr.CodeValidation, "Validation failed"},
		{"storage_hides_cause", apperr.Storage(errors.New("pq: secret detail")), http.StatusInternalServerError, apperr.CodeStorage, "The storage layer could not complete the request"},
		{"plain_error", errors.New("boom"), http.StatusInternalServerError, apperr.CodeInternal, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret")

			var body respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestAcknowledge(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Acknowledge(rec, "Movie updated successfully.")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"detail":"Movie updated successfully."}}`, rec.Body.String())
}
