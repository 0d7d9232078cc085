// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cinecat/internal/platform/apperr"
	"github.com/taibuivan/cinecat/pkg/pagination"
)

const moviesPath = "/api/v1/movies/"

/*
TestNewWindow covers the page arithmetic for 25 rows at 10 per page.
*/
func TestNewWindow(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int
		wantOffset int
		wantPages  int
		wantExists bool
	}{
		{"first_page", 1, 10, 25, 0, 3, true},
		{"last_partial_page", 3, 10, 25, 20, 3, true},
		{"past_the_end", 4, 10, 25, 30, 3, false},
		{"exact_multiple", 2, 10, 20, 10, 2, true},
		{"empty_set", 1, 10, 0, 0, 0, false},
		{"single_row", 1, 20, 1, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := pagination.NewWindow(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.wantOffset, w.Offset)
			assert.Equal(t, tt.wantPages, w.TotalPages)
			assert.Equal(t, tt.total, w.TotalItems)
			assert.Equal(t, tt.wantExists, w.Exists())
		})
	}
}

/*
TestWindow_Links checks that prev and next only exist when the page does.
*/
func TestWindow_Links(t *testing.T) {
	prev, next := pagination.NewWindow(1, 10, 25).Links(moviesPath)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "/api/v1/movies/?page=2&per_page=10", *next)

	prev, next = pagination.NewWindow(2, 10, 25).Links(moviesPath)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "/api/v1/movies/?page=1&per_page=10", *prev)
	assert.Equal(t, "/api/v1/movies/?page=3&per_page=10", *next)

	prev, next = pagination.NewWindow(3, 10, 25).Links(moviesPath)
	require.NotNil(t, prev)
	assert.Equal(t, "/api/v1/movies/?page=2&per_page=10", *prev)
	assert.Nil(t, next)

	prev, next = pagination.NewWindow(4, 10, 25).Links(moviesPath)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestWindow_Meta(t *testing.T) {
	meta := pagination.NewWindow(1, 20, 1).Meta(moviesPath)

	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.PerPage)
	assert.Equal(t, 1, meta.TotalItems)
	assert.Equal(t, 1, meta.TotalPages)
	assert.Nil(t, meta.PrevPage)
	assert.Nil(t, meta.NextPage)
}

/*
TestFromRequest covers defaults and the rejection of bad query values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		want        pagination.Params
		wantInvalid []string
	}{
		{"defaults", "", pagination.Params{Page: 1, PerPage: 10}, nil},
		{"explicit", "?page=3&per_page=20", pagination.Params{Page: 3, PerPage: 20}, nil},
		{"zero_page", "?page=0", pagination.Params{}, []string{"page"}},
		{"per_page_too_large", "?per_page=21", pagination.Params{}, []string{"per_page"}},
		{"per_page_zero", "?per_page=0", pagination.Params{}, []string{"per_page"}},
		{"non_numeric", "?page=abc&per_page=x", pagination.Params{}, []string{"page", "per_page"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, moviesPath+tt.query, nil)
			params, err := pagination.FromRequest(req)

			if tt.wantInvalid == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, params)
				return
			}

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)

			fields := make([]string, 0, len(ae.Details))
			for _, d := range ae.Details {
				fields = append(fields, d.Field)
			}
			assert.Equal(t, tt.wantInvalid, fields)
		})
	}
}
