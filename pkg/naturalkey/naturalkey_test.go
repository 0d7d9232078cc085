// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package naturalkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/cinecat/pkg/naturalkey"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unchanged", "Noir", "Noir"},
		{"trimmed", "  Noir\t", "Noir"},
		{"inner_whitespace", "Science   \n Fiction", "Science Fiction"},
		{"case_preserved", "noir", "noir"},
		{"decomposed_accent", "Pe\u0301rez", "P\u00e9rez"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, naturalkey.Name(tt.in))
		})
	}
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "US", naturalkey.CountryCode(" us "))
	assert.Equal(t, "GBR", naturalkey.CountryCode("gBr"))
}

func TestDistinct(t *testing.T) {
	got := naturalkey.Distinct([]string{"Noir", " Noir ", "Drama", "", "Noir", "Drama "}, naturalkey.Name)
	assert.Equal(t, []string{"Noir", "Drama"}, got)

	assert.Empty(t, naturalkey.Distinct(nil, naturalkey.Name))
}
