// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package naturalkey canonicalizes the human-entered strings that identify
// reference entities (genre, actor and language names, country codes).
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so that "é" typed as one or two code points is the same key.
// 2. Trims surrounding whitespace.
// 3. Collapses inner runs of whitespace into a single space.
//
// Case is preserved for names. Country codes are additionally upper-cased.
package naturalkey

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Name returns the canonical form of a reference entity name.
func Name(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// CountryCode returns the canonical, upper-cased form of a country code.
func CountryCode(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Upper(language.Und).String(Name(s))
}

// Distinct canonicalizes keys with normalize and drops repeats, keeping the
// first occurrence's position. Keys that normalize to "" are dropped.
func Distinct(keys []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(keys))
	result := make([]string, 0, len(keys))

	for _, key := range keys {
		canonical := normalize(key)
		if canonical == "" {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}

	return result
}
