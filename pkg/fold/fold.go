// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold produces comparison keys for case- and accent-insensitive
// substring search.
//
// # Usage
//
// Catalog search matches a query against titles, authors and genres, so
// "pokemon" finds "Pokémon" and "ONE piece" finds "One Piece".
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Key converts an arbitrary Unicode string into its search comparison key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Applies Unicode case folding (ß → ss, Σ → σ).
// 4. Recomposes to NFC.
func Key(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), cases.Fold(), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}

// Contains reports whether needle occurs in haystack after folding both.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Key(haystack), Key(needle))
}

// Matcher folds a query once and tests many candidates against it.
type Matcher struct {
	key string
}

// NewMatcher prepares a [Matcher] for query.
func NewMatcher(query string) Matcher {
	return Matcher{key: Key(query)}
}

// Match reports whether any candidate contains the prepared query.
func (m Matcher) Match(candidates ...string) bool {
	if m.key == "" {
		return true
	}
	for _, candidate := range candidates {
		if strings.Contains(Key(candidate), m.key) {
			return true
		}
	}
	return false
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
