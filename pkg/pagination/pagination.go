// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how offset-based navigation is requested via query parameters
// ("offset", "limit") and how the resulting window metadata ("hasMore", "total")
// is delivered in the listing envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultOffset is the starting position when "offset" is absent or invalid.
	DefaultOffset = 0
)

// Params holds the parsed offset and limit from a request's query string.
//
// A zero Limit means "everything from Offset onwards".
type Params struct {
	Offset int
	Limit  int
}

// Window is the pagination metadata included in listing responses.
type Window struct {
	HasMore bool
	Total   int
}

// FromRequest parses "offset" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid or negative values fall back to [DefaultOffset] and an unbounded limit.
func FromRequest(r *http.Request) Params {
	offset := parseIntParam(r, "offset", DefaultOffset)
	limit := parseIntParam(r, "limit", 0)

	if offset < 0 {
		offset = DefaultOffset
	}

	if limit < 0 {
		limit = 0
	}

	return Params{Offset: offset, Limit: limit}
}

// Slice cuts the requested window out of items.
//
// HasMore is true when offset+limit is still short of the total, matching the
// client's "load more" contract. Offset and limit are never summed directly,
// so values near [math.MaxInt] cannot overflow.
func Slice[T any](items []T, params Params) ([]T, Window) {
	total := len(items)

	limit := params.Limit
	if limit == 0 {
		limit = total
	}

	start := min(params.Offset, total)
	end := start + min(limit, total-start)

	return items[start:end], Window{
		HasMore: params.Offset < total && limit < total-params.Offset,
		Total:   total,
	}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
