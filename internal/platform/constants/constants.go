// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, header names, and the tunables of the reader and
catalog sequencing so that magic numbers stay out of business logic.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: IP tracking TTLs.
  - Headers: Canonical header names used by middleware.
  - Reading: Read-ahead depth and page-count bounds of the mock service.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "yomira-reader"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldHasMore = "hasMore"
	FieldTotal   = "total"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Catalog

const (
	// CategoryAll disables the category filter on listing requests.
	CategoryAll = "all"

	// DefaultCatalogPageSize is the number of items requested per catalog page.
	DefaultCatalogPageSize = 50
)

// # Reading

const (
	// ReadAheadChapters is how many locked chapters the reader keeps prefetched
	// beyond the current one.
	ReadAheadChapters = 2

	// DefaultChapterCount is used when a content id has no configured chapter total.
	DefaultChapterCount = 10

	// MinPagesPerChapter and MaxPagesPerChapter bound the mock page count (inclusive).
	MinPagesPerChapter = 10
	MaxPagesPerChapter = 15

	// HeaderScrollThreshold is the fraction of the viewport height a scroll must
	// cover before the reader header toggles.
	HeaderScrollThreshold = 0.05
)
