// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys shared by the request
// middleware and [ctxutil].
package ctxkey

// key is unexported so no other package can build a colliding key.
type key string

const (
	// KeyRequestID carries the X-Request-ID of the current API request.
	KeyRequestID key = "request_id"

	// KeyLogger carries the request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
