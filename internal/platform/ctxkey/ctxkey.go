// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// Keys use a private, unexported type so that values stored by third-party
// packages under the same string never collide with ours.
package ctxkey

type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeySession is the context key for the verified session ([*sec.SessionClaims]).
	KeySession key = "session"

	// KeyCSRFToken is the context key for the CSRF token issued or accepted on this request.
	KeyCSRFToken key = "csrf_token"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"

	// KeyAccessEntry is the context key for the access-log fields inner
	// middleware fills in after the logger has run.
	KeyAccessEntry key = "access_entry"
)
