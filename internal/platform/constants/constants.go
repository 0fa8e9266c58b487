// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the Pokédex API.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Session: cookie names, header names and Redis prefixes.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "pokedex-api"
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

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitCleanupInterval is how often idle IP entries are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Session & CSRF

const (
	// SessionIssuer is the 'iss' claim of session tokens.
	SessionIssuer = "pokedex.api"

	// SessionCookieName holds the signed session token (HttpOnly).
	SessionCookieName = "session"

	// CSRFCookieName holds the CSRF token; readable by the client so it can echo it.
	CSRFCookieName = "csrf_token"

	// CSRFHeaderName is the request header that must echo the CSRF cookie.
	CSRFHeaderName = "X-CSRFToken"

	// RedisPrefixSession prefixes session keys: session:<id> -> user id.
	RedisPrefixSession = "session:"

	// CSRFCookieTTL bounds the lifetime of an issued CSRF cookie.
	CSRFCookieTTL = 24 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Domain Messages

const (
	// MsgNotOwner is returned with 403 when a caller mutates a resource they do not own.
	MsgNotOwner = "Unauthorized"

	// MsgAlreadyInList is returned with 400 on duplicate list entries.
	MsgAlreadyInList = "Pokemon already in list"
)
