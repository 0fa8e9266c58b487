// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/ctxutil"
	"github.com/taibuivan/pokedex/internal/platform/respond"
	"github.com/taibuivan/pokedex/internal/platform/sec"
)

// SessionResolver turns a session cookie value into live session claims.
//
// Implementations must check both the token signature and that the
// server-side session still exists, so logged-out tokens are rejected.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*sec.SessionClaims, error)
}

// Authenticate reads the session cookie and attaches the claims to the context.
// Register it after [StructuredLogger] and [PanicRecovery].
//
// # Flow
//  1. No cookie: the request proceeds as anonymous.
//  2. Cookie present: resolve via [SessionResolver].
//  3. Resolution fails: the request proceeds as anonymous and the stale cookie is cleared.
//  4. Success: [*sec.SessionClaims] are injected for downstream handlers.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			claims, err := resolver.ResolveSession(request.Context(), cookie.Value)
			if err != nil {
				ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "session_rejected",
					slog.String("error", err.Error()),
				)
				ClearSessionCookie(writer)
				next.ServeHTTP(writer, request)
				return
			}

			recordUser(request.Context(), claims.UserID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithSession(request.Context(), claims)))
		})
	}
}

// RequireAuth blocks requests that carry no live session.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetSession(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// SetSessionCookie writes the HttpOnly session cookie.
func SetSessionCookie(writer http.ResponseWriter, token string, maxAgeSeconds int, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(writer http.ResponseWriter) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
