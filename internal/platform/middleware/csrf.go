// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/ctxutil"
	"github.com/taibuivan/pokedex/internal/platform/respond"
	"github.com/taibuivan/pokedex/internal/platform/sec"
)

// ErrCSRF is returned when an unsafe request fails the double-submit check.
var ErrCSRF = &apperr.AppError{
	Code:       "CSRF_FAILED",
	Message:    "The CSRF token is missing or invalid.",
	HTTPStatus: http.StatusForbidden,
}

// CSRF implements the double-submit cookie pattern.
//
// # Flow
//  1. Every response lacking a valid csrf_token cookie receives a freshly minted one.
//  2. Safe methods (GET, HEAD, OPTIONS, TRACE) pass through.
//  3. Unsafe methods must send X-CSRFToken equal to a valid cookie value, else 403.
func CSRF(secret []byte, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := ""
			valid := false
			if cookie, err := request.Cookie(constants.CSRFCookieName); err == nil {
				token = cookie.Value
				valid = sec.VerifyCSRFToken(secret, token)
			}

			if !valid {
				minted, err := sec.MintCSRFToken(secret)
				if err != nil {
					respond.Error(writer, request, apperr.Internal(err))
					return
				}
				token = minted
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.CSRFCookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(constants.CSRFCookieTTL.Seconds()),
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithCSRFToken(request.Context(), token)

			if !isSafeMethod(request.Method) {
				header := request.Header.Get(constants.CSRFHeaderName)
				if !valid || header == "" || !sec.EqualTokens(header, token) {
					ctxutil.GetLogger(ctx).WarnContext(ctx, "csrf_rejected",
						slog.Bool("cookie_valid", valid),
						slog.Bool("header_present", header != ""),
					)
					respond.Error(writer, request, ErrCSRF)
					return
				}
			}

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
