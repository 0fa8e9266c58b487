// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/sec"
)

func withParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

/*
TestID parses positive ids and maps everything else to 404.
*/
func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{"7", 7, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := withParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", tt.raw)
			id, err := requestutil.ID(req, "id", "Pokemon")
			if tt.wantErr {
				assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

/*
TestDecodeJSON rejects malformed bodies.
*/
func TestDecodeJSON(t *testing.T) {
	var payload struct {
		Rating int `json:"rating"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":4}`))
	require.NoError(t, requestutil.DecodeJSON(httptest.NewRecorder(), req, &payload))
	assert.Equal(t, 4, payload.Rating)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"rating":`))
	assert.Error(t, requestutil.DecodeJSON(httptest.NewRecorder(), req, &payload))
}

/*
TestRequiredSession distinguishes anonymous and authenticated requests.
*/
func TestRequiredSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredSession(req)
	assert.True(t, apperr.HasStatus(err, http.StatusUnauthorized))
	assert.Nil(t, requestutil.Session(req))

	req = req.WithContext(ctxutil.WithSession(req.Context(), &sec.SessionClaims{UserID: 9}))
	claims, err := requestutil.RequiredSession(req)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
}
