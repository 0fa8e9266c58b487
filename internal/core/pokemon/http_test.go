// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/core/pokemon"
	"github.com/taibuivan/pokedex/internal/platform/ctxutil"
	"github.com/taibuivan/pokedex/internal/platform/sec"
)

func newRouter(svc *pokemon.Service, userID int64) http.Handler {
	router := chi.NewRouter()
	if userID != 0 {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := ctxutil.WithSession(r.Context(), &sec.SessionClaims{UserID: userID})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
	}
	router.Mount("/api/pokemon", pokemon.NewHandler(svc).Routes())
	return router
}

const createBody = `{"name":"Pikachu","type":"Electric","region":"Kanto","category":"Mouse","description":"Cheeks."}`

/*
TestHandler_CreatePokemon covers auth, validation and success.
*/
func TestHandler_CreatePokemon(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		body       string
		wantStatus int
	}{
		{"anonymous", 0, createBody, http.StatusUnauthorized},
		{"missing_fields", 1, `{"name":"Pikachu"}`, http.StatusBadRequest},
		{"malformed", 1, `{"name":`, http.StatusBadRequest},
		{"created", 1, createBody, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(newService(newMemoryRepo(), reviewSource{}), tt.userID)

			req := httptest.NewRequest(http.MethodPost, "/api/pokemon/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

/*
TestHandler_ListPokemon is public and always embeds child arrays.
*/
func TestHandler_ListPokemon(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, reviewSource{})
	in := validInput()
	in.ImageURL = ""
	_, err := svc.Create(t.Context(), 1, in)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/", nil)
	rec := httptest.NewRecorder()
	newRouter(svc, 0).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, extractField(t, rec.Body.Bytes(), "images"))
	assert.JSONEq(t, `[]`, extractField(t, rec.Body.Bytes(), "reviews"))
}

/*
TestHandler_GetPokemon_BadID answers 404 for non-numeric ids.
*/
func TestHandler_GetPokemon_BadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/pokemon/abc", nil)
	rec := httptest.NewRecorder()
	newRouter(newService(newMemoryRepo(), reviewSource{}), 0).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

/*
TestHandler_DeletePokemon returns the confirmation message to the owner.
*/
func TestHandler_DeletePokemon(t *testing.T) {
	svc := newService(newMemoryRepo(), reviewSource{})
	created, err := svc.Create(t.Context(), 1, validInput())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/api/pokemon/1", nil)
	rec := httptest.NewRecorder()
	newRouter(svc, 2).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	newRouter(svc, 1).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"message":"Pokemon deleted successfully"}}`, rec.Body.String())
	assert.Equal(t, int64(1), created.ID)
}

// extractField returns the raw JSON of a field from the first listed entry.
func extractField(t *testing.T, body []byte, field string) string {
	t.Helper()
	var envelope struct {
		Data []map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotEmpty(t, envelope.Data)
	return string(envelope.Data[0][field])
}
