// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/api"
	"github.com/taibuivan/pokedex/internal/core/image"
	"github.com/taibuivan/pokedex/internal/core/list"
	"github.com/taibuivan/pokedex/internal/core/pokemon"
	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/config"
	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/sec"
	"github.com/taibuivan/pokedex/internal/users/auth"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testServer struct {
	handler http.Handler
	mock    pgxmock.PgxPoolIface
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	redisServer := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	tokens, err := sec.NewTokenService("server-test-secret-0123456789", constants.SessionIssuer)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "test", RateLimitRPS: 1000, RateLimitBurst: 1000}

	reviewService := review.NewService(review.NewPostgresRepository(mock), logger)
	imageService := image.NewService(image.NewPostgresRepository(mock), logger)
	pokemonService := pokemon.NewService(pokemon.NewPostgresRepository(mock), reviewService, imageService, logger)
	authService := auth.NewService(auth.NewUserRepository(mock), auth.NewSessionRepository(rdb), tokens, time.Hour, logger)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache:    func(context.Context) error { return errors.New("connection refused") },
	}, logger)

	server := api.NewServer(context.Background(), cfg, logger, api.Security{
		Sessions:   authService,
		CSRFSecret: tokens.Secret(),
	}, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, false),
		Pokemon:   pokemon.NewHandler(pokemonService),
		Reviews:   review.NewHandler(reviewService),
		Images:    image.NewHandler(imageService),
		Lists:     list.NewHandler(list.NewService(list.NewPostgresRepository(mock), logger)),
	})

	return testServer{handler: server.Handler(), mock: mock}
}

// browser carries cookies between requests like a real client would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func (b *browser) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	if csrf, ok := b.cookies[constants.CSRFCookieName]; ok {
		req.Header.Set(constants.CSRFHeaderName, csrf.Value)
	}

	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	for _, cookie := range rec.Result().Cookies() {
		b.cookies[cookie.Name] = cookie
	}
	return rec
}

/*
TestServer_Health answers with the app name and issues a CSRF cookie.
*/
func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constants.AppName)
	assert.NotEmpty(t, rec.Header().Get(constants.HeaderXRequestID))

	var issued bool
	for _, cookie := range rec.Result().Cookies() {
		issued = issued || cookie.Name == constants.CSRFCookieName
	}
	assert.True(t, issued)
}

/*
TestServer_Ready reports degraded when a dependency fails.
*/
func TestServer_Ready(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded"`)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

/*
TestServer_Metrics exposes the Prometheus registry.
*/
func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	srv.handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pokedex_http_requests_total")
}

/*
TestServer_MutationGuards rejects missing CSRF before missing sessions.
*/
func TestServer_MutationGuards(t *testing.T) {
	srv := newTestServer(t)
	body := `{"name":"Mew"}`

	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pokemon/", strings.NewReader(body)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "CSRF_FAILED")

	b := &browser{t: t, handler: srv.handler, cookies: map[string]*http.Cookie{}}
	b.do(http.MethodGet, "/api/auth/csrf", "")
	rec = b.do(http.MethodPost, "/api/pokemon/", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

/*
TestServer_SignupThenCreate walks the full session and CSRF flow.
*/
func TestServer_SignupThenCreate(t *testing.T) {
	srv := newTestServer(t)
	b := &browser{t: t, handler: srv.handler, cookies: map[string]*http.Cookie{}}

	srv.mock.ExpectQuery("INSERT INTO users").
		WithArgs("brock", "brock@pewter.gym", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), fixedTime))

	srv.mock.ExpectBegin()
	srv.mock.ExpectQuery("INSERT INTO pokemon").
		WithArgs("Onix", "Rock", "Ground", "Kanto", "Rock Snake", "A giant stone serpent.", int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(95), fixedTime, fixedTime))
	srv.mock.ExpectCommit()
	srv.mock.ExpectQuery("SELECT .+ FROM pokemon WHERE id").
		WithArgs(int64(95)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "type_secondary", "region", "category", "description", "user_id", "created_at", "updated_at"}).
			AddRow(int64(95), "Onix", "Rock", "Ground", "Kanto", "Rock Snake", "A giant stone serpent.", int64(3), fixedTime, fixedTime))
	srv.mock.ExpectQuery("SELECT .+ FROM reviews WHERE pokemon_id = ANY").
		WithArgs([]int64{95}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "rating", "title", "body", "user_id", "pokemon_id", "created_at", "updated_at"}))
	srv.mock.ExpectQuery("SELECT .+ FROM images WHERE pokemon_id = ANY").
		WithArgs([]int64{95}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "url", "user_id", "pokemon_id", "created_at"}))

	b.do(http.MethodGet, "/api/auth/csrf", "")
	rec := b.do(http.MethodPost, "/api/auth/signup", `{"username":"brock","email":"brock@pewter.gym","password":"onix-rocks"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = b.do(http.MethodPost, "/api/pokemon/",
		`{"name":"Onix","type":"rock","type_secondary":"ground","region":"Kanto","category":"Rock Snake","description":"A giant stone serpent."}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"user_id":3`)
	assert.Contains(t, rec.Body.String(), `"reviews":[]`)

	assert.NoError(t, srv.mock.ExpectationsWereMet())
}
