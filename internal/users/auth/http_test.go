// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/middleware"
	"github.com/taibuivan/pokedex/internal/users/auth"
)

func newRouter(svc *auth.Service) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(svc))
	router.Mount("/api/auth", auth.NewHandler(svc, false).Routes())
	return router
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatalf("no %s cookie in response", constants.SessionCookieName)
	return nil
}

/*
TestHandler_Authenticate_Anonymous returns data null.
*/
func TestHandler_Authenticate_Anonymous(t *testing.T) {
	f := setupService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/", nil)
	rec := httptest.NewRecorder()
	newRouter(f.service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

/*
TestHandler_LoginFlow signs up, resolves the session, then logs out.
*/
func TestHandler_LoginFlow(t *testing.T) {
	f := setupService(t)
	router := newRouter(f.service)

	body := `{"username":"misty","email":"misty@cerulean.gym","password":"starmie"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.NotContains(t, rec.Body.String(), "password")

	req = httptest.NewRequest(http.MethodGet, "/api/auth/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Data auth.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "misty", envelope.Data.Username)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, sessionCookie(t, rec).MaxAge)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.JSONEq(t, `{"data":null}`, rec.Body.String())
}

/*
TestHandler_Login_Invalid returns 401 with the generic message.
*/
func TestHandler_Login_Invalid(t *testing.T) {
	f := setupService(t)
	signupAsh(t, f.service)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"credential":"ash","password":"wrong-one"}`))
	rec := httptest.NewRecorder()
	newRouter(f.service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), auth.MsgInvalidCredentials)
}
