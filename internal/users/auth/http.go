// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokedex/internal/platform/ctxutil"
	"github.com/taibuivan/pokedex/internal/platform/middleware"
	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler]. secureCookies marks the session
// cookie Secure and should be true outside local development.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication routes.
//
// # Endpoints
//   - GET  /       : current session user, or null.
//   - GET  /csrf   : CSRF token bootstrap.
//   - POST /signup : creates an account and logs in.
//   - POST /login  : opens a session.
//   - POST /logout : closes the session.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.authenticate)
	router.Get("/csrf", handler.csrf)
	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

/*
GET /api/auth/.

Response:
  - 200: User, or {"data": null} when anonymous
*/
func (handler *Handler) authenticate(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.authService.CurrentUser(request.Context(), requestutil.Session(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if user == nil {
		respond.OK(writer, nil)
		return
	}
	respond.OK(writer, user)
}

// GET /api/auth/csrf returns the token the CSRF middleware issued or accepted.
func (handler *Handler) csrf(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{FieldCSRFToken: ctxutil.GetCSRFToken(request.Context())})
}

/*
POST /api/auth/signup.

Response:
  - 201: User (session cookie set)
  - 400: validation errors
  - 409: username or email taken
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input SignupInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Signup(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSession(writer, session)
	respond.Created(writer, session.User)
}

/*
POST /api/auth/login.

Request:
  - credential: email or username
  - password: string

Response:
  - 200: User (session cookie set)
  - 401: invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSession(writer, session)
	respond.OK(writer, session.User)
}

// POST /api/auth/logout always clears the cookie, even for anonymous callers.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	if err := handler.authService.Logout(request.Context(), requestutil.Session(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	middleware.ClearSessionCookie(writer)
	respond.OK(writer, respond.Message{Message: "User logged out"})
}

func (handler *Handler) setSession(writer http.ResponseWriter, session *LoginSession) {
	maxAge := int(handler.authService.SessionTTL().Seconds())
	middleware.SetSessionCookie(writer, session.Token, maxAge, handler.secureCookies)
}
