// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokedex/internal/platform/middleware"
	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/pokemon.
//
// # Routing Strategy
//
//   - Discovery (Public): list and detail.
//   - Management (Session): create for any user, edit and delete for the owner.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPokemon)
	router.Get("/{id}", handler.getPokemon)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/", handler.createPokemon)
		authed.Patch("/{id}", handler.updatePokemon)
		authed.Delete("/{id}", handler.deletePokemon)
	})

	return router
}

/*
GET /api/pokemon/.

Response:
  - 200: []Pokemon (images and reviews embedded)
*/
func (handler *Handler) listPokemon(writer http.ResponseWriter, request *http.Request) {
	entries, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

/*
GET /api/pokemon/{id}.

Response:
  - 200: Pokemon
  - 404: unknown id
*/
func (handler *Handler) getPokemon(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

/*
POST /api/pokemon/.

Request:
  - name, type, region, category, description: string (required)
  - type_secondary, image_url: string (optional)

Response:
  - 201: Pokemon
  - 400: validation errors keyed by field
  - 401: no session
*/
func (handler *Handler) createPokemon(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var in Input
	if err := requestutil.DecodeJSON(writer, request, &in); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Create(request.Context(), session.UserID, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, entry)
}

/*
PATCH /api/pokemon/{id}.

Response:
  - 200: Pokemon
  - 403: caller is not the owner
*/
func (handler *Handler) updatePokemon(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var in Input
	if err := requestutil.DecodeJSON(writer, request, &in); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.Update(request.Context(), session.UserID, id, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entry)
}

/*
DELETE /api/pokemon/{id}.

Response:
  - 200: {"message": "Pokemon deleted successfully"}
  - 403: caller is not the owner
*/
func (handler *Handler) deletePokemon(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), session.UserID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer, "Pokemon deleted successfully")
}
