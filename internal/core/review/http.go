// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokedex/internal/platform/middleware"
	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/respond"
)

// Handler exposes reviews over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a review [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/reviews.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/pokemon/{pokemonId}/reviews", handler.listForPokemon)
	router.Get("/{id}", handler.getReview)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/pokemon/{pokemonId}/reviews", handler.createReview)
		authed.Patch("/{id}", handler.updateReview)
		authed.Delete("/{id}", handler.deleteReview)
	})

	return router
}

/*
GET /api/reviews/pokemon/{pokemonId}/reviews.

Response:
  - 200: []Review
*/
func (handler *Handler) listForPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.ID(request, "pokemonId", "Pokemon")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListForPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

/*
POST /api/reviews/pokemon/{pokemonId}/reviews.

Request:
  - rating: int (1..5)
  - title: string (optional, max 255)
  - body: string (optional, max 1000)

Response:
  - 201: Review
  - 400: validation errors
  - 404: unknown Pokémon
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pokemonID, err := requestutil.ID(request, "pokemonId", "Pokemon")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var in Input
	if err := requestutil.DecodeJSON(writer, request, &in); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.Create(request.Context(), session.UserID, pokemonID, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, review)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
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

	review, err := handler.service.Update(request.Context(), session.UserID, id, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
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
	respond.Deleted(writer, "Review deleted successfully")
}
