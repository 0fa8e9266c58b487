// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pokedex/internal/platform/middleware"
	requestutil "github.com/taibuivan/pokedex/internal/platform/request"
	"github.com/taibuivan/pokedex/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/images.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/pokemon/{pokemonId}", handler.listForPokemon)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/pokemon/{pokemonId}", handler.addImage)
		authed.Patch("/{id}", handler.updateImage)
		authed.Delete("/{id}", handler.deleteImage)
	})

	return router
}

func (handler *Handler) listForPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.ID(request, "pokemonId", "Pokemon")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	images, err := handler.service.ListForPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, images)
}

func (handler *Handler) addImage(writer http.ResponseWriter, request *http.Request) {
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

	image, err := handler.service.Add(request.Context(), session.UserID, pokemonID, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, image)
}

func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
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

	image, err := handler.service.Update(request.Context(), session.UserID, id, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, image)
}

func (handler *Handler) deleteImage(writer http.ResponseWriter, request *http.Request) {
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
	respond.Deleted(writer, "Image deleted successfully")
}
