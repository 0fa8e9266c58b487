// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

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

// Routes returns the router mounted at /api/lists.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listLists)
	router.Get("/{id}", handler.getList)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Post("/", handler.createList)
		authed.Patch("/{id}", handler.updateList)
		authed.Delete("/{id}", handler.deleteList)
		authed.Post("/{id}/pokemon/{pokemonId}", handler.addPokemon)
		authed.Delete("/{id}/pokemon/{pokemonId}", handler.removePokemon)
	})

	return router
}

func (handler *Handler) listLists(writer http.ResponseWriter, request *http.Request) {
	lists, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lists)
}

func (handler *Handler) getList(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	list, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) createList(writer http.ResponseWriter, request *http.Request) {
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

	list, err := handler.service.Create(request.Context(), session.UserID, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, list)
}

func (handler *Handler) updateList(writer http.ResponseWriter, request *http.Request) {
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

	list, err := handler.service.Update(request.Context(), session.UserID, id, in)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, list)
}

func (handler *Handler) deleteList(writer http.ResponseWriter, request *http.Request) {
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
	respond.Deleted(writer, "List deleted successfully")
}

/*
POST /api/lists/{id}/pokemon/{pokemonId}.

Response:
  - 201: {"message": "Pokemon added to list"}
  - 400: already in list
*/
func (handler *Handler) addPokemon(writer http.ResponseWriter, request *http.Request) {
	callerID, listID, pokemonID, err := entryParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddPokemon(request.Context(), callerID, listID, pokemonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, respond.Message{Message: "Pokemon added to list"})
}

func (handler *Handler) removePokemon(writer http.ResponseWriter, request *http.Request) {
	callerID, listID, pokemonID, err := entryParams(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RemovePokemon(request.Context(), callerID, listID, pokemonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Deleted(writer, "Pokemon removed from list")
}

func entryParams(request *http.Request) (userID, listID, pokemonID int64, err error) {
	session, err := requestutil.RequiredSession(request)
	if err != nil {
		return 0, 0, 0, err
	}
	if listID, err = requestutil.ID(request, "id", resourceName); err != nil {
		return 0, 0, 0, err
	}
	if pokemonID, err = requestutil.ID(request, "pokemonId", "Pokemon"); err != nil {
		return 0, 0, 0, err
	}
	return session.UserID, listID, pokemonID, nil
}
