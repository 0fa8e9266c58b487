// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
)

// Service holds list business rules: ownership and entry uniqueness.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every list with its entries.
func (service *Service) List(ctx context.Context) ([]*List, error) {
	lists, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := service.attachEntries(ctx, lists...); err != nil {
		return nil, err
	}
	return lists, nil
}

func (service *Service) Get(ctx context.Context, id int64) (*List, error) {
	list, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := service.attachEntries(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (service *Service) Create(ctx context.Context, ownerID int64, in Input) (*List, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	list := &List{Name: in.Name, Description: in.Description, UserID: ownerID, PokemonIDs: make([]int64, 0)}
	if err := service.repo.Create(ctx, list); err != nil {
		return nil, err
	}

	service.logger.Info("list_created", slog.Int64("list_id", list.ID), slog.Int64("user_id", ownerID))
	return list, nil
}

func (service *Service) Update(ctx context.Context, callerID, id int64, in Input) (*List, error) {
	list, err := service.ownedList(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	list.Name = in.Name
	list.Description = in.Description
	if err := service.repo.Update(ctx, list); err != nil {
		return nil, err
	}
	if err := service.attachEntries(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (service *Service) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := service.ownedList(ctx, callerID, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("list_deleted", slog.Int64("list_id", id))
	return nil
}

/*
AddPokemon appends pokemonID to a list owned by callerID.

Returns:
  - error: 404 for an unknown list or Pokémon, 403 for a foreign list,
    400 "Pokemon already in list" for a duplicate entry
*/
func (service *Service) AddPokemon(ctx context.Context, callerID, listID, pokemonID int64) error {
	if _, err := service.ownedList(ctx, callerID, listID); err != nil {
		return err
	}

	exists, err := service.repo.PokemonExists(ctx, pokemonID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Pokemon")
	}

	added, err := service.repo.AddPokemon(ctx, listID, pokemonID)
	if err != nil {
		return err
	}
	if !added {
		return apperr.BadRequest(constants.MsgAlreadyInList)
	}
	return nil
}

// RemovePokemon drops pokemonID from a list owned by callerID.
func (service *Service) RemovePokemon(ctx context.Context, callerID, listID, pokemonID int64) error {
	if _, err := service.ownedList(ctx, callerID, listID); err != nil {
		return err
	}

	removed, err := service.repo.RemovePokemon(ctx, listID, pokemonID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("List entry")
	}
	return nil
}

func (service *Service) ownedList(ctx context.Context, callerID, id int64) (*List, error) {
	list, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list.UserID != callerID {
		return nil, apperr.Forbidden(constants.MsgNotOwner)
	}
	return list, nil
}

func (service *Service) attachEntries(ctx context.Context, lists ...*List) error {
	if len(lists) == 0 {
		return nil
	}
	ids := make([]int64, len(lists))
	for i, list := range lists {
		ids[i] = list.ID
	}

	entries, err := service.repo.PokemonIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, list := range lists {
		list.PokemonIDs = entries[list.ID]
		if list.PokemonIDs == nil {
			list.PokemonIDs = make([]int64, 0)
		}
	}
	return nil
}
