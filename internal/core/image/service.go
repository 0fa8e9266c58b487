// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/validate"
)

// Service manages image links. Any signed-in user may add an image to any
// Pokémon; only the uploader may change or remove it.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListForPokemon(ctx context.Context, pokemonID int64) ([]Image, error) {
	return service.repo.ListByPokemon(ctx, pokemonID)
}

func (service *Service) ListForPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Image, error) {
	return service.repo.ListByPokemonIDs(ctx, pokemonIDs)
}

func (service *Service) Add(ctx context.Context, callerID, pokemonID int64, in Input) (*Image, error) {
	url := strings.TrimSpace(in.URL)
	if err := ValidateURL(&validate.Validator{}, FieldURL, url).Err(); err != nil {
		return nil, err
	}

	exists, err := service.repo.PokemonExists(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Pokemon")
	}

	image := &Image{URL: url, UserID: callerID, PokemonID: pokemonID}
	if err := service.repo.Create(ctx, image); err != nil {
		return nil, err
	}

	service.logger.Info("image_added", slog.Int64("image_id", image.ID), slog.Int64("pokemon_id", pokemonID))
	return image, nil
}

func (service *Service) Update(ctx context.Context, callerID, id int64, in Input) (*Image, error) {
	image, err := service.ownedImage(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	url := strings.TrimSpace(in.URL)
	if err := ValidateURL(&validate.Validator{}, FieldURL, url).Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateURL(ctx, id, url); err != nil {
		return nil, err
	}
	image.URL = url
	return image, nil
}

func (service *Service) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := service.ownedImage(ctx, callerID, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("image_deleted", slog.Int64("image_id", id))
	return nil
}

func (service *Service) ownedImage(ctx context.Context, callerID, id int64) (*Image, error) {
	image, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if image.UserID != callerID {
		return nil, apperr.Forbidden(constants.MsgNotOwner)
	}
	return image, nil
}
