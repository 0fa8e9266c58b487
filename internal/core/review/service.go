// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
)

// # Service Layer

// Service enforces review validation and author-only mutation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new review [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListForPokemon returns the reviews of one Pokémon, oldest first.
// An unknown Pokémon simply has no reviews.
func (service *Service) ListForPokemon(ctx context.Context, pokemonID int64) ([]Review, error) {
	return service.repo.ListByPokemon(ctx, pokemonID)
}

// ListForPokemonIDs groups reviews by Pokémon for catalog hydration.
func (service *Service) ListForPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Review, error) {
	return service.repo.ListByPokemonIDs(ctx, pokemonIDs)
}

// Get returns a single review.
func (service *Service) Get(ctx context.Context, id int64) (*Review, error) {
	return service.repo.FindByID(ctx, id)
}

/*
Create stores a new review written by authorID about pokemonID.

Returns:
  - *Review: The persisted review with id and timestamps
  - error: VALIDATION_ERROR, NOT_FOUND when the Pokémon does not exist
*/
func (service *Service) Create(ctx context.Context, authorID, pokemonID int64, in Input) (*Review, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := service.repo.PokemonExists(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Pokemon")
	}

	review := &Review{
		Rating:    in.Rating,
		Title:     in.Title,
		Body:      in.Body,
		UserID:    authorID,
		PokemonID: pokemonID,
	}
	if err := service.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_created",
		slog.Int64("review_id", review.ID),
		slog.Int64("pokemon_id", pokemonID),
		slog.Int64("user_id", authorID),
	)
	return review, nil
}

// Update replaces the rating and text of a review owned by callerID.
func (service *Service) Update(ctx context.Context, callerID, id int64, in Input) (*Review, error) {
	review, err := service.ownedReview(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.Title = in.Title
	review.Body = in.Body
	if err := service.repo.Update(ctx, review); err != nil {
		return nil, err
	}

	service.logger.Info("review_updated", slog.Int64("review_id", id))
	return review, nil
}

// Delete removes a review owned by callerID.
func (service *Service) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := service.ownedReview(ctx, callerID, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("review_deleted", slog.Int64("review_id", id))
	return nil
}

func (service *Service) ownedReview(ctx context.Context, callerID, id int64) (*Review, error) {
	review, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != callerID {
		return nil, apperr.Forbidden(constants.MsgNotOwner)
	}
	return review, nil
}
