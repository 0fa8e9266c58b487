// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pokedex/internal/core/image"
	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/pkg/slice"
)

// ReviewSource supplies reviews for hydration.
type ReviewSource interface {
	ListForPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]review.Review, error)
}

// ImageSource supplies images for hydration.
type ImageSource interface {
	ListForPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]image.Image, error)
}

// # Service Layer

// Service orchestrates the catalog: validation, ownership and hydration of
// the embedded images and reviews.
type Service struct {
	repo    Repository
	reviews ReviewSource
	images  ImageSource
	logger  *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(repo Repository, reviews ReviewSource, images ImageSource, logger *slog.Logger) *Service {
	return &Service{repo: repo, reviews: reviews, images: images, logger: logger}
}

// # Lookups

// List returns every entry ordered by id, with images and reviews embedded.
func (service *Service) List(ctx context.Context) ([]*Pokemon, error) {
	entries, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := service.hydrate(ctx, entries...); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get returns one entry with images and reviews embedded.
func (service *Service) Get(ctx context.Context, id int64) (*Pokemon, error) {
	entry, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := service.hydrate(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// # Management

/*
Create validates and stores a new entry owned by ownerID.

Parameters:
  - ctx: context.Context
  - ownerID: int64 (session user)
  - in: Input (raw request body)

Returns:
  - *Pokemon: The hydrated entry
  - error: VALIDATION_ERROR or persistence errors
*/
func (service *Service) Create(ctx context.Context, ownerID int64, in Input) (*Pokemon, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	entry := &Pokemon{UserID: ownerID}
	in.apply(entry)

	if err := service.repo.Create(ctx, entry, in.ImageURL); err != nil {
		return nil, err
	}

	service.logger.Info("pokemon_created",
		slog.Int64("pokemon_id", entry.ID),
		slog.String("name", entry.Name),
		slog.Int64("user_id", ownerID),
	)

	return service.Get(ctx, entry.ID)
}

// Update replaces the fields of an entry owned by callerID.
func (service *Service) Update(ctx context.Context, callerID, id int64, in Input) (*Pokemon, error) {
	entry, err := service.ownedEntry(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	in.apply(entry)
	if err := service.repo.Update(ctx, entry, in.ImageURL); err != nil {
		return nil, err
	}

	service.logger.Info("pokemon_updated", slog.Int64("pokemon_id", id))
	return service.Get(ctx, id)
}

// Delete removes an entry owned by callerID together with its reviews,
// images and list memberships.
func (service *Service) Delete(ctx context.Context, callerID, id int64) error {
	if _, err := service.ownedEntry(ctx, callerID, id); err != nil {
		return err
	}
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("pokemon_deleted", slog.Int64("pokemon_id", id), slog.Int64("user_id", callerID))
	return nil
}

func (service *Service) ownedEntry(ctx context.Context, callerID, id int64) (*Pokemon, error) {
	entry, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsOwnedBy(callerID) {
		return nil, apperr.Forbidden(constants.MsgNotOwner)
	}
	return entry, nil
}

// hydrate fills Images and Reviews; both are always non-nil afterwards.
func (service *Service) hydrate(ctx context.Context, entries ...*Pokemon) error {
	if len(entries) == 0 {
		return nil
	}

	ids := slice.Map(entries, func(entry *Pokemon) int64 { return entry.ID })

	reviews, err := service.reviews.ListForPokemonIDs(ctx, ids)
	if err != nil {
		return err
	}
	images, err := service.images.ListForPokemonIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		entry.Reviews = slice.OrEmpty(reviews[entry.ID])
		entry.Images = slice.OrEmpty(images[entry.ID])
	}
	return nil
}
