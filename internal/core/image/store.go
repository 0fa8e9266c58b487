// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import "context"

// Repository defines persistence for images.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Image, error)
	ListByPokemon(ctx context.Context, pokemonID int64) ([]Image, error)
	ListByPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Image, error)
	Create(ctx context.Context, image *Image) error
	UpdateURL(ctx context.Context, id int64, url string) error
	Delete(ctx context.Context, id int64) error
	PokemonExists(ctx context.Context, pokemonID int64) (bool, error)
}
