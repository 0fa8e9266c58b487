// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import "context"

// Repository defines persistence for reviews.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Review, error)
	ListByPokemon(ctx context.Context, pokemonID int64) ([]Review, error)

	// ListByPokemonIDs groups the reviews of many Pokémon in one round trip.
	ListByPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Review, error)

	Create(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id int64) error

	PokemonExists(ctx context.Context, pokemonID int64) (bool, error)
}
