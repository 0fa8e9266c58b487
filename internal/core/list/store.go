// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import "context"

// Repository defines persistence for lists and their entries.
type Repository interface {
	List(ctx context.Context) ([]*List, error)
	FindByID(ctx context.Context, id int64) (*List, error)
	Create(ctx context.Context, list *List) error
	Update(ctx context.Context, list *List) error
	Delete(ctx context.Context, id int64) error

	// PokemonIDs returns the entries of each list in insertion order.
	PokemonIDs(ctx context.Context, listIDs []int64) (map[int64][]int64, error)
	PokemonExists(ctx context.Context, pokemonID int64) (bool, error)

	// AddPokemon reports false when the entry already existed.
	AddPokemon(ctx context.Context, listID, pokemonID int64) (bool, error)
	// RemovePokemon reports false when there was no such entry.
	RemovePokemon(ctx context.Context, listID, pokemonID int64) (bool, error)
}
