// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package image

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
)

const resourceName = "Image"

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository wraps a pool (or pgxmock) as an image store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s`,
	schema.Images.ID, schema.Images.URL, schema.Images.UserID, schema.Images.PokemonID, schema.Images.CreatedAt)

func scanImage(row pgx.Row, image *Image) error {
	return row.Scan(&image.ID, &image.URL, &image.UserID, &image.PokemonID, &image.CreatedAt)
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Image, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.Images.Table, schema.Images.ID)

	image := &Image{}
	if err := scanImage(repository.db.QueryRow(ctx, query, id), image); err != nil {
		return nil, dberr.Wrap(err, resourceName, "image_find_by_id")
	}
	return image, nil
}

func (repository *PostgresRepository) ListByPokemon(ctx context.Context, pokemonID int64) ([]Image, error) {
	grouped, err := repository.ListByPokemonIDs(ctx, []int64{pokemonID})
	if err != nil {
		return nil, err
	}
	images := grouped[pokemonID]
	if images == nil {
		images = make([]Image, 0)
	}
	return images, nil
}

func (repository *PostgresRepository) ListByPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Image, error) {
	grouped := make(map[int64][]Image, len(pokemonIDs))
	if len(pokemonIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		selectColumns, schema.Images.Table, schema.Images.PokemonID, schema.Images.ID)

	rows, err := repository.db.Query(ctx, query, pokemonIDs)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "image_list_by_pokemon_ids")
	}
	defer rows.Close()

	for rows.Next() {
		var image Image
		if err := scanImage(rows, &image); err != nil {
			return nil, dberr.Wrap(err, resourceName, "image_scan")
		}
		grouped[image.PokemonID] = append(grouped[image.PokemonID], image)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "image_rows")
	}
	return grouped, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, image *Image) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s, %s`,
		schema.Images.Table, schema.Images.URL, schema.Images.UserID, schema.Images.PokemonID,
		schema.Images.ID, schema.Images.CreatedAt)

	err := repository.db.QueryRow(ctx, query, image.URL, image.UserID, image.PokemonID).
		Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceName, "image_create")
	}
	return nil
}

func (repository *PostgresRepository) UpdateURL(ctx context.Context, id int64, url string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, schema.Images.Table, schema.Images.URL, schema.Images.ID)

	tag, err := repository.db.Exec(ctx, query, id, url)
	if err != nil {
		return dberr.Wrap(err, resourceName, "image_update")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "image_update")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Images.Table, schema.Images.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "image_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "image_delete")
	}
	return nil
}

func (repository *PostgresRepository) PokemonExists(ctx context.Context, pokemonID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, schema.Pokemon.Table, schema.Pokemon.ID)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, pokemonID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Pokemon", "image_pokemon_exists")
	}
	return exists, nil
}
