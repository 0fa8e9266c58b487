// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
)

const resourceName = "Review"

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository wraps a pool (or pgxmock) as a review store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, COALESCE(%s, ''), COALESCE(%s, ''), %s, %s, %s, %s`,
	schema.Reviews.ID, schema.Reviews.Rating, schema.Reviews.Title, schema.Reviews.Body,
	schema.Reviews.UserID, schema.Reviews.PokemonID, schema.Reviews.CreatedAt, schema.Reviews.UpdatedAt,
)

func scanReview(row pgx.Row, review *Review) error {
	return row.Scan(
		&review.ID, &review.Rating, &review.Title, &review.Body,
		&review.UserID, &review.PokemonID, &review.CreatedAt, &review.UpdatedAt,
	)
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.Reviews.Table, schema.Reviews.ID)

	review := &Review{}
	if err := scanReview(repository.db.QueryRow(ctx, query, id), review); err != nil {
		return nil, dberr.Wrap(err, resourceName, "review_find_by_id")
	}
	return review, nil
}

func (repository *PostgresRepository) ListByPokemon(ctx context.Context, pokemonID int64) ([]Review, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		selectColumns, schema.Reviews.Table, schema.Reviews.PokemonID, schema.Reviews.ID)

	rows, err := repository.db.Query(ctx, query, pokemonID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "review_list_by_pokemon")
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var review Review
		if err := scanReview(rows, &review); err != nil {
			return nil, dberr.Wrap(err, resourceName, "review_scan")
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "review_rows")
	}
	return reviews, nil
}

func (repository *PostgresRepository) ListByPokemonIDs(ctx context.Context, pokemonIDs []int64) (map[int64][]Review, error) {
	grouped := make(map[int64][]Review, len(pokemonIDs))
	if len(pokemonIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC`,
		selectColumns, schema.Reviews.Table, schema.Reviews.PokemonID, schema.Reviews.ID)

	rows, err := repository.db.Query(ctx, query, pokemonIDs)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "review_list_by_pokemon_ids")
	}
	defer rows.Close()

	for rows.Next() {
		var review Review
		if err := scanReview(rows, &review); err != nil {
			return nil, dberr.Wrap(err, resourceName, "review_scan")
		}
		grouped[review.PokemonID] = append(grouped[review.PokemonID], review)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "review_rows")
	}
	return grouped, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
		RETURNING %s, %s, %s`,
		schema.Reviews.Table,
		schema.Reviews.Rating, schema.Reviews.Title, schema.Reviews.Body, schema.Reviews.UserID, schema.Reviews.PokemonID,
		schema.Reviews.ID, schema.Reviews.CreatedAt, schema.Reviews.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		review.Rating, review.Title, review.Body, review.UserID, review.PokemonID,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceName, "review_create")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, review *Review) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NULLIF($3, ''), %s = NULLIF($4, ''), %s = now()
		WHERE %s = $1
		RETURNING %s`,
		schema.Reviews.Table,
		schema.Reviews.Rating, schema.Reviews.Title, schema.Reviews.Body, schema.Reviews.UpdatedAt,
		schema.Reviews.ID,
		schema.Reviews.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, review.ID, review.Rating, review.Title, review.Body).
		Scan(&review.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceName, "review_update")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Reviews.Table, schema.Reviews.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "review_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "review_delete")
	}
	return nil
}

func (repository *PostgresRepository) PokemonExists(ctx context.Context, pokemonID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.Pokemon.Table, schema.Pokemon.ID)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, pokemonID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Pokemon", "review_pokemon_exists")
	}
	return exists, nil
}
