// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
)

const resourceName = "Pokemon"

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository wraps a pool (or pgxmock) as a catalog store.
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, %s, COALESCE(%s, ''), %s, %s, %s, COALESCE(%s, 0), %s, %s`,
	schema.Pokemon.ID, schema.Pokemon.Name, schema.Pokemon.Type, schema.Pokemon.TypeSecondary,
	schema.Pokemon.Region, schema.Pokemon.Category, schema.Pokemon.Description,
	schema.Pokemon.UserID, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
)

func scanPokemon(row pgx.Row, p *Pokemon) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Type, &p.TypeSecondary,
		&p.Region, &p.Category, &p.Description,
		&p.UserID, &p.CreatedAt, &p.UpdatedAt,
	)
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*Pokemon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.Pokemon.Table, schema.Pokemon.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "pokemon_list")
	}
	defer rows.Close()

	entries := make([]*Pokemon, 0)
	for rows.Next() {
		p := &Pokemon{}
		if err := scanPokemon(rows, p); err != nil {
			return nil, dberr.Wrap(err, resourceName, "pokemon_scan")
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "pokemon_rows")
	}
	return entries, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Pokemon, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.Pokemon.Table, schema.Pokemon.ID)

	p := &Pokemon{}
	if err := scanPokemon(repository.db.QueryRow(ctx, query, id), p); err != nil {
		return nil, dberr.Wrap(err, resourceName, "pokemon_find_by_id")
	}
	return p, nil
}

/*
Create inserts the entry and, when imageURL is set, its first image.

Both rows are written in one transaction; a failed image insert leaves no
orphan entry behind.
*/
func (repository *PostgresRepository) Create(ctx context.Context, p *Pokemon, imageURL string) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING %s, %s, %s`,
		schema.Pokemon.Table,
		schema.Pokemon.Name, schema.Pokemon.Type, schema.Pokemon.TypeSecondary,
		schema.Pokemon.Region, schema.Pokemon.Category, schema.Pokemon.Description, schema.Pokemon.UserID,
		schema.Pokemon.ID, schema.Pokemon.CreatedAt, schema.Pokemon.UpdatedAt,
	)

	return postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			p.Name, p.Type, p.TypeSecondary, p.Region, p.Category, p.Description, p.UserID,
		).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceName, "pokemon_create")
		}

		if imageURL == "" {
			return nil
		}
		return insertImage(ctx, tx, p.ID, p.UserID, imageURL)
	})
}

/*
Update rewrites the entry's fields and reconciles its first image.

Image rules:
  - imageURL empty: images untouched.
  - no image yet: insert one.
  - first image differs: replace its URL.
*/
func (repository *PostgresRepository) Update(ctx context.Context, p *Pokemon, imageURL string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = NULLIF($4, ''), %s = $5, %s = $6, %s = $7, %s = now()
		WHERE %s = $1
		RETURNING %s`,
		schema.Pokemon.Table,
		schema.Pokemon.Name, schema.Pokemon.Type, schema.Pokemon.TypeSecondary,
		schema.Pokemon.Region, schema.Pokemon.Category, schema.Pokemon.Description, schema.Pokemon.UpdatedAt,
		schema.Pokemon.ID,
		schema.Pokemon.UpdatedAt,
	)

	return postgres.WithTx(ctx, repository.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			p.ID, p.Name, p.Type, p.TypeSecondary, p.Region, p.Category, p.Description,
		).Scan(&p.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceName, "pokemon_update")
		}

		if imageURL == "" {
			return nil
		}
		return replaceFirstImage(ctx, tx, p, imageURL)
	})
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Pokemon.Table, schema.Pokemon.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "pokemon_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "pokemon_delete")
	}
	return nil
}

// # Image Helpers

func insertImage(ctx context.Context, tx pgx.Tx, pokemonID, userID int64, url string) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.Images.Table, schema.Images.URL, schema.Images.UserID, schema.Images.PokemonID)

	if _, err := tx.Exec(ctx, query, url, userID, pokemonID); err != nil {
		return dberr.Wrap(err, "Image", "pokemon_insert_image")
	}
	return nil
}

func replaceFirstImage(ctx context.Context, tx pgx.Tx, p *Pokemon, url string) error {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC LIMIT 1`,
		schema.Images.ID, schema.Images.URL, schema.Images.Table, schema.Images.PokemonID, schema.Images.ID)

	var (
		imageID    int64
		currentURL string
	)
	err := tx.QueryRow(ctx, query, p.ID).Scan(&imageID, &currentURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return insertImage(ctx, tx, p.ID, p.UserID, url)
	}
	if err != nil {
		return dberr.Wrap(err, "Image", "pokemon_first_image")
	}
	if currentURL == url {
		return nil
	}

	update := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Images.Table, schema.Images.URL, schema.Images.ID)
	if _, err := tx.Exec(ctx, update, imageID, url); err != nil {
		return dberr.Wrap(err, "Image", "pokemon_replace_image")
	}
	return nil
}
