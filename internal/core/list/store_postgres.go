// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package list

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
)

const resourceName = "List"

// PostgresRepository implements [Repository] on PostgreSQL.
type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, COALESCE(%s, ''), %s, %s, %s`,
	schema.Lists.ID, schema.Lists.Name, schema.Lists.Description,
	schema.Lists.UserID, schema.Lists.CreatedAt, schema.Lists.UpdatedAt,
)

func scanList(row pgx.Row, list *List) error {
	return row.Scan(&list.ID, &list.Name, &list.Description, &list.UserID, &list.CreatedAt, &list.UpdatedAt)
}

func (repository *PostgresRepository) List(ctx context.Context) ([]*List, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, selectColumns, schema.Lists.Table, schema.Lists.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_list")
	}
	defer rows.Close()

	lists := make([]*List, 0)
	for rows.Next() {
		list := &List{}
		if err := scanList(rows, list); err != nil {
			return nil, dberr.Wrap(err, resourceName, "list_scan")
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_rows")
	}
	return lists, nil
}

func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*List, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, selectColumns, schema.Lists.Table, schema.Lists.ID)

	list := &List{}
	if err := scanList(repository.db.QueryRow(ctx, query, id), list); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_find_by_id")
	}
	return list, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, list *List) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, NULLIF($2, ''), $3) RETURNING %s, %s, %s`,
		schema.Lists.Table, schema.Lists.Name, schema.Lists.Description, schema.Lists.UserID,
		schema.Lists.ID, schema.Lists.CreatedAt, schema.Lists.UpdatedAt)

	err := repository.db.QueryRow(ctx, query, list.Name, list.Description, list.UserID).
		Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, resourceName, "list_create")
	}
	return nil
}

func (repository *PostgresRepository) Update(ctx context.Context, list *List) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NULLIF($3, ''), %s = now() WHERE %s = $1 RETURNING %s`,
		schema.Lists.Table, schema.Lists.Name, schema.Lists.Description, schema.Lists.UpdatedAt,
		schema.Lists.ID, schema.Lists.UpdatedAt)

	if err := repository.db.QueryRow(ctx, query, list.ID, list.Name, list.Description).Scan(&list.UpdatedAt); err != nil {
		return dberr.Wrap(err, resourceName, "list_update")
	}
	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Lists.Table, schema.Lists.ID)

	tag, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceName, "list_delete")
	}
	if tag.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "list_delete")
	}
	return nil
}

// # Entries

func (repository *PostgresRepository) PokemonIDs(ctx context.Context, listIDs []int64) (map[int64][]int64, error) {
	grouped := make(map[int64][]int64, len(listIDs))
	if len(listIDs) == 0 {
		return grouped, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC, %s ASC`,
		schema.ListPokemon.ListID, schema.ListPokemon.PokemonID, schema.ListPokemon.Table,
		schema.ListPokemon.ListID, schema.ListPokemon.AddedAt, schema.ListPokemon.PokemonID)

	rows, err := repository.db.Query(ctx, query, listIDs)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_entries")
	}
	defer rows.Close()

	for rows.Next() {
		var listID, pokemonID int64
		if err := rows.Scan(&listID, &pokemonID); err != nil {
			return nil, dberr.Wrap(err, resourceName, "list_entries_scan")
		}
		grouped[listID] = append(grouped[listID], pokemonID)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_entries_rows")
	}
	return grouped, nil
}

func (repository *PostgresRepository) PokemonExists(ctx context.Context, pokemonID int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`, schema.Pokemon.Table, schema.Pokemon.ID)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, pokemonID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Pokemon", "list_pokemon_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) AddPokemon(ctx context.Context, listID, pokemonID int64) (bool, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.ListPokemon.Table, schema.ListPokemon.ListID, schema.ListPokemon.PokemonID)

	tag, err := repository.db.Exec(ctx, query, listID, pokemonID)
	if err != nil {
		return false, dberr.Wrap(err, resourceName, "list_add_pokemon")
	}
	return tag.RowsAffected() == 1, nil
}

func (repository *PostgresRepository) RemovePokemon(ctx context.Context, listID, pokemonID int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ListPokemon.Table, schema.ListPokemon.ListID, schema.ListPokemon.PokemonID)

	tag, err := repository.db.Exec(ctx, query, listID, pokemonID)
	if err != nil {
		return false, dberr.Wrap(err, resourceName, "list_remove_pokemon")
	}
	return tag.RowsAffected() == 1, nil
}
