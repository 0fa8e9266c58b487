// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package seed loads the demo catalog into an empty or partially seeded database.

Every step is idempotent: users match by username, Pokémon by name, lists by
owner and name, and child rows are inserted only when an identical row is
missing. The whole run is one transaction.
*/
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
	"github.com/taibuivan/pokedex/internal/platform/sec"
)

// Seeder writes the demo data set.
type Seeder struct {
	db     postgres.DBTX
	logger *slog.Logger
}

func New(db postgres.DBTX, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Run inserts whatever part of the demo data is missing.
func (seeder *Seeder) Run(ctx context.Context) error {
	passwordHash, err := sec.HashPassword(DemoPassword)
	if err != nil {
		return fmt.Errorf("seed: hash demo password: %w", err)
	}

	return postgres.WithTx(ctx, seeder.db, func(tx pgx.Tx) error {
		userIDs := make(map[string]int64, len(users))
		for _, user := range users {
			id, err := upsertUser(ctx, tx, user, passwordHash)
			if err != nil {
				return err
			}
			userIDs[user.Username] = id
		}

		pokemonIDs := make(map[string]int64, len(pokemon))
		for _, entry := range pokemon {
			id, err := upsertPokemon(ctx, tx, entry)
			if err != nil {
				return err
			}
			pokemonIDs[entry.Name] = id
		}

		for _, review := range reviews {
			if err := insertReview(ctx, tx, review, userIDs[review.Username], pokemonIDs[review.Pokemon]); err != nil {
				return err
			}
		}
		for _, image := range images {
			if err := insertImage(ctx, tx, image, userIDs[image.Username], pokemonIDs[image.Pokemon]); err != nil {
				return err
			}
		}
		for _, list := range lists {
			if err := upsertList(ctx, tx, list, userIDs[list.Username], pokemonIDs); err != nil {
				return err
			}
		}

		seeder.logger.Info("seed_completed",
			slog.Int("users", len(users)),
			slog.Int("pokemon", len(pokemon)),
			slog.Int("reviews", len(reviews)),
		)
		return nil
	})
}

// Undo empties every table and restarts identities.
func (seeder *Seeder) Undo(ctx context.Context) error {
	query := fmt.Sprintf(`TRUNCATE TABLE %s, %s, %s, %s, %s, %s RESTART IDENTITY CASCADE`,
		schema.ListPokemon.Table, schema.Lists.Table, schema.Images.Table,
		schema.Reviews.Table, schema.Pokemon.Table, schema.Users.Table)

	if _, err := seeder.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("seed: truncate: %w", err)
	}
	seeder.logger.Info("seed_undone")
	return nil
}

// # Steps

func upsertUser(ctx context.Context, tx pgx.Tx, user userSeed, passwordHash string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)
		ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s`,
		schema.Users.Table, schema.Users.Username, schema.Users.Email, schema.Users.HashedPassword,
		schema.Users.Username, schema.Users.Username, schema.Users.Username,
		schema.Users.ID)

	var id int64
	if err := tx.QueryRow(ctx, query, user.Username, user.Email, passwordHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("seed: user %s: %w", user.Username, err)
	}
	return id, nil
}

func upsertPokemon(ctx context.Context, tx pgx.Tx, entry pokemonSeed) (int64, error) {
	find := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s LIMIT 1`,
		schema.Pokemon.ID, schema.Pokemon.Table, schema.Pokemon.Name, schema.Pokemon.ID)

	var id int64
	err := tx.QueryRow(ctx, find, entry.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("seed: find pokemon %s: %w", entry.Name, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		RETURNING %s`,
		schema.Pokemon.Table,
		schema.Pokemon.Name, schema.Pokemon.Type, schema.Pokemon.TypeSecondary,
		schema.Pokemon.Region, schema.Pokemon.Category, schema.Pokemon.Description,
		schema.Pokemon.ID)

	err = tx.QueryRow(ctx, insert,
		entry.Name, entry.Type, entry.TypeSecondary, entry.Region, entry.Category, entry.Description,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed: insert pokemon %s: %w", entry.Name, err)
	}
	return id, nil
}

func insertReview(ctx context.Context, tx pgx.Tx, review reviewSeed, userID, pokemonID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (SELECT 1 FROM %[1]s WHERE %[5]s = $4 AND %[6]s = $5 AND %[3]s = $2)`,
		schema.Reviews.Table, schema.Reviews.Rating, schema.Reviews.Title, schema.Reviews.Body,
		schema.Reviews.UserID, schema.Reviews.PokemonID)

	if _, err := tx.Exec(ctx, query, review.Rating, review.Title, review.Body, userID, pokemonID); err != nil {
		return fmt.Errorf("seed: review %q: %w", review.Title, err)
	}
	return nil
}

func insertImage(ctx context.Context, tx pgx.Tx, image imageSeed, userID, pokemonID int64) error {
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM %[1]s WHERE %[2]s = $1 AND %[4]s = $3)`,
		schema.Images.Table, schema.Images.URL, schema.Images.UserID, schema.Images.PokemonID)

	if _, err := tx.Exec(ctx, query, image.URL, userID, pokemonID); err != nil {
		return fmt.Errorf("seed: image %s: %w", image.URL, err)
	}
	return nil
}

func upsertList(ctx context.Context, tx pgx.Tx, list listSeed, userID int64, pokemonIDs map[string]int64) error {
	find := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Lists.ID, schema.Lists.Table, schema.Lists.UserID, schema.Lists.Name)

	var listID int64
	err := tx.QueryRow(ctx, find, userID, list.Name).Scan(&listID)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
			schema.Lists.Table, schema.Lists.Name, schema.Lists.Description, schema.Lists.UserID, schema.Lists.ID)
		err = tx.QueryRow(ctx, insert, list.Name, list.Description, userID).Scan(&listID)
	}
	if err != nil {
		return fmt.Errorf("seed: list %q: %w", list.Name, err)
	}

	entry := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		schema.ListPokemon.Table, schema.ListPokemon.ListID, schema.ListPokemon.PokemonID)
	for _, name := range list.Pokemon {
		if _, err := tx.Exec(ctx, entry, listID, pokemonIDs[name]); err != nil {
			return fmt.Errorf("seed: list %q entry %s: %w", list.Name, name, err)
		}
	}
	return nil
}
