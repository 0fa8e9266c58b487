// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/apperr"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupRepo(t *testing.T) (*review.PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return review.NewPostgresRepository(mock), mock
}

func reviewColumns() []string {
	return []string{"id", "rating", "title", "body", "user_id", "pokemon_id", "created_at", "updated_at"}
}

/*
TestPostgresRepository_FindByID_Success scans every column.
*/
func TestPostgresRepository_FindByID_Success(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(reviewColumns()).
			AddRow(int64(3), 4, "Cute but crowded", "Still electrifying", int64(2), int64(1), fixedTime, fixedTime))

	got, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "Cute but crowded", got.Title)
	assert.Equal(t, int64(1), got.PokemonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_FindByID_NotFound maps ErrNoRows to 404.
*/
func TestPostgresRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM reviews WHERE id").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_ListByPokemonIDs groups rows by Pokémon.
*/
func TestPostgresRepository_ListByPokemonIDs(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	ids := []int64{1, 2}
	mock.ExpectQuery("SELECT .+ FROM reviews WHERE pokemon_id = ANY").
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows(reviewColumns()).
			AddRow(int64(1), 5, "A", "", int64(1), int64(1), fixedTime, fixedTime).
			AddRow(int64(2), 4, "B", "", int64(2), int64(1), fixedTime, fixedTime).
			AddRow(int64(3), 3, "C", "", int64(1), int64(2), fixedTime, fixedTime))

	grouped, err := repo.ListByPokemonIDs(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, grouped[1], 2)
	assert.Len(t, grouped[2], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_ListByPokemonIDs_Empty skips the query entirely.
*/
func TestPostgresRepository_ListByPokemonIDs_Empty(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	grouped, err := repo.ListByPokemonIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Create returns generated id and timestamps.
*/
func TestPostgresRepository_Create(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	r := &review.Review{Rating: 5, Title: "Fire-breathing excellence!", UserID: 1, PokemonID: 2}

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs(5, "Fire-breathing excellence!", "", int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(10), fixedTime, fixedTime))

	require.NoError(t, repo.Create(context.Background(), r))
	assert.Equal(t, int64(10), r.ID)
	assert.Equal(t, fixedTime, r.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Delete_Missing reports 404 when no row was removed.
*/
func TestPostgresRepository_Delete_Missing(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM reviews").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 5)
	assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_PokemonExists reads the EXISTS flag.
*/
func TestPostgresRepository_PokemonExists(t *testing.T) {
	repo, mock := setupRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(6)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.PokemonExists(context.Background(), 6)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
