// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/users/auth"
)

func setupUserRepo(t *testing.T) (*auth.PostgresUserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return auth.NewUserRepository(mock), mock
}

/*
TestPostgresUserRepository_Create_Conflicts names the taken field.
*/
func TestPostgresUserRepository_Create_Conflicts(t *testing.T) {
	tests := []struct {
		constraint string
		wantField  string
	}{
		{schema.UsersUsernameKey, auth.FieldUsername},
		{schema.UsersEmailKey, auth.FieldEmail},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock := setupUserRepo(t)
			defer mock.Close()

			mock.ExpectQuery("INSERT INTO users").
				WithArgs("ash", "ash@pallet.town", "hash").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			err := repo.Create(context.Background(), &auth.User{Username: "ash", Email: "ash@pallet.town", PasswordHash: "hash"})
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
			assert.Contains(t, ae.Fields(), tt.wantField)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

/*
TestPostgresUserRepository_FindByCredential scans the password hash.
*/
func TestPostgresUserRepository_FindByCredential(t *testing.T) {
	repo, mock := setupUserRepo(t)
	defer mock.Close()

	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .+ FROM users WHERE lower").
		WithArgs("ash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "hashed_password", "created_at"}).
			AddRow(int64(4), "ash", "ash@pallet.town", "$2a$10$hash", created))

	user, err := repo.FindByCredential(context.Background(), "ash")
	require.NoError(t, err)
	assert.Equal(t, int64(4), user.ID)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresUserRepository_FindByID_NotFound maps ErrNoRows to 404.
*/
func TestPostgresUserRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupUserRepo(t)
	defer mock.Close()

	mock.ExpectQuery("SELECT .+ FROM users WHERE id").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 9)
	assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
