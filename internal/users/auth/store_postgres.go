// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/database/schema"
	"github.com/taibuivan/pokedex/internal/platform/dberr"
	"github.com/taibuivan/pokedex/internal/platform/postgres"
)

const resourceName = "User"

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
type PostgresUserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(db postgres.DBTX) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = fmt.Sprintf(`%s, %s, %s, %s, %s`,
	schema.Users.ID, schema.Users.Username, schema.Users.Email,
	schema.Users.HashedPassword, schema.Users.CreatedAt,
)

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns, schema.Users.Table, schema.Users.ID)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "user_find_by_id")
	}
	return user, nil
}

/*
FindByCredential looks a user up by email or username.

Email comparison is case-insensitive; usernames match exactly.
*/
func (repository *PostgresUserRepository) FindByCredential(ctx context.Context, credential string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(%s) = lower($1) OR %s = $1 LIMIT 1`,
		userColumns, schema.Users.Table, schema.Users.Email, schema.Users.Username)

	user := &User{}
	err := repository.db.QueryRow(ctx, query, credential).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "user_find_by_credential")
	}
	return user, nil
}

/*
Create persists a new user record.

Unique violations are mapped to a CONFLICT that names the taken field, so the
signup form can show the error next to the right input.
*/
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s, %s`,
		schema.Users.Table, schema.Users.Username, schema.Users.Email, schema.Users.HashedPassword,
		schema.Users.ID, schema.Users.CreatedAt)

	err := repository.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)

	switch {
	case err == nil:
		return nil
	case dberr.IsUniqueViolation(err, schema.UsersUsernameKey):
		return conflict(FieldUsername, "Username is already in use")
	case dberr.IsUniqueViolation(err, schema.UsersEmailKey):
		return conflict(FieldEmail, "Email address is already in use")
	default:
		return dberr.Wrap(err, resourceName, "user_create")
	}
}

func conflict(field, message string) *apperr.AppError {
	appErr := apperr.Conflict(message)
	appErr.Details = []apperr.FieldError{{Field: field, Message: message}}
	return appErr
}
