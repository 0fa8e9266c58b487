// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND or database failures
	*/
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByCredential matches the value against email or username.
	FindByCredential(ctx context.Context, credential string) (*User, error)

	/*
		Create persists a new account and fills its id and timestamp.

		Returns:
		  - error: CONFLICT naming the taken field, or persistence failures
	*/
	Create(ctx context.Context, user *User) error
}

// # Volatile Data Access

// SessionRepository stores live sessions in a TTL-capable store.
type SessionRepository interface {
	Set(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error

	// Get returns the owning user id, or UNAUTHORIZED when the session is gone.
	Get(ctx context.Context, sessionID string) (int64, error)

	Delete(ctx context.Context, sessionID string) error
}
