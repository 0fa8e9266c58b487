// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package session keeps track of the signed-in user of the client.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// API is the slice of the client the store needs.
type API interface {
	Session(ctx context.Context) (*apiclient.User, error)
	Bootstrap(ctx context.Context) (string, error)
	CSRFToken() string
	Login(ctx context.Context, csrfToken string, in apiclient.LoginInput) (*apiclient.User, error)
	Signup(ctx context.Context, csrfToken string, in apiclient.SignupInput) (*apiclient.User, error)
	Logout(ctx context.Context, csrfToken string) error
}

// Store caches the current user between calls to [Store.Restore].
type Store struct {
	api    API
	logger *slog.Logger

	mu   sync.RWMutex
	user *apiclient.User
}

func New(api API, logger *slog.Logger) *Store {
	return &Store{api: api, logger: logger}
}

// CurrentUser returns the signed-in user, or nil.
func (store *Store) CurrentUser() *apiclient.User {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.user
}

// CSRFToken returns the token held by the client.
func (store *Store) CSRFToken() string {
	return store.api.CSRFToken()
}

// Restore asks the server who the cookie belongs to.
func (store *Store) Restore(ctx context.Context) (*apiclient.User, error) {
	user, err := store.api.Session(ctx)
	if err != nil {
		return nil, err
	}
	store.set(user)
	return user, nil
}

func (store *Store) Login(ctx context.Context, credential, password string) (*apiclient.User, error) {
	token, err := store.token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := store.api.Login(ctx, token, apiclient.LoginInput{Credential: credential, Password: password})
	if err != nil {
		return nil, err
	}
	store.set(user)
	store.logger.InfoContext(ctx, "signed_in", slog.String("username", user.Username))
	return user, nil
}

func (store *Store) Signup(ctx context.Context, in apiclient.SignupInput) (*apiclient.User, error) {
	token, err := store.token(ctx)
	if err != nil {
		return nil, err
	}
	user, err := store.api.Signup(ctx, token, in)
	if err != nil {
		return nil, err
	}
	store.set(user)
	return user, nil
}

// Logout closes the server session. The local user is cleared even when
// the request fails.
func (store *Store) Logout(ctx context.Context) error {
	defer store.set(nil)

	token, err := store.token(ctx)
	if err != nil {
		return err
	}
	return store.api.Logout(ctx, token)
}

// token returns the held CSRF token, fetching one when none was issued yet.
func (store *Store) token(ctx context.Context) (string, error) {
	if token := store.api.CSRFToken(); token != "" {
		return token, nil
	}
	token, err := store.api.Bootstrap(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", apiclient.ErrNoCSRFToken
	}
	return token, nil
}

func (store *Store) set(user *apiclient.User) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.user = user
}
