// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/frontend/session"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

type fakeAPI struct {
	token      string
	bootstraps int
	current    *apiclient.User
	loginErr   error
	logoutErr  error
	usedTokens []string
}

func (f *fakeAPI) Session(context.Context) (*apiclient.User, error) { return f.current, nil }

func (f *fakeAPI) Bootstrap(context.Context) (string, error) {
	f.bootstraps++
	f.token = "fresh"
	return f.token, nil
}

func (f *fakeAPI) CSRFToken() string { return f.token }

func (f *fakeAPI) Login(_ context.Context, token string, in apiclient.LoginInput) (*apiclient.User, error) {
	f.usedTokens = append(f.usedTokens, token)
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &apiclient.User{ID: 1, Username: in.Credential}, nil
}

func (f *fakeAPI) Signup(_ context.Context, token string, in apiclient.SignupInput) (*apiclient.User, error) {
	f.usedTokens = append(f.usedTokens, token)
	return &apiclient.User{ID: 2, Username: in.Username, Email: in.Email}, nil
}

func (f *fakeAPI) Logout(_ context.Context, token string) error {
	f.usedTokens = append(f.usedTokens, token)
	return f.logoutErr
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

/*
TestRestore adopts the server's view of the cookie.
*/
func TestRestore(t *testing.T) {
	api := &fakeAPI{current: &apiclient.User{ID: 4, Username: "ash"}}
	store := session.New(api, discard)
	assert.Nil(t, store.CurrentUser())

	user, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ash", user.Username)
	assert.Same(t, user, store.CurrentUser())

	api.current = nil
	_, err = store.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, store.CurrentUser())
}

/*
TestLogin_BootstrapsToken fetches a CSRF token only when none is held.
*/
func TestLogin_BootstrapsToken(t *testing.T) {
	api := &fakeAPI{}
	store := session.New(api, discard)

	_, err := store.Login(context.Background(), "Demo", "password")
	require.NoError(t, err)
	assert.Equal(t, 1, api.bootstraps)
	assert.Equal(t, "Demo", store.CurrentUser().Username)

	_, err = store.Signup(context.Background(), apiclient.SignupInput{Username: "brock", Email: "brock@aa.io", Password: "onix-rocks"})
	require.NoError(t, err)
	assert.Equal(t, 1, api.bootstraps)
	assert.Equal(t, []string{"fresh", "fresh"}, api.usedTokens)
	assert.Equal(t, "fresh", store.CSRFToken())
}

/*
TestLogin_Failure keeps the previous user.
*/
func TestLogin_Failure(t *testing.T) {
	api := &fakeAPI{token: "tok", loginErr: &apiclient.APIError{Status: 401, Message: "Invalid credentials"}}
	store := session.New(api, discard)

	_, err := store.Login(context.Background(), "Demo", "wrong")
	assert.True(t, apiclient.HasStatus(err, 401))
	assert.Nil(t, store.CurrentUser())
}

/*
TestLogout_ClearsEvenOnFailure forgets the user locally.
*/
func TestLogout_ClearsEvenOnFailure(t *testing.T) {
	api := &fakeAPI{token: "tok", current: &apiclient.User{ID: 4}}
	store := session.New(api, discard)
	_, err := store.Restore(context.Background())
	require.NoError(t, err)

	api.logoutErr = errors.New("network down")
	assert.Error(t, store.Logout(context.Background()))
	assert.Nil(t, store.CurrentUser())
}
