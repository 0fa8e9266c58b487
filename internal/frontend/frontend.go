// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package frontend holds what the Pokédex client views share: the collaborator
interfaces they are built from, rating math, and form submission state.

Views never reach for globals. The signed-in user, the CSRF token, navigation,
confirmation prompts and the overlay a form lives in are all passed in, so a
terminal front end and a test can drive the same view models.

Subpackages:

  - listview: the catalog page.
  - detailview: one Pokémon with its reviews.
  - entityform: create and edit a Pokémon.
  - reviewform: create and edit a review.
  - session: the signed-in user.
*/
package frontend

import (
	"context"
	"errors"
	"fmt"

	"github.com/taibuivan/pokedex/pkg/apiclient"
	"github.com/taibuivan/pokedex/pkg/slice"
)

// # Collaborators

// Navigator moves the client to a route such as "/" or "/pokemon/25".
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Alerter shows a blocking message.
type Alerter interface {
	Alert(message string)
}

// Overlay is the modal a form is displayed in.
type Overlay interface {
	Open(name string)
	Close()
}

// Refresher reloads whatever view launched a form once it succeeds.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Session exposes the signed-in user, or nil.
type Session interface {
	CurrentUser() *apiclient.User
}

// TokenSource yields the current CSRF token, or "" when none was issued.
type TokenSource interface {
	CSRFToken() string
}

// RefreshFunc adapts a function to [Refresher].
type RefreshFunc func(ctx context.Context) error

func (fn RefreshFunc) Refresh(ctx context.Context) error { return fn(ctx) }

// # Errors

var (
	ErrNoSession  = errors.New("frontend: not signed in")
	ErrSubmitting = errors.New("frontend: submission in progress")
	ErrClosed     = errors.New("frontend: form already closed")
	ErrDeclined   = errors.New("frontend: action declined")
	ErrInvalid    = errors.New("frontend: invalid input")
)

// # Messages

const (
	MsgSessionExpired = "Session expired. Please refresh the page."
	MsgServerError    = "Server error. Please try again later."
)

// PlaceholderImageURL is shown for a Pokémon without images.
const PlaceholderImageURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/0.png"

// # Display helpers

// PokemonPath is the detail route of a Pokémon.
func PokemonPath(id int64) string {
	return fmt.Sprintf("/pokemon/%d", id)
}

// TypeLabel renders "Fire / Flying", or just the primary type.
func TypeLabel(entry apiclient.Pokemon) string {
	if entry.TypeSecondary == "" {
		return entry.Type
	}
	return entry.Type + " / " + entry.TypeSecondary
}

// FirstImageURL returns the first image of entry, or [PlaceholderImageURL].
func FirstImageURL(entry apiclient.Pokemon) string {
	if len(entry.Images) > 0 && entry.Images[0].URL != "" {
		return entry.Images[0].URL
	}
	return PlaceholderImageURL
}

// OrUnknown substitutes "Unknown" for an empty value.
func OrUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

// Normalize makes the review slice of entry non-nil.
func Normalize(entry *apiclient.Pokemon) {
	entry.Reviews = slice.OrEmpty(entry.Reviews)
	entry.Images = slice.OrEmpty(entry.Images)
}

// ErrorMessage returns the server's message for err, or fallback when the
// server sent none.
func ErrorMessage(err error, fallback string) string {
	if apiErr := apiclient.AsAPIError(err); apiErr != nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
