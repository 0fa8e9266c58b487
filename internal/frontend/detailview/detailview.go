// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package detailview is the page of a single Pokémon and its reviews.

What a visitor may do depends on who they are:

  - the owner may edit and delete the Pokémon but not review it;
  - any other signed-in user may post a review;
  - a review's author may edit and delete that review.

Deleting a review patches the loaded reviews in place. Deleting the Pokémon
navigates back to the catalog.
*/
package detailview

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/pkg/apiclient"
	"github.com/taibuivan/pokedex/pkg/slice"
)

// # Messages

const (
	MsgLoadFailed       = "Failed to fetch Pokémon details"
	MsgNoDescription    = "No description available."
	PromptDeletePokemon = "Are you sure you want to delete this Pokémon? This action cannot be undone."
	PromptDeleteReview  = "Are you sure you want to delete this review?"

	alertDeletePokemon    = "Failed to delete Pokémon: "
	alertDeleteReview     = "Failed to delete review: "
	fallbackDeletePokemon = "Failed to delete Pokémon"
	fallbackDeleteReview  = "Failed to delete review"
)

// API is the slice of the client the detail page uses.
type API interface {
	GetPokemon(ctx context.Context, id int64) (*apiclient.Pokemon, error)
	DeletePokemon(ctx context.Context, csrfToken string, id int64) error
	DeleteReview(ctx context.Context, csrfToken string, id int64) error
}

// Deps are the collaborators of a [Model].
type Deps struct {
	API       API
	Session   frontend.Session
	Tokens    frontend.TokenSource
	Navigator frontend.Navigator
	Confirmer frontend.Confirmer
	Alerter   frontend.Alerter
	Logger    *slog.Logger
}

// Model holds the detail page state.
type Model struct {
	deps Deps

	mu      sync.RWMutex
	pokemon *apiclient.Pokemon
	errMsg  string
}

func New(deps Deps) *Model {
	return &Model{deps: deps}
}

// Load reads entry id. Call it again whenever the route id changes.
func (model *Model) Load(ctx context.Context, id int64) error {
	entry, err := model.deps.API.GetPokemon(ctx, id)
	if err != nil {
		model.deps.Logger.ErrorContext(ctx, "pokemon_load_failed", slog.Int64("id", id), slog.Any("error", err))
		model.mu.Lock()
		model.pokemon = nil
		model.errMsg = frontend.ErrorMessage(err, MsgLoadFailed)
		model.mu.Unlock()
		return err
	}

	frontend.Normalize(entry)

	model.mu.Lock()
	model.pokemon = entry
	model.errMsg = ""
	model.mu.Unlock()
	return nil
}

// Pokemon is the loaded entry, or nil before a successful load.
func (model *Model) Pokemon() *apiclient.Pokemon {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return model.pokemon
}

// Err is the message of the last failed load.
func (model *Model) Err() string {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return model.errMsg
}

// # Ownership gates

func (model *Model) CanEdit() bool {
	user := model.deps.Session.CurrentUser()
	entry := model.Pokemon()
	return user != nil && entry != nil && user.ID == entry.UserID
}

func (model *Model) CanReview() bool {
	user := model.deps.Session.CurrentUser()
	entry := model.Pokemon()
	return user != nil && entry != nil && user.ID != entry.UserID
}

func (model *Model) CanEditReview(review apiclient.Review) bool {
	user := model.deps.Session.CurrentUser()
	return user != nil && user.ID == review.UserID
}

// # View

// View is the rendered page.
type View struct {
	Name        string
	TypeLabel   string
	Region      string
	Category    string
	Description string
	ImageURL    string
	AddedAt     time.Time
	Average     float64
	Stars       frontend.StarRow
	ReviewCount int
	Reviews     []ReviewView
	CanEdit     bool
	CanReview   bool
}

// ReviewView is one rendered review.
type ReviewView struct {
	apiclient.Review
	Stars   frontend.StarRow
	CanEdit bool
}

// View renders the loaded entry. ok is false before a successful load.
func (model *Model) View() (view View, ok bool) {
	entry := model.Pokemon()
	if entry == nil {
		return View{}, false
	}

	average := frontend.AverageRating(entry.Reviews)
	description := entry.Description
	if description == "" {
		description = MsgNoDescription
	}

	view = View{
		Name:        entry.Name,
		TypeLabel:   frontend.TypeLabel(*entry),
		Region:      frontend.OrUnknown(entry.Region),
		Category:    frontend.OrUnknown(entry.Category),
		Description: description,
		ImageURL:    frontend.FirstImageURL(*entry),
		AddedAt:     entry.CreatedAt,
		Average:     average,
		Stars:       frontend.Stars(average),
		ReviewCount: len(entry.Reviews),
		Reviews:     make([]ReviewView, 0, len(entry.Reviews)),
		CanEdit:     model.CanEdit(),
		CanReview:   model.CanReview(),
	}
	for _, review := range entry.Reviews {
		view.Reviews = append(view.Reviews, ReviewView{
			Review:  review,
			Stars:   frontend.Stars(float64(review.Rating)),
			CanEdit: model.CanEditReview(review),
		})
	}
	return view, true
}

// # Mutations

// DeleteEntity deletes the loaded Pokémon after confirmation and returns to
// the catalog. A declined prompt returns [frontend.ErrDeclined] without a
// request; a failed request alerts and stays on the page.
func (model *Model) DeleteEntity(ctx context.Context) error {
	entry := model.Pokemon()
	if entry == nil {
		return frontend.ErrInvalid
	}
	if !model.deps.Confirmer.Confirm(PromptDeletePokemon) {
		return frontend.ErrDeclined
	}

	if err := model.deps.API.DeletePokemon(ctx, model.deps.Tokens.CSRFToken(), entry.ID); err != nil {
		model.deps.Logger.ErrorContext(ctx, "pokemon_delete_failed", slog.Int64("id", entry.ID), slog.Any("error", err))
		model.deps.Alerter.Alert(alertDeletePokemon + frontend.ErrorMessage(err, fallbackDeletePokemon))
		return err
	}

	model.deps.Navigator.Navigate(ctx, "/")
	return nil
}

// DeleteReview deletes one review after confirmation and drops exactly that
// review from the loaded list.
func (model *Model) DeleteReview(ctx context.Context, reviewID int64) error {
	if !model.deps.Confirmer.Confirm(PromptDeleteReview) {
		return frontend.ErrDeclined
	}

	if err := model.deps.API.DeleteReview(ctx, model.deps.Tokens.CSRFToken(), reviewID); err != nil {
		model.deps.Logger.ErrorContext(ctx, "review_delete_failed", slog.Int64("id", reviewID), slog.Any("error", err))
		model.deps.Alerter.Alert(alertDeleteReview + frontend.ErrorMessage(err, fallbackDeleteReview))
		return err
	}

	model.mu.Lock()
	defer model.mu.Unlock()
	if model.pokemon != nil {
		model.pokemon.Reviews = slice.OrEmpty(slice.Filter(model.pokemon.Reviews, func(review apiclient.Review) bool {
			return review.ID != reviewID
		}))
	}
	return nil
}
