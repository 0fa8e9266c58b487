// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package reviewform is the post and edit form of a review. It follows the
// same checks and outcomes as the Pokémon form.
package reviewform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// DefaultRating preselects the top of the scale.
const DefaultRating = 5

// MsgLoginRequired is shown to anonymous visitors.
const MsgLoginRequired = "Please log in to post a review"

// Ratings is the closed set a rating is picked from.
var Ratings = []int{1, 2, 3, 4, 5}

type API interface {
	CreateReview(ctx context.Context, csrfToken string, pokemonID int64, in apiclient.ReviewInput) (*apiclient.Review, error)
	UpdateReview(ctx context.Context, csrfToken string, id int64, in apiclient.ReviewInput) (*apiclient.Review, error)
}

type Deps struct {
	API       API
	Session   frontend.Session
	Tokens    frontend.TokenSource
	Overlay   frontend.Overlay
	Refresher frontend.Refresher
	Logger    *slog.Logger
}

// Form writes one review of pokemonID.
type Form struct {
	deps      Deps
	pokemonID int64
	existing  *apiclient.Review

	Fields apiclient.ReviewInput

	submission frontend.Submission
}

// New opens a post form for pokemonID, or an edit form seeded from existing.
func New(deps Deps, pokemonID int64, existing *apiclient.Review) *Form {
	form := &Form{deps: deps, pokemonID: pokemonID, existing: existing}
	form.Fields.Rating = DefaultRating
	if existing != nil {
		form.Fields = apiclient.ReviewInput{Rating: existing.Rating, Title: existing.Title, Body: existing.Body}
	}
	return form
}

func (form *Form) Editing() bool { return form.existing != nil }

func (form *Form) State() frontend.FormState { return form.submission.State() }

func (form *Form) Errors() frontend.FormErrors { return form.submission.Errors() }

// Submit sends the review.
func (form *Form) Submit(ctx context.Context) (*apiclient.Review, error) {
	if err := form.submission.Begin(); err != nil {
		return nil, err
	}

	if form.deps.Session.CurrentUser() == nil {
		form.submission.Fail(frontend.FormErrors{Form: MsgLoginRequired})
		return nil, frontend.ErrNoSession
	}

	token := form.deps.Tokens.CSRFToken()
	if token == "" {
		form.submission.Fail(frontend.FormErrors{Form: frontend.MsgSessionExpired})
		return nil, apiclient.ErrNoCSRFToken
	}

	payload := apiclient.ReviewInput{
		Rating: form.Fields.Rating,
		Title:  strings.TrimSpace(form.Fields.Title),
		Body:   strings.TrimSpace(form.Fields.Body),
	}
	if fields := frontend.ValidateInput(payload); fields != nil {
		form.submission.Fail(frontend.FormErrors{Fields: fields})
		return nil, frontend.ErrInvalid
	}

	var (
		review *apiclient.Review
		err    error
	)
	if form.Editing() {
		review, err = form.deps.API.UpdateReview(ctx, token, form.existing.ID, payload)
	} else {
		review, err = form.deps.API.CreateReview(ctx, token, form.pokemonID, payload)
	}
	if err != nil {
		form.deps.Logger.ErrorContext(ctx, "review_submit_failed",
			slog.Int64("pokemon_id", form.pokemonID),
			slog.Bool("editing", form.Editing()),
			slog.Any("error", err),
		)
		form.submission.Fail(frontend.SubmissionErrors(err, form.fallback()))
		return nil, err
	}

	form.submission.Close()
	form.deps.Overlay.Close()
	if err := form.deps.Refresher.Refresh(ctx); err != nil {
		return review, fmt.Errorf("reviewform: refresh: %w", err)
	}
	return review, nil
}

func (form *Form) fallback() string {
	if form.Editing() {
		return "Failed to update review"
	}
	return "Failed to post review"
}
