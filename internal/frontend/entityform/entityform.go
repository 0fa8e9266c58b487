// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package entityform is the create and edit form of a Pokémon.

Submit runs these checks in order and stops at the first failure:

 1. a signed-in user is required;
 2. a CSRF token is required;
 3. the payload must pass the client-side rules.

Only then is a request made. On success the overlay closes and the
launching view is refreshed once.
*/
package entityform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// API is the slice of the client the form submits through.
type API interface {
	CreatePokemon(ctx context.Context, csrfToken string, in apiclient.PokemonInput) (*apiclient.Pokemon, error)
	UpdatePokemon(ctx context.Context, csrfToken string, id int64, in apiclient.PokemonInput) (*apiclient.Pokemon, error)
}

// Deps are the collaborators of a [Form].
type Deps struct {
	API       API
	Session   frontend.Session
	Tokens    frontend.TokenSource
	Overlay   frontend.Overlay
	Refresher frontend.Refresher
	Logger    *slog.Logger
}

// Form edits one Pokémon. Fields may be changed freely between submits.
type Form struct {
	deps     Deps
	existing *apiclient.Pokemon

	Fields apiclient.PokemonInput

	submission frontend.Submission
}

// New opens a create form, or an edit form seeded from existing.
func New(deps Deps, existing *apiclient.Pokemon) *Form {
	form := &Form{deps: deps, existing: existing}
	if existing != nil {
		form.Fields = apiclient.PokemonInput{
			Name:          existing.Name,
			Type:          existing.Type,
			TypeSecondary: existing.TypeSecondary,
			Region:        existing.Region,
			Category:      existing.Category,
			Description:   existing.Description,
		}
		if len(existing.Images) > 0 {
			form.Fields.ImageURL = existing.Images[0].URL
		}
	}
	return form
}

// Editing reports whether the form updates an existing entry.
func (form *Form) Editing() bool { return form.existing != nil }

func (form *Form) State() frontend.FormState { return form.submission.State() }

func (form *Form) Errors() frontend.FormErrors { return form.submission.Errors() }

// Submit sends the form. See the package doc for the order of checks.
func (form *Form) Submit(ctx context.Context) (*apiclient.Pokemon, error) {
	if err := form.submission.Begin(); err != nil {
		return nil, err
	}

	verb := "create"
	if form.Editing() {
		verb = "edit"
	}

	if form.deps.Session.CurrentUser() == nil {
		form.submission.Fail(frontend.FormErrors{Form: fmt.Sprintf("Please log in to %s a Pokemon", verb)})
		return nil, frontend.ErrNoSession
	}

	token := form.deps.Tokens.CSRFToken()
	if token == "" {
		form.submission.Fail(frontend.FormErrors{Form: frontend.MsgSessionExpired})
		return nil, apiclient.ErrNoCSRFToken
	}

	payload := form.payload()
	if fields := frontend.ValidateInput(payload); fields != nil {
		form.submission.Fail(frontend.FormErrors{Fields: fields})
		return nil, frontend.ErrInvalid
	}

	var (
		entry *apiclient.Pokemon
		err   error
	)
	if form.Editing() {
		entry, err = form.deps.API.UpdatePokemon(ctx, token, form.existing.ID, payload)
	} else {
		entry, err = form.deps.API.CreatePokemon(ctx, token, payload)
	}
	if err != nil {
		form.deps.Logger.ErrorContext(ctx, "pokemon_submit_failed", slog.String("action", verb), slog.Any("error", err))
		form.submission.Fail(frontend.SubmissionErrors(err, form.fallback()))
		return nil, err
	}

	form.submission.Close()
	form.deps.Overlay.Close()
	if err := form.deps.Refresher.Refresh(ctx); err != nil {
		return entry, fmt.Errorf("entityform: refresh after %s: %w", verb, err)
	}
	return entry, nil
}

func (form *Form) payload() apiclient.PokemonInput {
	return apiclient.PokemonInput{
		Name:          strings.TrimSpace(form.Fields.Name),
		Type:          strings.TrimSpace(form.Fields.Type),
		TypeSecondary: strings.TrimSpace(form.Fields.TypeSecondary),
		Region:        strings.TrimSpace(form.Fields.Region),
		Category:      strings.TrimSpace(form.Fields.Category),
		Description:   strings.TrimSpace(form.Fields.Description),
		ImageURL:      strings.TrimSpace(form.Fields.ImageURL),
	}
}

func (form *Form) fallback() string {
	if form.Editing() {
		return "Failed to update Pokemon"
	}
	return "Failed to create Pokemon"
}
