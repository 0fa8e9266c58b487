// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package detailview_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/internal/frontend/detailview"
	"github.com/taibuivan/pokedex/internal/frontend/frontendtest"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

type fakeAPI struct {
	pokemon        map[int64]apiclient.Pokemon
	gets           []int64
	deletedPokemon []int64
	deletedReviews []int64
	tokens         []string
	deleteErr      error
}

func (f *fakeAPI) GetPokemon(_ context.Context, id int64) (*apiclient.Pokemon, error) {
	f.gets = append(f.gets, id)
	entry, ok := f.pokemon[id]
	if !ok {
		return nil, &apiclient.APIError{Status: http.StatusNotFound, Message: "Pokemon not found"}
	}
	return &entry, nil
}

func (f *fakeAPI) DeletePokemon(_ context.Context, token string, id int64) error {
	f.tokens = append(f.tokens, token)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedPokemon = append(f.deletedPokemon, id)
	return nil
}

func (f *fakeAPI) DeleteReview(_ context.Context, token string, id int64) error {
	f.tokens = append(f.tokens, token)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedReviews = append(f.deletedReviews, id)
	return nil
}

type fixture struct {
	api       *fakeAPI
	navigator *frontendtest.Navigator
	confirmer *frontendtest.Confirmer
	alerter   *frontendtest.Alerter
	model     *detailview.Model
}

var addedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	ownerID    = int64(1)
	reviewerID = int64(2)
)

func setup(t *testing.T, user *apiclient.User) *fixture {
	t.Helper()
	f := &fixture{
		api: &fakeAPI{pokemon: map[int64]apiclient.Pokemon{
			6: {
				ID: 6, Name: "Charizard", Type: "Fire", TypeSecondary: "Flying", Region: "Kanto",
				UserID: ownerID, CreatedAt: addedAt,
				Reviews: []apiclient.Review{
					{ID: 10, Rating: 5, UserID: reviewerID},
					{ID: 11, Rating: 3, UserID: 3},
					{ID: 12, Rating: 4, UserID: reviewerID},
				},
			},
			25: {ID: 25, Name: "Pikachu", Type: "Electric"},
		}},
		navigator: &frontendtest.Navigator{},
		confirmer: &frontendtest.Confirmer{Answer: true},
		alerter:   &frontendtest.Alerter{},
	}
	f.model = detailview.New(detailview.Deps{
		API:       f.api,
		Session:   frontendtest.Session{User: user},
		Tokens:    frontendtest.Tokens("tok"),
		Navigator: f.navigator,
		Confirmer: f.confirmer,
		Alerter:   f.alerter,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, f.model.Load(context.Background(), 6))
	return f
}

/*
TestLoad_ReloadsOnRouteChange fetches once per id and renders the view.
*/
func TestLoad_ReloadsOnRouteChange(t *testing.T) {
	f := setup(t, nil)

	view, ok := f.model.View()
	require.True(t, ok)
	assert.Equal(t, "Fire / Flying", view.TypeLabel)
	assert.Equal(t, "Unknown", view.Category)
	assert.Equal(t, detailview.MsgNoDescription, view.Description)
	assert.Equal(t, 4.0, view.Average)
	assert.Equal(t, 3, view.ReviewCount)
	assert.Equal(t, addedAt, view.AddedAt)

	require.NoError(t, f.model.Load(context.Background(), 25))
	assert.Equal(t, []int64{6, 25}, f.api.gets)
	assert.Equal(t, "Pikachu", f.model.Pokemon().Name)
	assert.NotNil(t, f.model.Pokemon().Reviews)

	require.Error(t, f.model.Load(context.Background(), 999))
	assert.Equal(t, "Pokemon not found", f.model.Err())
	_, ok = f.model.View()
	assert.False(t, ok)
}

/*
TestOwnershipGates checks owner, reviewer and anonymous visitors.
*/
func TestOwnershipGates(t *testing.T) {
	tests := []struct {
		name          string
		user          *apiclient.User
		canEdit       bool
		canReview     bool
		editableCount int
	}{
		{"anonymous", nil, false, false, 0},
		{"owner", &apiclient.User{ID: ownerID}, true, false, 0},
		{"reviewer", &apiclient.User{ID: reviewerID}, false, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, tt.user)
			assert.Equal(t, tt.canEdit, f.model.CanEdit())
			assert.Equal(t, tt.canReview, f.model.CanReview())

			view, _ := f.model.View()
			editable := 0
			for _, review := range view.Reviews {
				if review.CanEdit {
					editable++
				}
			}
			assert.Equal(t, tt.editableCount, editable)
		})
	}
}

/*
TestDeleteEntity_NavigatesHome deletes and returns to the catalog.
*/
func TestDeleteEntity_NavigatesHome(t *testing.T) {
	f := setup(t, &apiclient.User{ID: ownerID})

	require.NoError(t, f.model.DeleteEntity(context.Background()))
	assert.Equal(t, []int64{6}, f.api.deletedPokemon)
	assert.Equal(t, []string{"tok"}, f.api.tokens)
	assert.Equal(t, []string{detailview.PromptDeletePokemon}, f.confirmer.Prompts)
	assert.Equal(t, []string{"/"}, f.navigator.Paths)
}

/*
TestDeleteEntity_Declined issues no request.
*/
func TestDeleteEntity_Declined(t *testing.T) {
	f := setup(t, &apiclient.User{ID: ownerID})
	f.confirmer.Answer = false

	assert.ErrorIs(t, f.model.DeleteEntity(context.Background()), frontend.ErrDeclined)
	assert.Empty(t, f.api.tokens)
	assert.Empty(t, f.navigator.Paths)
}

/*
TestDeleteEntity_FailureAlerts shows the server message and stays put.
*/
func TestDeleteEntity_FailureAlerts(t *testing.T) {
	f := setup(t, &apiclient.User{ID: reviewerID})
	f.api.deleteErr = &apiclient.APIError{Status: http.StatusForbidden, Message: "Unauthorized"}

	require.Error(t, f.model.DeleteEntity(context.Background()))
	assert.Equal(t, []string{"Failed to delete Pokémon: Unauthorized"}, f.alerter.Messages)
	assert.Empty(t, f.navigator.Paths)
}

/*
TestDeleteEntity_GenericAlert falls back when the server sent no message.
*/
func TestDeleteEntity_GenericAlert(t *testing.T) {
	f := setup(t, &apiclient.User{ID: ownerID})
	f.api.deleteErr = &apiclient.ServerError{Status: http.StatusBadGateway}

	require.Error(t, f.model.DeleteEntity(context.Background()))
	assert.Equal(t, []string{"Failed to delete Pokémon: Failed to delete Pokémon"}, f.alerter.Messages)
}

/*
TestDeleteReview_PatchesLocally removes exactly one review without refetching.
*/
func TestDeleteReview_PatchesLocally(t *testing.T) {
	f := setup(t, &apiclient.User{ID: reviewerID})

	require.NoError(t, f.model.DeleteReview(context.Background(), 10))
	assert.Equal(t, []int64{10}, f.api.deletedReviews)
	assert.Equal(t, []int64{6}, f.api.gets)

	var remaining []int64
	for _, review := range f.model.Pokemon().Reviews {
		remaining = append(remaining, review.ID)
	}
	assert.Equal(t, []int64{11, 12}, remaining)
}

/*
TestDeleteReview_Failure keeps the list and alerts.
*/
func TestDeleteReview_Failure(t *testing.T) {
	f := setup(t, &apiclient.User{ID: reviewerID})
	f.api.deleteErr = &apiclient.APIError{Status: http.StatusNotFound, Message: "Review not found"}

	require.Error(t, f.model.DeleteReview(context.Background(), 10))
	assert.Equal(t, []string{"Failed to delete review: Review not found"}, f.alerter.Messages)
	assert.Len(t, f.model.Pokemon().Reviews, 3)
}

/*
TestDeleteReview_Declined issues no request.
*/
func TestDeleteReview_Declined(t *testing.T) {
	f := setup(t, &apiclient.User{ID: reviewerID})
	f.confirmer.Answer = false

	assert.ErrorIs(t, f.model.DeleteReview(context.Background(), 10), frontend.ErrDeclined)
	assert.Empty(t, f.api.deletedReviews)
	assert.Equal(t, []string{detailview.PromptDeleteReview}, f.confirmer.Prompts)
}
