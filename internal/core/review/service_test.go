// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/apperr"
)

// memoryRepo is an in-memory [review.Repository].
type memoryRepo struct {
	reviews map[int64]*review.Review
	pokemon map[int64]bool
	nextID  int64
}

func newMemoryRepo(pokemonIDs ...int64) *memoryRepo {
	repo := &memoryRepo{reviews: map[int64]*review.Review{}, pokemon: map[int64]bool{}}
	for _, id := range pokemonIDs {
		repo.pokemon[id] = true
	}
	return repo
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*review.Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	clone := *r
	return &clone, nil
}

func (m *memoryRepo) ListByPokemon(_ context.Context, pokemonID int64) ([]review.Review, error) {
	out := make([]review.Review, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if r, ok := m.reviews[id]; ok && r.PokemonID == pokemonID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListByPokemonIDs(ctx context.Context, ids []int64) (map[int64][]review.Review, error) {
	out := map[int64][]review.Review{}
	for _, id := range ids {
		list, _ := m.ListByPokemon(ctx, id)
		if len(list) > 0 {
			out[id] = list
		}
	}
	return out, nil
}

func (m *memoryRepo) Create(_ context.Context, r *review.Review) error {
	m.nextID++
	r.ID = m.nextID
	clone := *r
	m.reviews[r.ID] = &clone
	return nil
}

func (m *memoryRepo) Update(_ context.Context, r *review.Review) error {
	clone := *r
	m.reviews[r.ID] = &clone
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	delete(m.reviews, id)
	return nil
}

func (m *memoryRepo) PokemonExists(_ context.Context, id int64) (bool, error) {
	return m.pokemon[id], nil
}

func newService(repo review.Repository) *review.Service {
	return review.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_Create_Validation rejects out-of-range ratings and long text.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     review.Input
		wantField string
	}{
		{"rating_zero", review.Input{Rating: 0}, review.FieldRating},
		{"rating_six", review.Input{Rating: 6}, review.FieldRating},
		{"title_too_long", review.Input{Rating: 3, Title: strings.Repeat("t", 256)}, review.FieldTitle},
		{"body_too_long", review.Input{Rating: 3, Body: strings.Repeat("b", 1001)}, review.FieldBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newMemoryRepo(1))

			_, err := svc.Create(context.Background(), 1, 1, tt.input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Contains(t, ae.Fields(), tt.wantField)
		})
	}
}

/*
TestService_Create_UnknownPokemon returns 404.
*/
func TestService_Create_UnknownPokemon(t *testing.T) {
	svc := newService(newMemoryRepo())

	_, err := svc.Create(context.Background(), 1, 42, review.Input{Rating: 5})
	assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
}

/*
TestService_Create_Success trims text and stores the author.
*/
func TestService_Create_Success(t *testing.T) {
	repo := newMemoryRepo(1)
	svc := newService(repo)

	created, err := svc.Create(context.Background(), 7, 1, review.Input{Rating: 4, Title: "  Spooky but fun  "})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "Spooky but fun", created.Title)
	assert.Len(t, repo.reviews, 1)
}

/*
TestService_OwnerOnly verifies that only the author may update or delete.
*/
func TestService_OwnerOnly(t *testing.T) {
	repo := newMemoryRepo(1)
	svc := newService(repo)

	created, err := svc.Create(context.Background(), 7, 1, review.Input{Rating: 4})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 8, created.ID, review.Input{Rating: 1})
	assert.True(t, apperr.HasStatus(err, http.StatusForbidden))
	assert.Equal(t, "Unauthorized", apperr.As(err).Message)

	err = svc.Delete(context.Background(), 8, created.ID)
	assert.True(t, apperr.HasStatus(err, http.StatusForbidden))

	updated, err := svc.Update(context.Background(), 7, created.ID, review.Input{Rating: 2, Body: "changed my mind"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	require.NoError(t, svc.Delete(context.Background(), 7, created.ID))
	assert.Empty(t, repo.reviews)
}
