// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pokemon_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokedex/internal/core/image"
	"github.com/taibuivan/pokedex/internal/core/pokemon"
	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/apperr"
)

// memoryRepo is an in-memory [pokemon.Repository] that also records card images.
type memoryRepo struct {
	entries map[int64]*pokemon.Pokemon
	images  map[int64][]image.Image
	nextID  int64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{entries: map[int64]*pokemon.Pokemon{}, images: map[int64][]image.Image{}}
}

func (m *memoryRepo) List(_ context.Context) ([]*pokemon.Pokemon, error) {
	out := make([]*pokemon.Pokemon, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.entries[id]; ok {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memoryRepo) FindByID(_ context.Context, id int64) (*pokemon.Pokemon, error) {
	p, ok := m.entries[id]
	if !ok {
		return nil, apperr.NotFound("Pokemon")
	}
	clone := *p
	return &clone, nil
}

func (m *memoryRepo) Create(_ context.Context, p *pokemon.Pokemon, imageURL string) error {
	m.nextID++
	p.ID = m.nextID
	clone := *p
	m.entries[p.ID] = &clone
	if imageURL != "" {
		m.images[p.ID] = []image.Image{{ID: p.ID, URL: imageURL, PokemonID: p.ID, UserID: p.UserID}}
	}
	return nil
}

func (m *memoryRepo) Update(_ context.Context, p *pokemon.Pokemon, imageURL string) error {
	clone := *p
	m.entries[p.ID] = &clone
	if imageURL == "" {
		return nil
	}
	if existing := m.images[p.ID]; len(existing) > 0 {
		existing[0].URL = imageURL
		return nil
	}
	m.images[p.ID] = []image.Image{{URL: imageURL, PokemonID: p.ID, UserID: p.UserID}}
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	delete(m.entries, id)
	delete(m.images, id)
	return nil
}

// imageSource reads the card images the memory repo recorded.
type imageSource struct{ repo *memoryRepo }

func (s imageSource) ListForPokemonIDs(_ context.Context, ids []int64) (map[int64][]image.Image, error) {
	out := map[int64][]image.Image{}
	for _, id := range ids {
		if list := s.repo.images[id]; len(list) > 0 {
			out[id] = append([]image.Image(nil), list...)
		}
	}
	return out, nil
}

// reviewSource serves fixed reviews keyed by Pokémon id.
type reviewSource map[int64][]review.Review

func (s reviewSource) ListForPokemonIDs(_ context.Context, ids []int64) (map[int64][]review.Review, error) {
	out := map[int64][]review.Review{}
	for _, id := range ids {
		if list := s[id]; len(list) > 0 {
			out[id] = list
		}
	}
	return out, nil
}

func newService(repo *memoryRepo, reviews reviewSource) *pokemon.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return pokemon.NewService(repo, reviews, imageSource{repo: repo}, logger)
}

func validInput() pokemon.Input {
	return pokemon.Input{
		Name:        "Pikachu",
		Type:        "electric",
		Region:      "Kanto",
		Category:    "Mouse",
		Description: "Stores electricity in its cheeks.",
		ImageURL:    "https://img.pokemondb.net/artwork/pikachu.jpg",
	}
}

/*
TestInput_Validate maps each broken field to its key.
*/
func TestInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *pokemon.Input)
		wantField string
	}{
		{"missing_name", func(in *pokemon.Input) { in.Name = "" }, pokemon.FieldName},
		{"long_name", func(in *pokemon.Input) { in.Name = strings.Repeat("n", 101) }, pokemon.FieldName},
		{"missing_type", func(in *pokemon.Input) { in.Type = "  " }, pokemon.FieldType},
		{"same_secondary", func(in *pokemon.Input) { in.TypeSecondary = "Electric" }, pokemon.FieldTypeSecondary},
		{"missing_region", func(in *pokemon.Input) { in.Region = "" }, pokemon.FieldRegion},
		{"missing_category", func(in *pokemon.Input) { in.Category = "" }, pokemon.FieldCategory},
		{"long_description", func(in *pokemon.Input) { in.Description = strings.Repeat("d", 1001) }, pokemon.FieldDescription},
		{"bad_image", func(in *pokemon.Input) { in.ImageURL = "ftp://x/y.png" }, pokemon.FieldImageURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			in.Normalize()

			ae := apperr.As(in.Validate())
			require.NotNil(t, ae)
			assert.Contains(t, ae.Fields(), tt.wantField)
		})
	}
}

/*
TestInput_Normalize trims and title-cases types.
*/
func TestInput_Normalize(t *testing.T) {
	in := pokemon.Input{Name: "  Mew ", Type: "psychic", TypeSecondary: " fairy "}
	in.Normalize()

	assert.Equal(t, "Mew", in.Name)
	assert.Equal(t, "Psychic", in.Type)
	assert.Equal(t, "Fairy", in.TypeSecondary)
}

/*
TestService_Create_HydratesImage returns the entry with its card image.
*/
func TestService_Create_HydratesImage(t *testing.T) {
	svc := newService(newMemoryRepo(), reviewSource{})

	got, err := svc.Create(context.Background(), 7, validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "Electric", got.Type)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://img.pokemondb.net/artwork/pikachu.jpg", got.Images[0].URL)
	assert.NotNil(t, got.Reviews)
	assert.Empty(t, got.Reviews)
}

/*
TestService_List_EmbedsChildren attaches reviews to their entry only.
*/
func TestService_List_EmbedsChildren(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, reviewSource{2: {{ID: 1, Rating: 5, PokemonID: 2}}})

	in := validInput()
	in.ImageURL = ""
	_, err := svc.Create(context.Background(), 1, in)
	require.NoError(t, err)
	in.Name = "Raichu"
	_, err = svc.Create(context.Background(), 1, in)
	require.NoError(t, err)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Reviews)
	assert.NotNil(t, got[0].Images)
	require.Len(t, got[1].Reviews, 1)
	assert.Equal(t, 5, got[1].Reviews[0].Rating)
}

/*
TestService_OwnerOnly rejects edits and deletes by other users.
*/
func TestService_OwnerOnly(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, reviewSource{})

	created, err := svc.Create(context.Background(), 1, validInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 2, created.ID, validInput())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusForbidden, ae.HTTPStatus)
	assert.Equal(t, "Unauthorized", ae.Message)

	err = svc.Delete(context.Background(), 2, created.ID)
	assert.True(t, apperr.HasStatus(err, http.StatusForbidden))

	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.True(t, apperr.HasStatus(err, http.StatusNotFound))
}

/*
TestService_Update_ReplacesImage swaps the card image URL.
*/
func TestService_Update_ReplacesImage(t *testing.T) {
	svc := newService(newMemoryRepo(), reviewSource{})

	created, err := svc.Create(context.Background(), 1, validInput())
	require.NoError(t, err)

	in := validInput()
	in.Description = "Updated."
	in.ImageURL = "https://example.com/new.png"
	got, err := svc.Update(context.Background(), 1, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Updated.", got.Description)
	require.Len(t, got.Images, 1)
	assert.Equal(t, "https://example.com/new.png", got.Images[0].URL)
}

/*
TestService_UnownedEntry cannot be modified by anyone.
*/
func TestService_UnownedEntry(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, reviewSource{})

	created, err := svc.Create(context.Background(), 0, validInput())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 0, created.ID)
	assert.True(t, apperr.HasStatus(err, http.StatusForbidden))
}
