// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package listview is the catalog page: every Pokémon as a card with its
// average rating.
package listview

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// MsgLoadFailed is shown whenever the catalog cannot be read. The cause is
// only logged.
const MsgLoadFailed = "Failed to fetch Pokémon data"

// API is the slice of the client the catalog reads from.
type API interface {
	ListPokemon(ctx context.Context) ([]apiclient.Pokemon, error)
}

// Status is the load state of the page.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

// Card is one rendered catalog entry.
type Card struct {
	ID          int64
	Name        string
	TypeLabel   string
	Region      string
	ImageURL    string
	Average     float64
	Stars       frontend.StarRow
	ReviewCount int
}

// Model holds the catalog page state.
type Model struct {
	api       API
	navigator frontend.Navigator
	logger    *slog.Logger

	mu      sync.RWMutex
	status  Status
	entries []apiclient.Pokemon
	errMsg  string
}

func New(api API, navigator frontend.Navigator, logger *slog.Logger) *Model {
	return &Model{api: api, navigator: navigator, logger: logger}
}

// Load reads the whole catalog once.
func (model *Model) Load(ctx context.Context) error {
	model.setStatus(StatusLoading, "")

	entries, err := model.api.ListPokemon(ctx)
	if err != nil {
		model.logger.ErrorContext(ctx, "catalog_load_failed", slog.Any("error", err))
		model.setStatus(StatusFailed, MsgLoadFailed)
		return err
	}

	for i := range entries {
		frontend.Normalize(&entries[i])
	}

	model.mu.Lock()
	model.entries = entries
	model.status = StatusReady
	model.errMsg = ""
	model.mu.Unlock()
	return nil
}

// Retry re-issues the catalog read after a failure.
func (model *Model) Retry(ctx context.Context) error {
	return model.Load(ctx)
}

// Open navigates to the detail page of id.
func (model *Model) Open(ctx context.Context, id int64) {
	model.navigator.Navigate(ctx, frontend.PokemonPath(id))
}

func (model *Model) Status() Status {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return model.status
}

// Err is the message of the last failed load.
func (model *Model) Err() string {
	model.mu.RLock()
	defer model.mu.RUnlock()
	return model.errMsg
}

// Cards renders the loaded entries in server order.
func (model *Model) Cards() []Card {
	model.mu.RLock()
	defer model.mu.RUnlock()

	cards := make([]Card, 0, len(model.entries))
	for _, entry := range model.entries {
		average := frontend.AverageRating(entry.Reviews)
		cards = append(cards, Card{
			ID:          entry.ID,
			Name:        entry.Name,
			TypeLabel:   frontend.TypeLabel(entry),
			Region:      frontend.OrUnknown(entry.Region),
			ImageURL:    frontend.FirstImageURL(entry),
			Average:     average,
			Stars:       frontend.Stars(average),
			ReviewCount: len(entry.Reviews),
		})
	}
	return cards
}

func (model *Model) setStatus(status Status, errMsg string) {
	model.mu.Lock()
	defer model.mu.Unlock()
	model.status = status
	model.errMsg = errMsg
}
