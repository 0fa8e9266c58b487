// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package review manages user reviews of catalog entries.

A review is a 1..5 star rating with an optional title and body, written by a
signed-in user about one Pokémon. Only its author may edit or delete it, and
it disappears together with the Pokémon it belongs to.
*/
package review

import (
	"strings"
	"time"

	"github.com/taibuivan/pokedex/internal/platform/validate"
)

// # Limits

const (
	MinRating   = 1
	MaxRating   = 5
	MaxTitleLen = 255
	MaxBodyLen  = 1000
)

// # Field Names

const (
	FieldRating = "rating"
	FieldTitle  = "title"
	FieldBody   = "body"
)

// Review is a single rating of a Pokémon.
type Review struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int64     `json:"user_id"`
	PokemonID int64     `json:"pokemon_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input is the writable part of a review, shared by create and update.
type Input struct {
	Rating int    `json:"rating"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (in *Input) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)
}

// Validate checks the rating bounds and text lengths.
func (in Input) Validate() error {
	validator := &validate.Validator{}
	validator.Range(FieldRating, in.Rating, MinRating, MaxRating)
	validator.MaxLen(FieldTitle, in.Title, MaxTitleLen)
	validator.MaxLen(FieldBody, in.Body, MaxBodyLen)
	return validator.Err()
}
