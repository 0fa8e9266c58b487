// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package image manages the picture URLs attached to a Pokémon.
// Images are links only; nothing is uploaded or proxied.
package image

import (
	"strings"
	"time"

	"github.com/taibuivan/pokedex/internal/platform/validate"
)

// MaxURLLen bounds stored image URLs.
const MaxURLLen = 500

// FieldURL is the validation field name of an image URL.
const FieldURL = "url"

// Image is one picture of a Pokémon.
type Image struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	UserID    int64     `json:"user_id"`
	PokemonID int64     `json:"pokemon_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Input is the body of image create and update requests.
type Input struct {
	URL string `json:"url"`
}

// ValidateURL checks a mandatory http(s) URL under [MaxURLLen] for field.
func ValidateURL(validator *validate.Validator, field, url string) *validate.Validator {
	return validator.
		Required(field, url).
		MaxLen(field, url, MaxURLLen).
		URL(field, strings.TrimSpace(url))
}
