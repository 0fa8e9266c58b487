// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package list manages user-curated collections of Pokémon.
package list

import (
	"strings"
	"time"

	"github.com/taibuivan/pokedex/internal/platform/validate"
)

const (
	MaxNameLen        = 100
	MaxDescriptionLen = 500

	FieldName        = "name"
	FieldDescription = "description"
)

// List is a named set of Pokémon owned by one user.
type List struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	PokemonIDs  []int64   `json:"pokemon_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input is the body of create and update requests.
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

func (in Input) Validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldName, in.Name).MaxLen(FieldName, in.Name, MaxNameLen)
	validator.MaxLen(FieldDescription, in.Description, MaxDescriptionLen)
	return validator.Err()
}
