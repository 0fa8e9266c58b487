// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pokemon defines the catalog entry of the Pokédex.

A Pokémon belongs to the user who created it. Reads are public and embed the
entry's images and reviews so a list or detail view renders from one response.

Core Responsibility:

  - Catalog: name, primary and optional secondary type, region, category.
  - Media: the first image is the card picture; create and edit manage it.
  - Ownership: only the creator may edit or delete; deletion cascades.
*/
package pokemon

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/pokedex/internal/core/image"
	"github.com/taibuivan/pokedex/internal/core/review"
	"github.com/taibuivan/pokedex/internal/platform/validate"
)

// # Limits

const (
	MaxNameLen        = 100
	MaxTypeLen        = 50
	MaxRegionLen      = 100
	MaxCategoryLen    = 100
	MaxDescriptionLen = 1000
)

// # Field Names

const (
	FieldName          = "name"
	FieldType          = "type"
	FieldTypeSecondary = "type_secondary"
	FieldRegion        = "region"
	FieldCategory      = "category"
	FieldDescription   = "description"
	FieldImageURL      = "image_url"
)

// Pokemon is one catalog entry with its embedded media and reviews.
type Pokemon struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	TypeSecondary string    `json:"type_secondary"`
	Region        string    `json:"region"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Images  []image.Image   `json:"images"`
	Reviews []review.Review `json:"reviews"`
}

// IsOwnedBy reports whether userID created this entry.
// Seeded entries without an owner are owned by nobody.
func (p *Pokemon) IsOwnedBy(userID int64) bool {
	return p.UserID != 0 && p.UserID == userID
}

// Input is the body of create and update requests.
type Input struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	TypeSecondary string `json:"type_secondary"`
	Region        string `json:"region"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
}

// Normalize trims every field and title-cases the type names.
func (in *Input) Normalize() {
	caser := cases.Title(language.English)

	in.Name = strings.TrimSpace(in.Name)
	in.Type = caser.String(strings.TrimSpace(in.Type))
	in.TypeSecondary = caser.String(strings.TrimSpace(in.TypeSecondary))
	in.Region = strings.TrimSpace(in.Region)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
}

// Validate checks required fields, lengths and the optional image URL.
func (in Input) Validate() error {
	validator := &validate.Validator{}

	validator.Required(FieldName, in.Name).MaxLen(FieldName, in.Name, MaxNameLen)
	validator.Required(FieldType, in.Type).MaxLen(FieldType, in.Type, MaxTypeLen)
	validator.MaxLen(FieldTypeSecondary, in.TypeSecondary, MaxTypeLen)
	validator.Custom(FieldTypeSecondary,
		in.TypeSecondary != "" && strings.EqualFold(in.TypeSecondary, in.Type),
		"Secondary type must differ from the primary type")
	validator.Required(FieldRegion, in.Region).MaxLen(FieldRegion, in.Region, MaxRegionLen)
	validator.Required(FieldCategory, in.Category).MaxLen(FieldCategory, in.Category, MaxCategoryLen)
	validator.Required(FieldDescription, in.Description).MaxLen(FieldDescription, in.Description, MaxDescriptionLen)

	if in.ImageURL != "" {
		image.ValidateURL(validator, FieldImageURL, in.ImageURL)
	}

	return validator.Err()
}

func (in Input) apply(p *Pokemon) {
	p.Name = in.Name
	p.Type = in.Type
	p.TypeSecondary = in.TypeSecondary
	p.Region = in.Region
	p.Category = in.Category
	p.Description = in.Description
}
