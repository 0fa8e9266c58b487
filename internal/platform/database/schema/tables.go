// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column identifiers of the Pokédex
// database. Repositories build SQL from these constants so that a renamed
// column is a compile error rather than a runtime one.
package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table          string
	ID             string
	Username       string
	Email          string
	HashedPassword string
	CreatedAt      string
	UpdatedAt      string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:          "users",
	ID:             "id",
	Username:       "username",
	Email:          "email",
	HashedPassword: "hashed_password",
	CreatedAt:      "created_at",
	UpdatedAt:      "updated_at",
}

// Constraint names referenced when classifying unique violations.
const (
	UsersUsernameKey = "users_username_key"
	UsersEmailKey    = "users_email_key"
)

// PokemonTable represents the 'pokemon' table
type PokemonTable struct {
	Table         string
	ID            string
	Name          string
	Type          string
	TypeSecondary string
	Region        string
	Category      string
	Description   string
	UserID        string
	CreatedAt     string
	UpdatedAt     string
}

// Pokemon is the schema definition for pokemon
var Pokemon = PokemonTable{
	Table:         "pokemon",
	ID:            "id",
	Name:          "name",
	Type:          "type",
	TypeSecondary: "type_secondary",
	Region:        "region",
	Category:      "category",
	Description:   "description",
	UserID:        "user_id",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// ReviewsTable represents the 'reviews' table
type ReviewsTable struct {
	Table     string
	ID        string
	Rating    string
	Title     string
	Body      string
	UserID    string
	PokemonID string
	CreatedAt string
	UpdatedAt string
}

// Reviews is the schema definition for reviews
var Reviews = ReviewsTable{
	Table:     "reviews",
	ID:        "id",
	Rating:    "rating",
	Title:     "title",
	Body:      "body",
	UserID:    "user_id",
	PokemonID: "pokemon_id",
	CreatedAt: "created_at",
	UpdatedAt: "updated_at",
}

// ImagesTable represents the 'images' table
type ImagesTable struct {
	Table     string
	ID        string
	URL       string
	UserID    string
	PokemonID string
	CreatedAt string
}

// Images is the schema definition for images
var Images = ImagesTable{
	Table:     "images",
	ID:        "id",
	URL:       "url",
	UserID:    "user_id",
	PokemonID: "pokemon_id",
	CreatedAt: "created_at",
}

// ListsTable represents the 'lists' table
type ListsTable struct {
	Table       string
	ID          string
	Name        string
	Description string
	UserID      string
	CreatedAt   string
	UpdatedAt   string
}

// Lists is the schema definition for lists
var Lists = ListsTable{
	Table:       "lists",
	ID:          "id",
	Name:        "name",
	Description: "description",
	UserID:      "user_id",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// ListPokemonTable represents the 'list_pokemon' join table
type ListPokemonTable struct {
	Table     string
	ListID    string
	PokemonID string
	AddedAt   string
}

// ListPokemon is the schema definition for list_pokemon
var ListPokemon = ListPokemonTable{
	Table:     "list_pokemon",
	ListID:    "list_id",
	PokemonID: "pokemon_id",
	AddedAt:   "added_at",
}
