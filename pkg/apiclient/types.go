// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import "time"

// # Resources

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
	Images        []Image   `json:"images"`
	Reviews       []Review  `json:"reviews"`
}

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

type Image struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	UserID    int64     `json:"user_id"`
	PokemonID int64     `json:"pokemon_id"`
	CreatedAt time.Time `json:"created_at"`
}

type List struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	PokemonIDs  []int64   `json:"pokemon_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// User is the signed-in account as returned by the auth endpoints.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// # Payloads
//
// The validate tags mirror the server limits so forms can reject input
// before a request is made.

type PokemonInput struct {
	Name          string `json:"name"           validate:"required,max=100"`
	Type          string `json:"type"           validate:"required,max=50"`
	TypeSecondary string `json:"type_secondary" validate:"max=50"`
	Region        string `json:"region"         validate:"required,max=100"`
	Category      string `json:"category"       validate:"required,max=100"`
	Description   string `json:"description"    validate:"required,max=1000"`
	ImageURL      string `json:"image_url"      validate:"omitempty,max=500,http_url"`
}

type ReviewInput struct {
	Rating int    `json:"rating" validate:"oneof=1 2 3 4 5"`
	Title  string `json:"title"  validate:"max=255"`
	Body   string `json:"body"   validate:"max=1000"`
}

type ImageInput struct {
	URL string `json:"url" validate:"required,max=500,http_url"`
}

type ListInput struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Credential string `json:"credential" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type message struct {
	Message string `json:"message"`
}
