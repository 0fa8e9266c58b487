// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// # Pokémon

func (client *Client) ListPokemon(ctx context.Context) ([]Pokemon, error) {
	var entries []Pokemon
	if err := client.get(ctx, "/api/pokemon/", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (client *Client) GetPokemon(ctx context.Context, id int64) (*Pokemon, error) {
	var entry Pokemon
	if err := client.get(ctx, fmt.Sprintf("/api/pokemon/%d", id), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (client *Client) CreatePokemon(ctx context.Context, csrfToken string, in PokemonInput) (*Pokemon, error) {
	var entry Pokemon
	if err := client.mutate(ctx, http.MethodPost, "/api/pokemon/", csrfToken, in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (client *Client) UpdatePokemon(ctx context.Context, csrfToken string, id int64, in PokemonInput) (*Pokemon, error) {
	var entry Pokemon
	if err := client.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/pokemon/%d", id), csrfToken, in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeletePokemon removes an entry together with its reviews and images.
func (client *Client) DeletePokemon(ctx context.Context, csrfToken string, id int64) error {
	return client.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/pokemon/%d", id), csrfToken, nil, &message{})
}

// # Reviews

func (client *Client) ListReviews(ctx context.Context, pokemonID int64) ([]Review, error) {
	var reviews []Review
	if err := client.get(ctx, fmt.Sprintf("/api/reviews/pokemon/%d/reviews", pokemonID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (client *Client) CreateReview(ctx context.Context, csrfToken string, pokemonID int64, in ReviewInput) (*Review, error) {
	var review Review
	path := fmt.Sprintf("/api/reviews/pokemon/%d/reviews", pokemonID)
	if err := client.mutate(ctx, http.MethodPost, path, csrfToken, in, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (client *Client) UpdateReview(ctx context.Context, csrfToken string, id int64, in ReviewInput) (*Review, error) {
	var review Review
	if err := client.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/reviews/%d", id), csrfToken, in, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (client *Client) DeleteReview(ctx context.Context, csrfToken string, id int64) error {
	return client.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), csrfToken, nil, &message{})
}

// # Images

func (client *Client) ListImages(ctx context.Context, pokemonID int64) ([]Image, error) {
	var images []Image
	if err := client.get(ctx, fmt.Sprintf("/api/images/pokemon/%d", pokemonID), &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (client *Client) AddImage(ctx context.Context, csrfToken string, pokemonID int64, in ImageInput) (*Image, error) {
	var image Image
	if err := client.mutate(ctx, http.MethodPost, fmt.Sprintf("/api/images/pokemon/%d", pokemonID), csrfToken, in, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (client *Client) UpdateImage(ctx context.Context, csrfToken string, id int64, in ImageInput) (*Image, error) {
	var image Image
	if err := client.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/images/%d", id), csrfToken, in, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (client *Client) DeleteImage(ctx context.Context, csrfToken string, id int64) error {
	return client.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/images/%d", id), csrfToken, nil, &message{})
}

// # Lists

func (client *Client) ListLists(ctx context.Context) ([]List, error) {
	var lists []List
	if err := client.get(ctx, "/api/lists/", &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (client *Client) GetList(ctx context.Context, id int64) (*List, error) {
	var list List
	if err := client.get(ctx, fmt.Sprintf("/api/lists/%d", id), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (client *Client) CreateList(ctx context.Context, csrfToken string, in ListInput) (*List, error) {
	var list List
	if err := client.mutate(ctx, http.MethodPost, "/api/lists/", csrfToken, in, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (client *Client) UpdateList(ctx context.Context, csrfToken string, id int64, in ListInput) (*List, error) {
	var list List
	if err := client.mutate(ctx, http.MethodPatch, fmt.Sprintf("/api/lists/%d", id), csrfToken, in, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (client *Client) DeleteList(ctx context.Context, csrfToken string, id int64) error {
	return client.mutate(ctx, http.MethodDelete, fmt.Sprintf("/api/lists/%d", id), csrfToken, nil, &message{})
}

// AddToList adds a Pokémon to a list. Adding it twice is a 400.
func (client *Client) AddToList(ctx context.Context, csrfToken string, listID, pokemonID int64) error {
	path := fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID)
	return client.mutate(ctx, http.MethodPost, path, csrfToken, nil, &message{})
}

func (client *Client) RemoveFromList(ctx context.Context, csrfToken string, listID, pokemonID int64) error {
	path := fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID)
	return client.mutate(ctx, http.MethodDelete, path, csrfToken, nil, &message{})
}

// # Auth

// Session returns the signed-in user, or nil when the caller is anonymous.
// Like every GET, it also leaves a CSRF cookie in the jar.
func (client *Client) Session(ctx context.Context) (*User, error) {
	var user *User
	if err := client.get(ctx, "/api/auth/", &user); err != nil {
		return nil, err
	}
	return user, nil
}

// Bootstrap fetches a CSRF token and returns it.
func (client *Client) Bootstrap(ctx context.Context) (string, error) {
	var body struct {
		CSRFToken string `json:"csrf_token"`
	}
	if err := client.get(ctx, "/api/auth/csrf", &body); err != nil {
		return "", err
	}
	if token := client.CSRFToken(); token != "" {
		return token, nil
	}
	return body.CSRFToken, nil
}

func (client *Client) Signup(ctx context.Context, csrfToken string, in SignupInput) (*User, error) {
	var user User
	if err := client.mutate(ctx, http.MethodPost, "/api/auth/signup", csrfToken, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (client *Client) Login(ctx context.Context, csrfToken string, in LoginInput) (*User, error) {
	var user User
	if err := client.mutate(ctx, http.MethodPost, "/api/auth/login", csrfToken, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (client *Client) Logout(ctx context.Context, csrfToken string) error {
	return client.mutate(ctx, http.MethodPost, "/api/auth/logout", csrfToken, nil, &message{})
}
