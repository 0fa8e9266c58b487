// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"strings"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

const (
	promptDeleteImage = "Delete this image?"
	promptDeleteList  = "Delete this list? The Pokémon in it are kept."
	msgLoginFirst     = "Please log in first"
)

// mutationToken returns the CSRF token for a write, alerting when the user is
// signed out or the token is gone.
func (a *app) mutationToken() (string, error) {
	if a.session.CurrentUser() == nil {
		a.term.Alert(msgLoginFirst)
		return "", frontend.ErrNoSession
	}
	token := a.client.CSRFToken()
	if token == "" {
		a.term.Alert(frontend.MsgSessionExpired)
		return "", apiclient.ErrNoCSRFToken
	}
	return token, nil
}

func (a *app) fail(err error, fallback string) error {
	a.printFormErrors(frontend.SubmissionErrors(err, fallback))
	return err
}

func (a *app) ids(args []string) ([]int64, error) {
	ids := make([]int64, len(args))
	for i, raw := range args {
		id, err := parseID(raw)
		if err != nil {
			a.term.Alert(err.Error())
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// # Reviews

func (a *app) reviews(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	reviews, err := a.client.ListReviews(ctx, ids[0])
	if err != nil {
		return a.fail(err, "Failed to fetch reviews")
	}
	if len(reviews) == 0 {
		a.term.printf("No reviews yet.\n")
	}
	for _, review := range reviews {
		a.term.printf("  [%d] %s %s\n", review.ID, frontend.Stars(float64(review.Rating)), review.Title)
	}
	return nil
}

// # Images

func (a *app) images(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	images, err := a.client.ListImages(ctx, ids[0])
	if err != nil {
		return a.fail(err, "Failed to fetch images")
	}
	if len(images) == 0 {
		a.term.printf("No images yet.\n")
	}
	for _, image := range images {
		a.term.printf("  [%d] %s\n", image.ID, image.URL)
	}
	return nil
}

func (a *app) askImage(current string) (apiclient.ImageInput, error) {
	in := apiclient.ImageInput{URL: strings.TrimSpace(a.term.ask("Image URL", current))}
	if fields := frontend.ValidateInput(in); fields != nil {
		a.printFields(fields)
		return in, frontend.ErrInvalid
	}
	return in, nil
}

func (a *app) addImage(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	in, err := a.askImage("")
	if err != nil {
		return err
	}
	image, err := a.client.AddImage(ctx, token, ids[0], in)
	if err != nil {
		return a.fail(err, "Failed to add image")
	}
	a.term.printf("Image %d added\n", image.ID)
	return nil
}

func (a *app) editImage(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	in, err := a.askImage("")
	if err != nil {
		return err
	}
	image, err := a.client.UpdateImage(ctx, token, ids[0], in)
	if err != nil {
		return a.fail(err, "Failed to update image")
	}
	a.term.printf("Image %d now %s\n", image.ID, image.URL)
	return nil
}

func (a *app) deleteImage(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	if !a.term.Confirm(promptDeleteImage) {
		return frontend.ErrDeclined
	}
	if err := a.client.DeleteImage(ctx, token, ids[0]); err != nil {
		return a.fail(err, "Failed to delete image")
	}
	a.term.printf("Image %d deleted\n", ids[0])
	return nil
}

// # Lists

func (a *app) lists(ctx context.Context, _ []string) error {
	lists, err := a.client.ListLists(ctx)
	if err != nil {
		return a.fail(err, "Failed to fetch lists")
	}
	if len(lists) == 0 {
		a.term.printf("No lists yet.\n")
	}
	for _, list := range lists {
		a.term.printf("#%-4d %-32s %d Pokémon\n", list.ID, list.Name, len(list.PokemonIDs))
	}
	return nil
}

func (a *app) showList(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	list, err := a.client.GetList(ctx, ids[0])
	if err != nil {
		return a.fail(err, "Failed to fetch list")
	}

	names := map[int64]string{}
	if entries, err := a.client.ListPokemon(ctx); err == nil {
		for _, entry := range entries {
			names[entry.ID] = entry.Name
		}
	}

	a.term.printf("%s\n", list.Name)
	if list.Description != "" {
		a.term.printf("  %s\n", list.Description)
	}
	if len(list.PokemonIDs) == 0 {
		a.term.printf("  (empty)\n")
	}
	for _, id := range list.PokemonIDs {
		a.term.printf("  #%-4d %s\n", id, frontend.OrUnknown(names[id]))
	}
	return nil
}

func (a *app) askList(current apiclient.ListInput) (apiclient.ListInput, error) {
	in := apiclient.ListInput{
		Name:        strings.TrimSpace(a.term.ask("Name", current.Name)),
		Description: strings.TrimSpace(a.term.ask("Description", current.Description)),
	}
	if fields := frontend.ValidateInput(in); fields != nil {
		a.printFields(fields)
		return in, frontend.ErrInvalid
	}
	return in, nil
}

func (a *app) createList(ctx context.Context, _ []string) error {
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	in, err := a.askList(apiclient.ListInput{})
	if err != nil {
		return err
	}
	list, err := a.client.CreateList(ctx, token, in)
	if err != nil {
		return a.fail(err, "Failed to create list")
	}
	a.term.printf("Created list %s (#%d)\n", list.Name, list.ID)
	return nil
}

func (a *app) editList(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	current, err := a.client.GetList(ctx, ids[0])
	if err != nil {
		return a.fail(err, "Failed to fetch list")
	}
	in, err := a.askList(apiclient.ListInput{Name: current.Name, Description: current.Description})
	if err != nil {
		return err
	}
	list, err := a.client.UpdateList(ctx, token, ids[0], in)
	if err != nil {
		return a.fail(err, "Failed to update list")
	}
	a.term.printf("Saved list %s (#%d)\n", list.Name, list.ID)
	return nil
}

func (a *app) deleteList(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	if !a.term.Confirm(promptDeleteList) {
		return frontend.ErrDeclined
	}
	if err := a.client.DeleteList(ctx, token, ids[0]); err != nil {
		return a.fail(err, "Failed to delete list")
	}
	a.term.printf("List %d deleted\n", ids[0])
	return nil
}

func (a *app) addToList(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	if err := a.client.AddToList(ctx, token, ids[0], ids[1]); err != nil {
		return a.fail(err, "Failed to add to list")
	}
	a.term.printf("Added #%d to list %d\n", ids[1], ids[0])
	return nil
}

func (a *app) removeFromList(ctx context.Context, args []string) error {
	ids, err := a.ids(args)
	if err != nil {
		return err
	}
	token, err := a.mutationToken()
	if err != nil {
		return err
	}
	if err := a.client.RemoveFromList(ctx, token, ids[0], ids[1]); err != nil {
		return a.fail(err, "Failed to remove from list")
	}
	a.term.printf("Removed #%d from list %d\n", ids[1], ids[0])
	return nil
}
