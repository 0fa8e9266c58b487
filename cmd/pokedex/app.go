// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/taibuivan/pokedex/internal/frontend"
	"github.com/taibuivan/pokedex/internal/frontend/detailview"
	"github.com/taibuivan/pokedex/internal/frontend/entityform"
	"github.com/taibuivan/pokedex/internal/frontend/listview"
	"github.com/taibuivan/pokedex/internal/frontend/reviewform"
	"github.com/taibuivan/pokedex/internal/frontend/session"
	"github.com/taibuivan/pokedex/pkg/apiclient"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	args  int
	run   func(app *app, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"list":          {"list", 0, (*app).list},
	"show":          {"show <id>", 1, (*app).show},
	"login":         {"login", 0, (*app).login},
	"signup":        {"signup", 0, (*app).signup},
	"logout":        {"logout", 0, (*app).logout},
	"create":        {"create", 0, (*app).create},
	"edit":          {"edit <id>", 1, (*app).edit},
	"delete":        {"delete <id>", 1, (*app).deletePokemon},
	"review":        {"review <pokemonId>", 1, (*app).review},
	"edit-review":   {"edit-review <pokemonId> <reviewId>", 2, (*app).editReview},
	"delete-review": {"delete-review <pokemonId> <reviewId>", 2, (*app).deleteReview},
	"reviews":       {"reviews <pokemonId>", 1, (*app).reviews},
	"images":        {"images <pokemonId>", 1, (*app).images},
	"image-add":     {"image-add <pokemonId>", 1, (*app).addImage},
	"image-edit":    {"image-edit <imageId>", 1, (*app).editImage},
	"image-delete":  {"image-delete <imageId>", 1, (*app).deleteImage},
	"lists":         {"lists", 0, (*app).lists},
	"list-show":     {"list-show <listId>", 1, (*app).showList},
	"list-create":   {"list-create", 0, (*app).createList},
	"list-edit":     {"list-edit <listId>", 1, (*app).editList},
	"list-delete":   {"list-delete <listId>", 1, (*app).deleteList},
	"list-add":      {"list-add <listId> <pokemonId>", 2, (*app).addToList},
	"list-remove":   {"list-remove <listId> <pokemonId>", 2, (*app).removeFromList},
}

// app wires the view models to the terminal.
type app struct {
	client  *apiclient.Client
	term    *terminal
	logger  *slog.Logger
	session *session.Store
	catalog *listview.Model
	detail  *detailview.Model
}

func newApp(client *apiclient.Client, term *terminal, logger *slog.Logger) *app {
	a := &app{
		client:  client,
		term:    term,
		logger:  logger,
		session: session.New(client, logger),
	}
	a.catalog = listview.New(client, a, logger)
	a.detail = detailview.New(detailview.Deps{
		API:       client,
		Session:   a.session,
		Tokens:    client,
		Navigator: a,
		Confirmer: term,
		Alerter:   term,
		Logger:    logger,
	})
	return a
}

// restore picks up an existing server session. Failures leave the user
// anonymous.
func (a *app) restore(ctx context.Context) {
	if _, err := a.session.Restore(ctx); err != nil {
		a.logger.DebugContext(ctx, "session_restore_failed", slog.Any("error", err))
	}
}

// Navigate renders the route, which is how deletes return to the catalog.
func (a *app) Navigate(ctx context.Context, path string) {
	a.term.printf("-> %s\n", path)
	if path == "/" {
		_ = a.list(ctx, nil)
		return
	}
	if raw, ok := strings.CutPrefix(path, "/pokemon/"); ok {
		_ = a.show(ctx, []string{raw})
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	name := args[0]
	if name == "help" {
		a.help()
		return nil
	}

	cmd, ok := commands[name]
	if !ok {
		a.term.Alert(fmt.Sprintf("unknown command %q", name))
		return errUsage
	}
	if len(args)-1 != cmd.args {
		a.term.Alert("usage: " + cmd.usage)
		return errUsage
	}
	return cmd.run(a, ctx, args[1:])
}

func (a *app) shell(ctx context.Context) error {
	a.help()
	for {
		if user := a.session.CurrentUser(); user != nil {
			a.term.printf("%s> ", user.Username)
		} else {
			a.term.printf("> ")
		}

		line, ok := a.term.readLine()
		if !ok || line == "quit" || line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}
		_ = a.run(ctx, strings.Fields(line))

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (a *app) help() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	a.term.printf("commands:\n")
	for _, name := range names {
		a.term.printf("  %s\n", commands[name].usage)
	}
	a.term.printf("  help\n  quit\n")
}

// # Views

func (a *app) list(ctx context.Context, _ []string) error {
	for {
		err := a.catalog.Load(ctx)
		if err == nil {
			break
		}
		a.term.Alert("Error Loading Pokémon: " + a.catalog.Err())
		if !a.term.Confirm("Try again?") {
			return err
		}
	}

	cards := a.catalog.Cards()
	if len(cards) == 0 {
		a.term.printf("No Pokémon yet.\n")
	}
	for _, card := range cards {
		a.term.printf("#%-4d %-14s %-18s %-8s %s %.1f (%d reviews)\n",
			card.ID, card.Name, card.TypeLabel, card.Region, card.Stars, card.Average, card.ReviewCount)
	}
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	if err := a.detail.Load(ctx, id); err != nil {
		a.term.Alert("Error Loading Pokémon: " + a.detail.Err())
		return err
	}

	view, _ := a.detail.View()
	a.term.printf("%s\n", view.Name)
	a.term.printf("  Type: %s\n  Region: %s\n  Category: %s\n  Image: %s\n", view.TypeLabel, view.Region, view.Category, view.ImageURL)
	if !view.AddedAt.IsZero() {
		a.term.printf("  Added: %s\n", view.AddedAt.Format("Jan 2, 2006"))
	}
	a.term.printf("  %s %.1f/5 (%d reviews)\n\n  %s\n\n", view.Stars, view.Average, view.ReviewCount, view.Description)

	if len(view.Reviews) == 0 {
		a.term.printf("No reviews yet. Be the first to review this Pokémon!\n")
	}
	for _, review := range view.Reviews {
		mark := ""
		if review.CanEdit {
			mark = " (yours)"
		}
		a.term.printf("  [%d] %s %s%s\n", review.ID, review.Stars, review.Title, mark)
		if review.Body != "" {
			a.term.printf("       %s\n", review.Body)
		}
	}

	switch {
	case view.CanEdit:
		a.term.printf("\nYou own this entry: edit %d, delete %d\n", id, id)
	case view.CanReview:
		a.term.printf("\nPost a review: review %d\n", id)
	}
	return nil
}

// # Session

func (a *app) login(ctx context.Context, _ []string) error {
	credential := a.term.ask("Email or username", "")
	password := a.term.ask("Password", "")

	user, err := a.session.Login(ctx, credential, password)
	if err != nil {
		a.term.Alert(frontend.ErrorMessage(err, "Login failed"))
		return err
	}
	a.term.printf("Signed in as %s\n", user.Username)
	return nil
}

func (a *app) signup(ctx context.Context, _ []string) error {
	in := apiclient.SignupInput{
		Username: a.term.ask("Username", ""),
		Email:    a.term.ask("Email", ""),
		Password: a.term.ask("Password", ""),
	}
	if fields := frontend.ValidateInput(in); fields != nil {
		a.printFields(fields)
		return frontend.ErrInvalid
	}

	user, err := a.session.Signup(ctx, in)
	if err != nil {
		a.printFormErrors(frontend.SubmissionErrors(err, "Signup failed"))
		return err
	}
	a.term.printf("Welcome, %s\n", user.Username)
	return nil
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		a.term.Alert(frontend.ErrorMessage(err, "Logout failed"))
		return err
	}
	a.term.printf("Signed out\n")
	return nil
}

// # Pokémon

func (a *app) create(ctx context.Context, _ []string) error {
	form := entityform.New(a.entityDeps(frontend.RefreshFunc(func(ctx context.Context) error {
		return a.list(ctx, nil)
	})), nil)
	a.term.Open("Create Pokemon")
	return a.fillAndSubmitEntity(ctx, form)
}

func (a *app) edit(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	if err := a.detail.Load(ctx, id); err != nil {
		a.term.Alert("Error Loading Pokémon: " + a.detail.Err())
		return err
	}

	form := entityform.New(a.entityDeps(frontend.RefreshFunc(func(ctx context.Context) error {
		return a.show(ctx, []string{args[0]})
	})), a.detail.Pokemon())
	a.term.Open("Edit Pokemon")
	return a.fillAndSubmitEntity(ctx, form)
}

func (a *app) deletePokemon(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	if err := a.detail.Load(ctx, id); err != nil {
		a.term.Alert("Error Loading Pokémon: " + a.detail.Err())
		return err
	}
	return a.detail.DeleteEntity(ctx)
}

func (a *app) entityDeps(refresher frontend.Refresher) entityform.Deps {
	return entityform.Deps{
		API:       a.client,
		Session:   a.session,
		Tokens:    a.client,
		Overlay:   a.term,
		Refresher: refresher,
		Logger:    a.logger,
	}
}

func (a *app) fillAndSubmitEntity(ctx context.Context, form *entityform.Form) error {
	fields := &form.Fields
	fields.Name = a.term.ask("Name", fields.Name)
	fields.Type = a.term.ask("Type", fields.Type)
	fields.TypeSecondary = a.term.ask("Secondary type", fields.TypeSecondary)
	fields.Region = a.term.ask("Region", fields.Region)
	fields.Category = a.term.ask("Category", fields.Category)
	fields.Description = a.term.ask("Description", fields.Description)
	fields.ImageURL = a.term.ask("Image URL", fields.ImageURL)

	entry, err := form.Submit(ctx)
	if entry == nil {
		a.printFormErrors(form.Errors())
		return err
	}
	a.term.printf("Saved %s (#%d)\n", entry.Name, entry.ID)
	return err
}

// # Reviews

func (a *app) review(ctx context.Context, args []string) error {
	pokemonID, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	form := reviewform.New(a.reviewDeps(args[0]), pokemonID, nil)
	a.term.Open("Post a Review")
	return a.fillAndSubmitReview(ctx, form)
}

func (a *app) editReview(ctx context.Context, args []string) error {
	pokemonID, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	reviewID, err := parseID(args[1])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	if err := a.detail.Load(ctx, pokemonID); err != nil {
		a.term.Alert("Error Loading Pokémon: " + a.detail.Err())
		return err
	}

	var existing *apiclient.Review
	for _, review := range a.detail.Pokemon().Reviews {
		if review.ID == reviewID {
			existing = &review
			break
		}
	}
	if existing == nil {
		a.term.Alert("Review not found")
		return frontend.ErrInvalid
	}

	form := reviewform.New(a.reviewDeps(args[0]), pokemonID, existing)
	a.term.Open("Edit Review")
	return a.fillAndSubmitReview(ctx, form)
}

func (a *app) deleteReview(ctx context.Context, args []string) error {
	pokemonID, err := parseID(args[0])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	reviewID, err := parseID(args[1])
	if err != nil {
		a.term.Alert(err.Error())
		return err
	}
	if err := a.detail.Load(ctx, pokemonID); err != nil {
		a.term.Alert("Error Loading Pokémon: " + a.detail.Err())
		return err
	}
	if err := a.detail.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	a.term.printf("Review %d deleted, %d left\n", reviewID, len(a.detail.Pokemon().Reviews))
	return nil
}

func (a *app) reviewDeps(pokemonArg string) reviewform.Deps {
	return reviewform.Deps{
		API:     a.client,
		Session: a.session,
		Tokens:  a.client,
		Overlay: a.term,
		Refresher: frontend.RefreshFunc(func(ctx context.Context) error {
			return a.show(ctx, []string{pokemonArg})
		}),
		Logger: a.logger,
	}
}

func (a *app) fillAndSubmitReview(ctx context.Context, form *reviewform.Form) error {
	fields := &form.Fields
	rating := a.term.ask("Rating (1-5)", strconv.Itoa(fields.Rating))
	if value, err := strconv.Atoi(rating); err == nil {
		fields.Rating = value
	} else {
		fields.Rating = 0
	}
	fields.Title = a.term.ask("Title", fields.Title)
	fields.Body = a.term.ask("Body", fields.Body)

	review, err := form.Submit(ctx)
	if review == nil {
		a.printFormErrors(form.Errors())
		return err
	}
	return err
}

// # Output helpers

func (a *app) printFormErrors(errs frontend.FormErrors) {
	if errs.Form != "" {
		a.term.Alert(errs.Form)
	}
	a.printFields(errs.Fields)
}

func (a *app) printFields(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a.term.Alert(fmt.Sprintf("%s: %s", name, fields[name]))
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
