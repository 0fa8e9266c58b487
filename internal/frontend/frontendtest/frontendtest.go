// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package frontendtest provides recording collaborators for view model tests.
package frontendtest

import (
	"context"
	"sync"

	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// Navigator records every route it is sent to.
type Navigator struct {
	mu    sync.Mutex
	Paths []string
}

func (n *Navigator) Navigate(_ context.Context, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Paths = append(n.Paths, path)
}

// Confirmer answers every prompt with Answer.
type Confirmer struct {
	Answer  bool
	Prompts []string
}

func (c *Confirmer) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer
}

// Alerter records alerts.
type Alerter struct {
	Messages []string
}

func (a *Alerter) Alert(message string) {
	a.Messages = append(a.Messages, message)
}

// Overlay counts opens and closes.
type Overlay struct {
	Opened []string
	Closed int
}

func (o *Overlay) Open(name string) { o.Opened = append(o.Opened, name) }
func (o *Overlay) Close()           { o.Closed++ }

// Refresher counts refreshes and returns Err.
type Refresher struct {
	Calls int
	Err   error
}

func (r *Refresher) Refresh(context.Context) error {
	r.Calls++
	return r.Err
}

// Session is a fixed signed-in user; nil means anonymous.
type Session struct {
	User *apiclient.User
}

func (s Session) CurrentUser() *apiclient.User { return s.User }

// Tokens is a fixed CSRF token.
type Tokens string

func (t Tokens) CSRFToken() string { return string(t) }
