// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frontend

import (
	"sync"

	"github.com/taibuivan/pokedex/pkg/apiclient"
)

// FormErrors is what a failed submission shows: a banner, inline field
// messages, or both empty.
type FormErrors struct {
	Form   string
	Fields map[string]string
}

// Empty reports whether there is nothing to show.
func (errs FormErrors) Empty() bool {
	return errs.Form == "" && len(errs.Fields) == 0
}

// SubmissionErrors turns a failed request into [FormErrors].
//
//   - a non-JSON or unparseable reply shows [MsgServerError];
//   - a validation reply shows its field map inline;
//   - any other reply shows the server message, or fallback.
func SubmissionErrors(err error, fallback string) FormErrors {
	if apiclient.IsServerError(err) {
		return FormErrors{Form: MsgServerError}
	}
	if apiErr := apiclient.AsAPIError(err); apiErr != nil && len(apiErr.Fields) > 0 {
		return FormErrors{Fields: apiErr.Fields}
	}
	return FormErrors{Form: ErrorMessage(err, fallback)}
}

// # Submission state

// FormState is where a form is in its life.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormClosed
)

func (state FormState) String() string {
	switch state {
	case FormSubmitting:
		return "submitting"
	case FormClosed:
		return "closed"
	default:
		return "idle"
	}
}

// Submission guards a form against double submits.
//
// idle -> submitting -> closed | idle (with errors)
type Submission struct {
	mu     sync.Mutex
	state  FormState
	errors FormErrors
}

// Begin enters the submitting state and clears previous errors.
func (s *Submission) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case FormSubmitting:
		return ErrSubmitting
	case FormClosed:
		return ErrClosed
	}
	s.state = FormSubmitting
	s.errors = FormErrors{}
	return nil
}

// Fail returns to idle showing errs.
func (s *Submission) Fail(errs FormErrors) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FormIdle
	s.errors = errs
}

// Close marks the form done.
func (s *Submission) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = FormClosed
}

func (s *Submission) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submission) Errors() FormErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors
}
