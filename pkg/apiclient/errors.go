// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCSRFToken is returned by mutations called without a CSRF token.
	ErrNoCSRFToken = errors.New("apiclient: no csrf token")

	// ErrUnavailable is returned while the circuit breaker rejects calls.
	ErrUnavailable = errors.New("apiclient: api unavailable")
)

// APIError is a JSON error envelope returned with a non-2xx status.
//
// Fields is non-nil only for validation failures and maps a request field to
// its first failing rule.
type APIError struct {
	Status  int
	Code    string
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// ServerError is a response whose body is not JSON or does not parse,
// typically an HTML error page from a proxy or a truncated write.
// Excerpt is kept for logs only.
type ServerError struct {
	Status  int
	Excerpt string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d", e.Status)
}

// AsAPIError extracts an [APIError] from the chain, or nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsServerError reports whether the chain holds a [ServerError].
func IsServerError(err error) bool {
	var serverErr *ServerError
	return errors.As(err, &serverErr)
}

// HasStatus reports whether err is an [APIError] with the given status.
func HasStatus(err error, status int) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.Status == status
}
