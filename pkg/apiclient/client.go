// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apiclient is a typed HTTP client for the Pokédex API.

The client keeps the server's cookies in a jar, so a login carries over to
later calls. Mutations take the CSRF token as an explicit argument; callers
read it with [Client.CSRFToken], which returns the csrf_token cookie the
server issued on an earlier response.

Responses are decoded by one rule set:

  - a body that is not JSON, or JSON that does not parse, becomes a [ServerError];
  - JSON with a non-2xx status becomes an [APIError];
  - JSON with a 2xx status is unwrapped from its "data" envelope.

Requests are never retried.
*/
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/net/publicsuffix"
)

const (
	// CSRFCookieName is the cookie the server stores the CSRF token in.
	CSRFCookieName = "csrf_token"

	// CSRFHeaderName is the header mutations echo the token in.
	CSRFHeaderName = "X-CSRFToken"

	maxBodyBytes = 1 << 20
	excerptLen   = 200
)

// Client talks to one API server. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	jar     http.CookieJar
	breaker *gobreaker.CircuitBreaker[*http.Response]
	logger  *slog.Logger

	breakerSettings BreakerSettings
	registerer      prometheus.Registerer
}

// Option customizes a [Client].
type Option func(*Client)

// WithBreakerSettings overrides [DefaultBreakerSettings]. It has no effect
// when the breaker is disabled.
func WithBreakerSettings(settings BreakerSettings) Option {
	return func(client *Client) {
		client.breakerSettings = settings
	}
}

// WithMetrics exports the breaker state gauge on registerer. Without it the
// client records no metrics.
func WithMetrics(registerer prometheus.Registerer) Option {
	return func(client *Client) {
		client.registerer = registerer
	}
}

// New builds a client for cfg.BaseURL.
func New(cfg Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base url %q", cfg.BaseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("apiclient: cookie jar: %w", err)
	}

	client := &Client{
		baseURL:         base,
		http:            &http.Client{Jar: jar, Timeout: cfg.Timeout},
		jar:             jar,
		logger:          logger,
		breakerSettings: DefaultBreakerSettings(),
	}
	for _, opt := range opts {
		opt(client)
	}

	if cfg.Breaker {
		var metrics *breakerMetrics
		if client.registerer != nil {
			if metrics, err = newBreakerMetrics(client.registerer); err != nil {
				return nil, err
			}
		}
		client.breaker = newBreaker(client.breakerSettings, metrics, logger)
	}
	return client, nil
}

// CSRFToken returns the csrf_token cookie held for the server, or "".
func (client *Client) CSRFToken() string {
	for _, cookie := range client.jar.Cookies(client.baseURL) {
		if cookie.Name == CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

// # Transport

func (client *Client) get(ctx context.Context, path string, out any) error {
	return client.do(ctx, http.MethodGet, path, "", nil, out)
}

// mutate sends an unsafe request. An empty token fails without a request.
func (client *Client) mutate(ctx context.Context, method, path, csrfToken string, body, out any) error {
	if csrfToken == "" {
		return ErrNoCSRFToken
	}
	return client.do(ctx, method, path, csrfToken, body, out)
}

func (client *Client) do(ctx context.Context, method, path, csrfToken string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("apiclient: build %s %s: %w", method, path, err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if csrfToken != "" {
		request.Header.Set(CSRFHeaderName, csrfToken)
	}

	client.logger.DebugContext(ctx, "api_request", slog.String("method", method), slog.String("path", path))

	response, err := client.send(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	return client.decode(ctx, response, out)
}

// send runs the request through the breaker when one is configured.
// 5xx responses are decoded inside the breaker so they count as failures.
func (client *Client) send(request *http.Request) (*http.Response, error) {
	if client.breaker == nil {
		response, err := client.http.Do(request)
		if err != nil {
			return nil, fmt.Errorf("apiclient: %s %s: %w", request.Method, request.URL.Path, err)
		}
		return response, nil
	}

	response, err := client.breaker.Execute(func() (*http.Response, error) {
		response, err := client.http.Do(request)
		if err != nil {
			return nil, fmt.Errorf("apiclient: %s %s: %w", request.Method, request.URL.Path, err)
		}
		if response.StatusCode >= http.StatusInternalServerError {
			defer response.Body.Close()
			return nil, client.decode(request.Context(), response, nil)
		}
		return response, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return response, err
}

type errorEnvelope struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Errors  map[string]string `json:"errors"`
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

func (client *Client) decode(ctx context.Context, response *http.Response, out any) error {
	raw, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(response.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		serverErr := &ServerError{Status: response.StatusCode, Excerpt: excerpt(raw)}
		client.logger.ErrorContext(ctx, "api_non_json_response",
			slog.Int("status", response.StatusCode),
			slog.String("content_type", response.Header.Get("Content-Type")),
			slog.String("excerpt", serverErr.Excerpt),
		)
		return serverErr
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return &ServerError{Status: response.StatusCode, Excerpt: excerpt(raw)}
		}
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		apiErr := &APIError{
			Status:  response.StatusCode,
			Code:    envelope.Code,
			Message: message,
			Fields:  envelope.Errors,
		}
		client.logger.DebugContext(ctx, "api_error_response",
			slog.Int("status", apiErr.Status),
			slog.String("code", apiErr.Code),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	err = json.Unmarshal(raw, &envelope)
	if err == nil && len(envelope.Data) > 0 {
		err = json.Unmarshal(envelope.Data, out)
	}
	if err != nil {
		serverErr := &ServerError{Status: response.StatusCode, Excerpt: excerpt(raw)}
		client.logger.ErrorContext(ctx, "api_malformed_response",
			slog.Int("status", response.StatusCode),
			slog.String("error", err.Error()),
			slog.String("excerpt", serverErr.Excerpt),
		)
		return serverErr
	}
	return nil
}

func excerpt(raw []byte) string {
	text := strings.TrimSpace(string(raw))
	if len(text) > excerptLen {
		return text[:excerptLen]
	}
	return text
}
