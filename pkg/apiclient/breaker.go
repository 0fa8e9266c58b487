// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apiclient

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
)

// BreakerSettings tunes the circuit breaker guarding the transport.
type BreakerSettings struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerSettings trips after half of at least five calls fail.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "pokedex-api",
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// breakerMetrics exports the breaker state when the caller supplies a
// registry through [WithMetrics].
type breakerMetrics struct {
	state *prometheus.GaugeVec
}

func newBreakerMetrics(registerer prometheus.Registerer) (*breakerMetrics, error) {
	state := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pokedex_client_breaker_state",
			Help: "Circuit breaker state of the API client (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
	if err := registerer.Register(state); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("apiclient: register breaker gauge: %w", err)
		}
		existing, ok := already.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return nil, fmt.Errorf("apiclient: register breaker gauge: %w", err)
		}
		state = existing
	}
	return &breakerMetrics{state: state}, nil
}

func (m *breakerMetrics) set(name string, state gobreaker.State) {
	if m == nil {
		return
	}
	m.state.WithLabelValues(name).Set(stateValue(state))
}

func stateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func newBreaker(settings BreakerSettings, metrics *breakerMetrics, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= settings.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("breaker_state_change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.set(name, to)
		},
	})
	metrics.set(settings.Name, gobreaker.StateClosed)
	return breaker
}
