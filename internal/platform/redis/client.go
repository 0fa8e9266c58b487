// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the client behind the session store.

Each login session is a key with a TTL, so expiry and logout never touch
PostgreSQL. Losing Redis signs everyone out but loses no catalog data.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Options tunes the connection pool. Zero fields keep the go-redis defaults.
type Options struct {
	PoolSize     int
	MinIdleConns int
	OpTimeout    time.Duration
}

// NewClient parses redisURL, applies opts and pings once before returning.
func NewClient(ctx context.Context, redisURL string, opts Options, logger *slog.Logger) (*redis.Client, error) {
	parsed, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}
	apply(parsed, opts)

	client := redis.NewClient(parsed)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", parsed.Addr),
		slog.Int("db", parsed.DB),
		slog.Int("pool_size", parsed.PoolSize),
	)
	return client, nil
}

func apply(parsed *redis.Options, opts Options) {
	if opts.PoolSize > 0 {
		parsed.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		parsed.MinIdleConns = opts.MinIdleConns
	}
	if opts.OpTimeout > 0 {
		parsed.DialTimeout = opts.OpTimeout
		parsed.ReadTimeout = opts.OpTimeout
		parsed.WriteTimeout = opts.OpTimeout
	}
}

// Ping reports whether client answers within two seconds.
func Ping(ctx context.Context, client *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
