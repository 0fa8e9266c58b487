// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command pokedex is a terminal client for the Pokédex API.
//
// With arguments it runs one command and exits:
//
//	pokedex list
//	pokedex show 25
//
// Without arguments it starts an interactive shell, which keeps the login
// between commands. Type "help" for the command list.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/taibuivan/pokedex/pkg/apiclient"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("dotenv_load_failed", slog.Any("error", err))
	}

	cfg, err := apiclient.LoadConfig()
	if err != nil {
		slog.Error("load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	client, err := apiclient.New(cfg, logger)
	if err != nil {
		logger.Error("create client", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(client, newTerminal(os.Stdin, os.Stdout, os.Stderr), logger)
	app.restore(ctx)

	if len(os.Args) > 1 {
		err = app.run(ctx, os.Args[1:])
	} else {
		err = app.shell(ctx)
	}
	if err != nil {
		os.Exit(1)
	}
}
