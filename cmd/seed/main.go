// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads the demo users, Pokémon, reviews, images and lists.
//
// Run it after the API has applied migrations, or pass -migrate to apply them
// first. With -undo every table is truncated instead. With -reset the schema is
// rebuilt from the migrations before seeding.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/pokedex/internal/platform/constants"
	"github.com/taibuivan/pokedex/internal/platform/migration"
	pgstore "github.com/taibuivan/pokedex/internal/platform/postgres"
	"github.com/taibuivan/pokedex/internal/seed"
)

type seedConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func main() {
	undo := flag.Bool("undo", false, "truncate all tables instead of seeding")
	migrate := flag.Bool("migrate", false, "apply migrations before seeding")
	reset := flag.Bool("reset", false, "revert and reapply all migrations before seeding")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn("dotenv_load_failed", slog.Any("error", err))
	}

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		fail(log, err, "load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrator := migration.New(cfg.DatabaseURL, cfg.MigrationPath, log)
	switch {
	case *reset:
		if err := migrator.Reset(); err != nil {
			fail(log, err, "reset schema")
		}
	case *migrate:
		if err := migrator.Up(); err != nil {
			fail(log, err, "run migrations")
		}
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		fail(log, err, "connect to postgres")
	}
	defer pool.Close()

	seeder := seed.New(pool, log)
	if *undo {
		err = seeder.Undo(ctx)
	} else {
		err = seeder.Run(ctx)
	}
	if err != nil {
		pool.Close()
		fail(log, err, "seed")
	}
}

func fail(log *slog.Logger, err error, step string) {
	log.Error("seed failure", slog.String("step", step), slog.Any("error", err))
	os.Exit(1)
}
