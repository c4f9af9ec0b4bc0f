// Package main is the seed command. It migrates the database named by
// DATABASE_URL and replaces its catalog with the dataset document at
// DATASET_PATH (JSON or YAML).
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/Abdullahever182/travel-recomend/internal/config"
	"github.com/Abdullahever182/travel-recomend/internal/repo"
	"github.com/Abdullahever182/travel-recomend/migrations"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// config.Load rejects DATABASE_URL together with DATASET_PATH, which is
	// exactly what seeding needs, so the two are read directly here.
	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("required environment variables not set: DATABASE_URL")
	}
	path := os.Getenv("DATASET_PATH")
	if path == "" {
		path = config.DefaultDatasetPath
	}

	if err := migrate(ctx, dsn); err != nil {
		return err
	}

	ds, err := repo.NewFileRepo(path).Load(ctx)
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open pool: %w", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := repo.NewPostgresRepo(tx).Replace(ctx, ds); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Info("catalog seeded",
		"path", path,
		"beaches", len(ds.Beaches),
		"temples", len(ds.Temples),
		"countries", len(ds.Countries),
	)
	return nil
}

// migrate applies every pending migration. goose needs a database/sql
// handle, so this opens one through the pgx stdlib driver.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open sql db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
