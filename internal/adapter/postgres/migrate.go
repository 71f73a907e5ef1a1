package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pawerflow/question-service/migrations"
)

// NewMigrationProvider opens a database/sql handle on top of pool (goose
// requires *sql.DB) and returns a goose provider over the embedded
// migrations. The caller must close the returned *sql.DB.
func NewMigrationProvider(pool *pgxpool.Pool) (*goose.Provider, *sql.DB, error) {
	db := stdlib.OpenDBFromPool(pool)

	// goose.NewProvider handles $$-delimited PL/pgSQL bodies, unlike the
	// legacy goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, db, nil
}

// Migrate applies all pending migrations and logs each applied version.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	provider, db, err := NewMigrationProvider(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if err != nil {
		log.ErrorContext(ctx, "migration failed", slog.String("error", err.Error()))
		return MapError(fmt.Errorf("goose up: %w", err))
	}

	return nil
}
