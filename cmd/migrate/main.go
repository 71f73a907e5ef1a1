// Command migrate manages the database schema using the embedded goose
// migrations.
//
// Usage:
//
//	migrate up       apply all pending migrations
//	migrate down     roll back the latest migration
//	migrate status   print the state of every migration
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/pawerflow/question-service/internal/adapter/postgres"
	"github.com/pawerflow/question-service/internal/app"
	"github.com/pawerflow/question-service/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall command timeout")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate [-timeout d] up|down|status")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger, command); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, command string) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	provider, db, err := postgres.NewMigrationProvider(pool)
	if err != nil {
		return err
	}
	defer db.Close()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		logResults(logger, results)
		return err
	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			logResults(logger, []*goose.MigrationResult{result})
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func logResults(logger *slog.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		logger.Info("migration",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
}
