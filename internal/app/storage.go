package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pawerflow/question-service/internal/adapter/memory"
	"github.com/pawerflow/question-service/internal/adapter/postgres"
	answerrepo "github.com/pawerflow/question-service/internal/adapter/postgres/answer"
	questionrepo "github.com/pawerflow/question-service/internal/adapter/postgres/question"
	tagrepo "github.com/pawerflow/question-service/internal/adapter/postgres/tag"
	"github.com/pawerflow/question-service/internal/config"
	"github.com/pawerflow/question-service/internal/service/question"
	"github.com/pawerflow/question-service/internal/service/tag"
	"github.com/pawerflow/question-service/internal/service/vote"
	"github.com/pawerflow/question-service/internal/transport/dataloader"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// components holds everything the transport layer needs from the selected
// storage driver.
type components struct {
	registry    *tag.Registry
	questions   *question.Service
	loaderRepos *dataloader.Repos
	storage     pinger
	close       func()
}

// openStorage connects the configured storage driver and builds the domain
// services on top of it.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*components, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		log.InfoContext(ctx, "database connected",
			slog.Int("max_conns", int(cfg.Database.MaxConns)),
		)

		if cfg.Database.MigrateOnStartup {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}

		return postgresComponents(pool, cfg, log), nil

	case config.StorageDriverMemory:
		log.WarnContext(ctx, "using in-memory storage, data is lost on restart")

		store := memory.NewStore()
		tx := store.TxManager()

		registry := tag.NewRegistry(log, store.Tags(), tx)
		ledger := vote.NewLedger(log, store.Questions(), store.Answers())

		return &components{
			registry:    registry,
			questions:   question.NewService(log, store.Questions(), store.Answers(), registry, ledger, tx, cfg.Questions),
			loaderRepos: &dataloader.Repos{Answers: store.Answers(), Tags: store.Tags()},
			storage:     store,
			close:       func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// postgresComponents builds the services on an open pool. The pool is closed
// by components.close.
func postgresComponents(pool *pgxpool.Pool, cfg *config.Config, log *slog.Logger) *components {
	questions := questionrepo.New(pool)
	answers := answerrepo.New(pool)
	tags := tagrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	registry := tag.NewRegistry(log, tags, tx)
	ledger := vote.NewLedger(log, questions, answers)

	return &components{
		registry:    registry,
		questions:   question.NewService(log, questions, answers, registry, ledger, tx, cfg.Questions),
		loaderRepos: &dataloader.Repos{Answers: answers, Tags: tags},
		storage:     pool,
		close:       pool.Close,
	}
}
