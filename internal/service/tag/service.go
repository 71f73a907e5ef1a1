package tag

import (
	"context"
	"log/slog"

	"github.com/pawerflow/question-service/internal/domain"
)

type tagRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	InsertMissing(ctx context.Context, tags []domain.Tag) (int, error)
	IncrementUsage(ctx context.Context, slugs []string) (missing []string, err error)
	DecrementUsage(ctx context.Context, slugs []string) (clamped []string, err error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Registry owns the tag catalog and its usage counters.
type Registry struct {
	tags tagRepo
	tx   txManager
	log  *slog.Logger
}

// NewRegistry creates a new tag Registry.
func NewRegistry(log *slog.Logger, tags tagRepo, tx txManager) *Registry {
	return &Registry{
		tags: tags,
		tx:   tx,
		log:  log.With("service", "tag"),
	}
}
