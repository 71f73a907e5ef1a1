// Package dataloader provides per-request DataLoaders that batch the
// lookups needed to render question listings into single repository calls.
// Loaders call repositories directly, bypassing the service layer; they only
// serve public read data.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/pawerflow/question-service/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type answerRepo interface {
	ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error)
}

type tagRepo interface {
	GetBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Answers answerRepo
	Tags    tagRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	AnswersByQuestionID *dataloader.Loader[uuid.UUID, []domain.Answer]
	TagsBySlug          *dataloader.Loader[string, domain.Tag]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AnswersByQuestionID: newLoader(newAnswersBatchFn(repos.Answers)),
		TagsBySlug:          newLoader(newTagsBatchFn(repos.Tags)),
	}
}

func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
