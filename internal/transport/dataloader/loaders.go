package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/pawerflow/question-service/internal/domain"
)

// Answers by QuestionID, in insertion order. Questions without answers get
// an empty slice.
func newAnswersBatchFn(repo answerRepo) dataloader.BatchFunc[uuid.UUID, []domain.Answer] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Answer] {
		answers, err := repo.ListByQuestionIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Answer](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Answer, len(keys))
		for _, a := range answers {
			grouped[a.QuestionID] = append(grouped[a.QuestionID], a)
		}

		results := make([]*dataloader.Result[[]domain.Answer], len(keys))
		for i, key := range keys {
			if v, ok := grouped[key]; ok {
				results[i] = &dataloader.Result[[]domain.Answer]{Data: v}
			} else {
				results[i] = &dataloader.Result[[]domain.Answer]{Data: []domain.Answer{}}
			}
		}
		return results
	}
}

// Tags by slug. A slug missing from the registry resolves to an error for
// that key only.
func newTagsBatchFn(repo tagRepo) dataloader.BatchFunc[string, domain.Tag] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[domain.Tag] {
		tags, err := repo.GetBySlugs(ctx, keys)
		if err != nil {
			return errorResults[domain.Tag](len(keys), err)
		}

		bySlug := make(map[string]domain.Tag, len(tags))
		for _, t := range tags {
			bySlug[t.Slug] = t
		}

		results := make([]*dataloader.Result[domain.Tag], len(keys))
		for i, key := range keys {
			if t, ok := bySlug[key]; ok {
				results[i] = &dataloader.Result[domain.Tag]{Data: t}
			} else {
				results[i] = &dataloader.Result[domain.Tag]{Error: fmt.Errorf("tag %q: %w", key, domain.ErrTagNotFound)}
			}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
