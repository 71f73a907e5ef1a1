package question

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pawerflow/question-service/internal/domain"
)

// ListQuestions returns one page of questions, newest first, optionally
// filtered by tag. Answers are not loaded. A zero limit means the configured
// default; limits above the configured maximum are clamped.
func (s *Service) ListQuestions(ctx context.Context, input ListQuestionsInput) (*domain.QuestionPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.QuestionFilter{
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if filter.Limit == 0 {
		filter.Limit = s.cfg.DefaultPageSize
	}
	filter.Limit = min(filter.Limit, s.cfg.MaxPageSize)
	if input.Tag != nil {
		slug := domain.NormalizeSlug(*input.Tag)
		filter.TagSlug = &slug
	}

	page := domain.QuestionPage{Limit: filter.Limit, Offset: filter.Offset}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page.Questions, err = s.questions.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		page.Total, err = s.questions.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &page, nil
}
