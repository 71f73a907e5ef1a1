package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// CreateQuestion asks a new question as the authenticated caller. Tags are
// resolved and their usage counters incremented in the same transaction as
// the insert, so an unknown tag leaves every counter untouched.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	q, err := domain.NewQuestion(
		uuid.New(),
		input.Title,
		input.Content,
		who.UserID,
		who.DisplayName,
		normalizeTags(input.Tags),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.tags.Resolve(txCtx, q.TagSlugs); err != nil {
			return err
		}
		if err := s.questions.Create(txCtx, q); err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		if err := s.tags.IncrementUsage(txCtx, q.TagSlugs); err != nil {
			return fmt.Errorf("increment tag usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	q.Answers = []domain.Answer{}

	s.log.InfoContext(ctx, "question created",
		slog.String("user_id", who.UserID),
		slog.String("question_id", q.ID.String()),
		slog.String("tags", strings.Join(q.TagSlugs, ",")),
	)

	return q, nil
}
