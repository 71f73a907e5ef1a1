package question

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// GetQuestion returns a question with its answers in insertion order.
// Anonymous callers are allowed.
//
// The question and its answers are read in one transaction under a shared
// lock on the question, so the result never shows a half-applied accept.
func (s *Service) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("question_id", "required")
	}

	var q *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.questions.GetForShare(txCtx, id)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		q.Answers, err = s.answers.ListByQuestionID(txCtx, id)
		if err != nil {
			return fmt.Errorf("list answers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return q, nil
}

// RecordView adds exactly one view to the question and returns the new
// count. Concurrent calls never lose an increment. Anonymous callers are
// allowed.
func (s *Service) RecordView(ctx context.Context, id uuid.UUID) (int, error) {
	if id == uuid.Nil {
		return 0, domain.NewValidationError("question_id", "required")
	}

	views, err := s.questions.IncrementViews(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("record view: %w", err)
	}
	return views, nil
}
