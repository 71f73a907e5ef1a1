package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pawerflow/question-service/internal/domain"
)

// AcceptAnswer marks one answer as the accepted answer of its question,
// clearing any previous one. A nil AnswerID clears acceptance. Only the
// asker may accept; anyone else gets domain.ErrForbidden and nothing
// changes. Accepting the already accepted answer is a no-op.
func (s *Service) AcceptAnswer(ctx context.Context, input AcceptAnswerInput) (*domain.Question, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		q       *domain.Question
		changed bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		q, err = s.lockAggregate(txCtx, input.QuestionID)
		if err != nil {
			return err
		}
		if !q.IsAskedBy(who.UserID) {
			return domain.ErrForbidden
		}

		changed, err = q.AcceptAnswer(input.AnswerID)
		if err != nil {
			return fmt.Errorf("accept answer %s: %w", *input.AnswerID, err)
		}
		if !changed {
			return nil
		}
		if err := q.CheckInvariants(); err != nil {
			return fmt.Errorf("accept answer: %w", err)
		}

		if err := s.answers.SetAccepted(txCtx, q.ID, input.AnswerID); err != nil {
			return fmt.Errorf("set accepted answer: %w", err)
		}
		if err := s.questions.Update(txCtx, q); err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	accepted := ""
	if input.AnswerID != nil {
		accepted = input.AnswerID.String()
	}
	s.log.InfoContext(ctx, "answer accepted",
		slog.String("user_id", who.UserID),
		slog.String("question_id", q.ID.String()),
		slog.String("answer_id", accepted),
		slog.Bool("changed", changed),
	)

	return q, nil
}
