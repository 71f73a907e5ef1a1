package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// DeleteQuestion removes a question together with all of its answers and
// decrements the usage counter of every tag it referenced, as one unit.
// Only the asker may delete.
func (s *Service) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	who, err := caller(ctx)
	if err != nil {
		return err
	}

	if id == uuid.Nil {
		return domain.NewValidationError("question_id", "required")
	}

	var answersDeleted int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.questions.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("lock question: %w", err)
		}
		if !q.IsAskedBy(who.UserID) {
			return domain.ErrForbidden
		}

		answersDeleted, err = s.answers.DeleteByQuestionID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}
		if err := s.tags.DecrementUsage(txCtx, q.TagSlugs); err != nil {
			return fmt.Errorf("decrement tag usage: %w", err)
		}
		if err := s.questions.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("user_id", who.UserID),
		slog.String("question_id", id.String()),
		slog.Int("answers_deleted", answersDeleted),
	)

	return nil
}
