package question

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pawerflow/question-service/internal/domain"
)

// EditQuestion changes the title, content and/or tags of a question. Only
// the asker may edit. When the tag set changes, only the added slugs are
// incremented and only the removed slugs are decremented.
func (s *Service) EditQuestion(ctx context.Context, input EditQuestionInput) (*domain.Question, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	edit := input.edit()

	var (
		q              *domain.Question
		added, removed []string
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

		if edit.TagSlugs != nil {
			if _, err := s.tags.Resolve(txCtx, edit.TagSlugs); err != nil {
				return err
			}
		}

		added, removed = q.ApplyEdit(edit, time.Now().UTC())

		if err := s.tags.IncrementUsage(txCtx, added); err != nil {
			return fmt.Errorf("increment tag usage: %w", err)
		}
		if err := s.tags.DecrementUsage(txCtx, removed); err != nil {
			return fmt.Errorf("decrement tag usage: %w", err)
		}
		if err := s.questions.Update(txCtx, q); err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question edited",
		slog.String("user_id", who.UserID),
		slog.String("question_id", q.ID.String()),
		slog.Int("tags_added", len(added)),
		slog.Int("tags_removed", len(removed)),
	)

	return q, nil
}
