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

// AddAnswer appends a new, unaccepted answer to a question as the
// authenticated caller. A question deleted concurrently fails with
// domain.ErrQuestionNotFound.
func (s *Service) AddAnswer(ctx context.Context, input AddAnswerInput) (*domain.Answer, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := domain.NewAnswer(uuid.New(), input.QuestionID, input.Content, who.UserID, who.DisplayName, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.questions.GetForUpdate(txCtx, input.QuestionID); err != nil {
			return fmt.Errorf("lock question: %w", err)
		}
		if err := s.answers.Create(txCtx, &a); err != nil {
			return fmt.Errorf("create answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer added",
		slog.String("user_id", who.UserID),
		slog.String("question_id", input.QuestionID.String()),
		slog.String("answer_id", a.ID.String()),
	)

	return &a, nil
}

// EditAnswer replaces the content of an answer. Only its responder may edit.
func (s *Service) EditAnswer(ctx context.Context, input EditAnswerInput) (*domain.Answer, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var a *domain.Answer
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.questions.GetForUpdate(txCtx, input.QuestionID); err != nil {
			return fmt.Errorf("lock question: %w", err)
		}

		var err error
		a, err = s.answers.GetByID(txCtx, input.AnswerID)
		if err != nil {
			return fmt.Errorf("get answer: %w", err)
		}
		if a.QuestionID != input.QuestionID {
			return fmt.Errorf("answer %s: %w", input.AnswerID, domain.ErrAnswerNotFound)
		}
		if a.ResponderID != who.UserID {
			return domain.ErrForbidden
		}

		now := time.Now().UTC()
		a.Content = strings.TrimSpace(input.Content)
		a.UpdatedAt = &now
		if err := s.answers.UpdateContent(txCtx, a); err != nil {
			return fmt.Errorf("update answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answer edited",
		slog.String("user_id", who.UserID),
		slog.String("question_id", input.QuestionID.String()),
		slog.String("answer_id", input.AnswerID.String()),
	)

	return a, nil
}

// DeleteAnswer removes one answer. Only its responder may delete it. If it
// was the accepted answer, the question no longer has one.
func (s *Service) DeleteAnswer(ctx context.Context, questionID, answerID uuid.UUID) error {
	who, err := caller(ctx)
	if err != nil {
		return err
	}

	var errs []domain.FieldError
	if questionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if answerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "answer_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	var wasAccepted bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.lockAggregate(txCtx, questionID)
		if err != nil {
			return err
		}

		target := q.FindAnswer(answerID)
		if target == nil {
			return fmt.Errorf("answer %s: %w", answerID, domain.ErrAnswerNotFound)
		}
		if target.ResponderID != who.UserID {
			return domain.ErrForbidden
		}

		removed, err := q.RemoveAnswer(answerID)
		if err != nil {
			return err
		}
		if err := s.answers.Delete(txCtx, questionID, answerID); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}

		wasAccepted = removed.IsAccepted
		if wasAccepted {
			if err := s.questions.Update(txCtx, q); err != nil {
				return fmt.Errorf("update question: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "answer deleted",
		slog.String("user_id", who.UserID),
		slog.String("question_id", questionID.String()),
		slog.String("answer_id", answerID.String()),
		slog.Bool("was_accepted", wasAccepted),
	)

	return nil
}
