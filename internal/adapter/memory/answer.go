package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// AnswerRepo is the in-memory answer store.
type AnswerRepo struct {
	s *Store
}

// GetByID returns one answer.
func (r *AnswerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.answers[id]
	if !ok {
		return nil, fmt.Errorf("answer %s: %w", id, domain.ErrAnswerNotFound)
	}
	a = cloneAnswer(a)
	return &a, nil
}

// ListByQuestionID returns the answers of one question in insertion order.
func (r *AnswerRepo) ListByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	return r.ListByQuestionIDs(ctx, []uuid.UUID{questionID})
}

// ListByQuestionIDs returns the answers of several questions, grouped by
// question in the order of questionIDs.
func (r *AnswerRepo) ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []domain.Answer{}
	for _, qid := range questionIDs {
		for _, id := range r.s.answerIDs[qid] {
			out = append(out, cloneAnswer(r.s.answers[id]))
		}
	}
	return out, nil
}

// Create stores a new answer at the end of its question's answer list.
func (r *AnswerRepo) Create(ctx context.Context, a *domain.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questions[a.QuestionID]; !ok {
		return fmt.Errorf("question %s: %w", a.QuestionID, domain.ErrQuestionNotFound)
	}
	if _, ok := r.s.answers[a.ID]; ok {
		return fmt.Errorf("answer %s: %w", a.ID, domain.ErrAlreadyExists)
	}

	r.s.answers[a.ID] = cloneAnswer(*a)
	r.s.answerIDs[a.QuestionID] = append(r.s.answerIDs[a.QuestionID], a.ID)

	record(ctx, func() {
		r.s.mu.Lock()
		r.s.removeAnswer(a.QuestionID, a.ID)
		r.s.mu.Unlock()
	})
	return nil
}

// UpdateContent writes the content and update timestamp of an answer.
func (r *AnswerRepo) UpdateContent(ctx context.Context, a *domain.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.answers[a.ID]
	if !ok || prev.QuestionID != a.QuestionID {
		return fmt.Errorf("answer %s: %w", a.ID, domain.ErrAnswerNotFound)
	}
	next := cloneAnswer(prev)
	next.Content = a.Content
	next.UpdatedAt = cloneAnswer(*a).UpdatedAt
	r.s.answers[a.ID] = next

	record(ctx, func() {
		r.s.mu.Lock()
		if cur, ok := r.s.answers[a.ID]; ok {
			cur.Content, cur.UpdatedAt = prev.Content, prev.UpdatedAt
			r.s.answers[a.ID] = cur
		}
		r.s.mu.Unlock()
	})
	return nil
}

// SetAccepted makes answerID the only accepted answer of questionID, or
// clears acceptance when answerID is nil.
func (r *AnswerRepo) SetAccepted(ctx context.Context, questionID uuid.UUID, answerID *uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.answerIDs[questionID]
	if answerID != nil && !slices.Contains(ids, *answerID) {
		return fmt.Errorf("answer %s: %w", *answerID, domain.ErrAnswerNotFound)
	}

	prev := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		a := r.s.answers[id]
		prev[id] = a.IsAccepted
		a.IsAccepted = answerID != nil && id == *answerID
		r.s.answers[id] = a
	}

	record(ctx, func() {
		r.s.mu.Lock()
		for id, accepted := range prev {
			if a, ok := r.s.answers[id]; ok {
				a.IsAccepted = accepted
				r.s.answers[id] = a
			}
		}
		r.s.mu.Unlock()
	})
	return nil
}

// Delete removes one answer of a question.
func (r *AnswerRepo) Delete(ctx context.Context, questionID, answerID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.answers[answerID]
	if !ok || prev.QuestionID != questionID {
		return fmt.Errorf("answer %s: %w", answerID, domain.ErrAnswerNotFound)
	}
	prevIDs := slices.Clone(r.s.answerIDs[questionID])
	r.s.removeAnswer(questionID, answerID)

	record(ctx, func() {
		r.s.mu.Lock()
		r.s.answers[answerID] = prev
		r.s.answerIDs[questionID] = prevIDs
		r.s.mu.Unlock()
	})
	return nil
}

// DeleteByQuestionID removes every answer of a question and returns how many
// were deleted.
func (r *AnswerRepo) DeleteByQuestionID(ctx context.Context, questionID uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.answerIDs[questionID]
	removed := make([]domain.Answer, 0, len(ids))
	for _, id := range ids {
		removed = append(removed, r.s.answers[id])
		delete(r.s.answers, id)
	}
	delete(r.s.answerIDs, questionID)

	record(ctx, func() {
		r.s.mu.Lock()
		for _, a := range removed {
			r.s.answers[a.ID] = a
			r.s.answerIDs[questionID] = append(r.s.answerIDs[questionID], a.ID)
		}
		r.s.mu.Unlock()
	})
	return len(removed), nil
}

// AddVotes adds delta to the answer's vote total and returns the new total.
func (r *AnswerRepo) AddVotes(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.answers[id]
	if !ok {
		return 0, fmt.Errorf("answer %s: %w", id, domain.ErrAnswerNotFound)
	}
	a.Votes += delta
	r.s.answers[id] = a

	record(ctx, func() {
		r.s.mu.Lock()
		if cur, ok := r.s.answers[id]; ok {
			cur.Votes -= delta
			r.s.answers[id] = cur
		}
		r.s.mu.Unlock()
	})
	return a.Votes, nil
}

// removeAnswer must be called with s.mu held.
func (s *Store) removeAnswer(questionID, answerID uuid.UUID) {
	delete(s.answers, answerID)
	ids := slices.DeleteFunc(slices.Clone(s.answerIDs[questionID]), func(id uuid.UUID) bool {
		return id == answerID
	})
	if len(ids) == 0 {
		delete(s.answerIDs, questionID)
		return
	}
	s.answerIDs[questionID] = ids
}
