package memory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// QuestionRepo is the in-memory question store.
type QuestionRepo struct {
	s *Store
}

// GetByID returns a copy of the question without answers.
func (r *QuestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q, ok := r.s.questions[id]
	if !ok {
		return nil, fmt.Errorf("question %s: %w", id, domain.ErrQuestionNotFound)
	}
	return cloneQuestion(q), nil
}

// GetForUpdate locks the question until the surrounding transaction ends,
// then returns a copy of it.
func (r *QuestionRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	t := txFromCtx(ctx)
	if t == nil {
		return nil, errors.New("question: GetForUpdate called outside a transaction")
	}
	if err := t.lock(ctx, r.s.locks, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetForShare returns a copy of the question while holding its lock until
// the surrounding transaction ends. The store has a single lock mode, so
// readers taking it are serialized with writers and with each other.
func (r *QuestionRepo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	t := txFromCtx(ctx)
	if t == nil {
		return nil, errors.New("question: GetForShare called outside a transaction")
	}
	if err := t.lock(ctx, r.s.locks, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// List returns questions newest first, optionally filtered by tag slug.
func (r *QuestionRepo) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	matched := r.matching(filter)
	r.s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return bytes.Compare(a.ID[:], b.ID[:]) > 0
	})

	out := []*domain.Question{}
	if filter.Offset >= len(matched) {
		return out, nil
	}
	end := len(matched)
	if filter.Limit > 0 && filter.Offset+filter.Limit < end {
		end = filter.Offset + filter.Limit
	}
	return append(out, matched[filter.Offset:end]...), nil
}

// Count returns the number of questions matching filter, ignoring paging.
func (r *QuestionRepo) Count(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.matching(filter)), nil
}

// matching must be called with r.s.mu held.
func (r *QuestionRepo) matching(filter domain.QuestionFilter) []*domain.Question {
	var out []*domain.Question
	for _, q := range r.s.questions {
		if filter.TagSlug != nil && !slices.Contains(q.TagSlugs, *filter.TagSlug) {
			continue
		}
		out = append(out, cloneQuestion(q))
	}
	return out
}

// Create stores a new question. Answers on q are ignored.
func (r *QuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.questions[q.ID]; ok {
		return fmt.Errorf("question %s: %w", q.ID, domain.ErrAlreadyExists)
	}
	r.s.questions[q.ID] = *cloneQuestion(*q)

	record(ctx, func() {
		r.s.mu.Lock()
		delete(r.s.questions, q.ID)
		r.s.mu.Unlock()
	})
	return nil
}

// Update writes the editable fields of q if the stored version still equals
// q.Version, then bumps the version. Counters are never written here.
func (r *QuestionRepo) Update(ctx context.Context, q *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.questions[q.ID]
	if !ok {
		return fmt.Errorf("question %s: %w", q.ID, domain.ErrQuestionNotFound)
	}
	if prev.Version != q.Version {
		return fmt.Errorf("question %s version %d: %w", q.ID, q.Version, domain.ErrConflict)
	}

	next := *cloneQuestion(prev)
	next.Title = q.Title
	next.Content = q.Content
	next.TagSlugs = slices.Clone(q.TagSlugs)
	next.UpdatedAt = cloneQuestion(*q).UpdatedAt
	next.HasAcceptedAnswer = q.HasAcceptedAnswer
	next.Version++
	r.s.questions[q.ID] = next
	q.Version = next.Version

	record(ctx, func() {
		r.s.mu.Lock()
		cur, ok := r.s.questions[q.ID]
		if ok {
			// keep counters that moved outside this transaction
			prev.ViewCount, prev.Votes = cur.ViewCount, cur.Votes
			r.s.questions[q.ID] = prev
		}
		r.s.mu.Unlock()
	})
	return nil
}

// Delete removes the question. Its answers must be deleted by the caller.
func (r *QuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.questions[id]
	if !ok {
		return fmt.Errorf("question %s: %w", id, domain.ErrQuestionNotFound)
	}
	delete(r.s.questions, id)

	record(ctx, func() {
		r.s.mu.Lock()
		r.s.questions[id] = prev
		r.s.mu.Unlock()
	})
	return nil
}

// IncrementViews adds one view and returns the new count.
func (r *QuestionRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	return r.addToCounter(ctx, id, func(q *domain.Question) *int { return &q.ViewCount }, 1)
}

// AddVotes adds delta to the vote total and returns the new total.
func (r *QuestionRepo) AddVotes(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.addToCounter(ctx, id, func(q *domain.Question) *int { return &q.Votes }, delta)
}

func (r *QuestionRepo) addToCounter(ctx context.Context, id uuid.UUID, field func(*domain.Question) *int, delta int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.questions[id]
	if !ok {
		return 0, fmt.Errorf("question %s: %w", id, domain.ErrQuestionNotFound)
	}
	*field(&q) += delta
	r.s.questions[id] = q

	record(ctx, func() {
		r.s.mu.Lock()
		if cur, ok := r.s.questions[id]; ok {
			*field(&cur) -= delta
			r.s.questions[id] = cur
		}
		r.s.mu.Unlock()
	})
	return *field(&q), nil
}
