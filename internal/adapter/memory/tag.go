package memory

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/pawerflow/question-service/internal/domain"
)

// tagEntry keeps the immutable tag attributes next to a lock-free counter.
// The slug map is only write-locked while inserting tags.
type tagEntry struct {
	tag   domain.Tag
	usage atomic.Int64
}

func (e *tagEntry) snapshot() domain.Tag {
	t := e.tag
	t.UsageCount = int(e.usage.Load())
	return t
}

// TagRepo is the in-memory tag registry store.
type TagRepo struct {
	s *Store
}

func (r *TagRepo) entry(slug string) (*tagEntry, bool) {
	r.s.tagsMu.RLock()
	defer r.s.tagsMu.RUnlock()
	e, ok := r.s.tags[slug]
	return e, ok
}

// GetBySlug returns one tag.
func (r *TagRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, ok := r.entry(slug)
	if !ok {
		return nil, fmt.Errorf("tag %s: %w", slug, domain.ErrTagNotFound)
	}
	t := e.snapshot()
	return &t, nil
}

// GetBySlugs returns the tags that exist among slugs.
func (r *TagRepo) GetBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []domain.Tag{}
	for _, slug := range slugs {
		if e, ok := r.entry(slug); ok {
			out = append(out, e.snapshot())
		}
	}
	return out, nil
}

// List returns every tag ordered by slug.
func (r *TagRepo) List(ctx context.Context) ([]domain.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.tagsMu.RLock()
	out := make([]domain.Tag, 0, len(r.s.tags))
	for _, e := range r.s.tags {
		out = append(out, e.snapshot())
	}
	r.s.tagsMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// InsertMissing inserts tags whose slug does not exist yet and returns the
// number inserted.
func (r *TagRepo) InsertMissing(ctx context.Context, tags []domain.Tag) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.tagsMu.Lock()
	defer r.s.tagsMu.Unlock()

	var inserted []string
	for _, t := range tags {
		if _, ok := r.s.tags[t.Slug]; ok {
			continue
		}
		t.UsageCount = 0
		r.s.tags[t.Slug] = &tagEntry{tag: t}
		inserted = append(inserted, t.Slug)
	}

	record(ctx, func() {
		r.s.tagsMu.Lock()
		for _, slug := range inserted {
			delete(r.s.tags, slug)
		}
		r.s.tagsMu.Unlock()
	})
	return len(inserted), nil
}

// IncrementUsage adds one to the counter of every slug and returns the slugs
// that were not found.
func (r *TagRepo) IncrementUsage(ctx context.Context, slugs []string) (missing []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, slug := range slugs {
		e, ok := r.entry(slug)
		if !ok {
			missing = append(missing, slug)
			continue
		}
		e.usage.Add(1)
		record(ctx, func() { e.usage.Add(-1) })
	}
	return missing, nil
}

// DecrementUsage subtracts one from the counter of every slug without going
// below zero. Returns the slugs that were clamped or not found.
func (r *TagRepo) DecrementUsage(ctx context.Context, slugs []string) (clamped []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, slug := range slugs {
		e, ok := r.entry(slug)
		if !ok || !decrementIfPositive(&e.usage) {
			clamped = append(clamped, slug)
			continue
		}
		record(ctx, func() { e.usage.Add(1) })
	}
	return clamped, nil
}

func decrementIfPositive(n *atomic.Int64) bool {
	for {
		cur := n.Load()
		if cur <= 0 {
			return false
		}
		if n.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}
