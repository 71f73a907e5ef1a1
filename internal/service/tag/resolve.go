package tag

import (
	"context"
	"fmt"

	"github.com/pawerflow/question-service/internal/domain"
)

// Resolve returns the tags for slugs in input order. The whole batch is
// checked before anything is returned: the first absent slug fails with
// *domain.UnknownTagError. Counters are not touched.
func (r *Registry) Resolve(ctx context.Context, slugs []string) ([]domain.Tag, error) {
	if len(slugs) == 0 {
		return []domain.Tag{}, nil
	}

	found, err := r.tags.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("resolve tags: %w", err)
	}
	bySlug := make(map[string]domain.Tag, len(found))
	for _, t := range found {
		bySlug[t.Slug] = t
	}

	out := make([]domain.Tag, 0, len(slugs))
	for _, slug := range slugs {
		t, ok := bySlug[slug]
		if !ok {
			return nil, &domain.UnknownTagError{Slug: slug}
		}
		out = append(out, t)
	}
	return out, nil
}
