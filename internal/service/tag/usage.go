package tag

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/pawerflow/question-service/internal/domain"
)

// IncrementUsage adds one to the usage counter of every slug. Each counter
// is updated atomically. A slug that does not exist fails with
// *domain.UnknownTagError; callers run this inside the transaction that
// resolved the tags, so that failure rolls everything back.
func (r *Registry) IncrementUsage(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}

	missing, err := r.tags.IncrementUsage(ctx, sorted(slugs))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return &domain.UnknownTagError{Slug: missing[0]}
	}
	return nil
}

// DecrementUsage subtracts one from the usage counter of every slug, never
// going below zero. A counter that was already zero means it undercounted
// earlier; that is logged as a data integrity warning and not returned.
func (r *Registry) DecrementUsage(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}

	clamped, err := r.tags.DecrementUsage(ctx, sorted(slugs))
	if err != nil {
		return fmt.Errorf("decrement tag usage: %w", err)
	}
	for _, slug := range clamped {
		r.log.WarnContext(ctx, "tag usage count clamped at zero",
			slog.String("integrity", "usage_underflow"),
			slog.String("slug", slug),
		)
	}
	return nil
}

func sorted(slugs []string) []string {
	out := slices.Clone(slugs)
	slices.Sort(out)
	return out
}
