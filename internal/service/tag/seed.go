package tag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pawerflow/question-service/internal/domain"
)

// Seed applies catalog idempotently in one transaction. Slugs that already
// exist with the same attributes are skipped; an existing slug with a
// different name or description fails the whole seed with
// domain.ErrDuplicateSlug.
func (r *Registry) Seed(ctx context.Context, catalog domain.TagCatalog) error {
	if err := catalog.Validate(); err != nil {
		return err
	}

	slugs := make([]string, len(catalog.Tags))
	for i, def := range catalog.Tags {
		slugs[i] = def.Slug
	}

	var inserted int
	err := r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := r.tags.GetBySlugs(txCtx, slugs)
		if err != nil {
			return fmt.Errorf("load existing tags: %w", err)
		}
		bySlug := make(map[string]domain.Tag, len(existing))
		for _, t := range existing {
			bySlug[t.Slug] = t
		}

		var missing []domain.Tag
		for _, def := range catalog.Tags {
			cur, ok := bySlug[def.Slug]
			if !ok {
				missing = append(missing, domain.NewTag(def))
				continue
			}
			if !cur.SameAttributes(def) {
				return fmt.Errorf("seed tag %q: %w", def.Slug, domain.ErrDuplicateSlug)
			}
		}

		inserted, err = r.tags.InsertMissing(txCtx, missing)
		if err != nil {
			return fmt.Errorf("insert tags: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.log.InfoContext(ctx, "tag catalog applied",
		slog.Int("catalog_version", catalog.Version),
		slog.Int("tags", len(catalog.Tags)),
		slog.Int("inserted", inserted),
	)
	return nil
}
