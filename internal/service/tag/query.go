package tag

import (
	"context"
	"strings"

	"github.com/pawerflow/question-service/internal/domain"
)

// List returns every tag ordered by slug.
func (r *Registry) List(ctx context.Context) ([]domain.Tag, error) {
	return r.tags.List(ctx)
}

// GetBySlug returns one tag. Returns domain.ErrTagNotFound if absent.
func (r *Registry) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	return r.tags.GetBySlug(ctx, slug)
}
