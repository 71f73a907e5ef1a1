// Package tag implements the tag registry store using PostgreSQL.
// Usage counters are changed with atomic per-row UPDATEs, so concurrent
// questions touching the same slug never lose an increment. Rows are locked
// in slug order to keep overlapping tag sets from deadlocking.
package tag

import (
	"context"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pawerflow/question-service/internal/adapter/postgres"
	"github.com/pawerflow/question-service/internal/domain"
)

var columns = []string{"id", "slug", "name", "description", "usage_count"}

type row struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	UsageCount  int       `db:"usage_count"`
}

func (r row) toDomain() domain.Tag {
	return domain.Tag{
		ID:          r.ID,
		Slug:        r.Slug,
		Name:        r.Name,
		Description: r.Description,
		UsageCount:  r.UsageCount,
	}
}

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tag repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetBySlug returns one tag. Returns domain.ErrNotFound if absent.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("tags").
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tag query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, mapError(err, slug)
	}

	t := res.toDomain()
	return &t, nil
}

// GetBySlugs returns the tags that exist among slugs, in no particular order.
// Missing slugs are simply absent from the result.
func (r *Repo) GetBySlugs(ctx context.Context, slugs []string) ([]domain.Tag, error) {
	if len(slugs) == 0 {
		return []domain.Tag{}, nil
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From("tags").
		Where(sq.Expr("slug = ANY(?)", slugs)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get tags query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("get tags by slugs: %w", err))
	}

	return toDomainTags(rows), nil
}

// List returns every tag ordered by slug.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("tags").
		OrderBy("slug").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tags query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list tags: %w", err))
	}

	return toDomainTags(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// InsertMissing inserts tags whose slug does not exist yet. Existing slugs
// are left untouched. Returns the number of inserted rows.
func (r *Repo) InsertMissing(ctx context.Context, tags []domain.Tag) (int, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	b := postgres.Builder().
		Insert("tags").
		Columns(columns...)
	for _, t := range tags {
		b = b.Values(t.ID, t.Slug, t.Name, t.Description, 0)
	}

	query, args, err := b.Suffix("ON CONFLICT (slug) DO NOTHING").ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert tags query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(fmt.Errorf("insert tags: %w", err))
	}

	return int(tag.RowsAffected()), nil
}

// IncrementUsage adds one to the counter of every slug and returns the slugs
// that were not found.
func (r *Repo) IncrementUsage(ctx context.Context, slugs []string) (missing []string, err error) {
	query := `UPDATE tags t SET usage_count = t.usage_count + 1
		FROM (SELECT slug FROM tags WHERE slug = ANY($1) ORDER BY slug FOR UPDATE) l
		WHERE t.slug = l.slug RETURNING t.slug`
	updated, err := r.updateUsage(ctx, query, slugs)
	if err != nil {
		return nil, fmt.Errorf("increment tag usage: %w", err)
	}
	return difference(slugs, updated), nil
}

// DecrementUsage subtracts one from the counter of every slug, never going
// below zero. Returns the slugs that were not decremented because their
// counter was already zero or the tag does not exist.
func (r *Repo) DecrementUsage(ctx context.Context, slugs []string) (clamped []string, err error) {
	query := `UPDATE tags t SET usage_count = t.usage_count - 1
		FROM (SELECT slug FROM tags WHERE slug = ANY($1) ORDER BY slug FOR UPDATE) l
		WHERE t.slug = l.slug AND t.usage_count > 0 RETURNING t.slug`
	updated, err := r.updateUsage(ctx, query, slugs)
	if err != nil {
		return nil, fmt.Errorf("decrement tag usage: %w", err)
	}
	return difference(slugs, updated), nil
}

func (r *Repo) updateUsage(ctx context.Context, query string, slugs []string) ([]string, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var updated []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, slugs); err != nil {
		return nil, postgres.MapError(err)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func toDomainTags(rows []row) []domain.Tag {
	tags := make([]domain.Tag, len(rows))
	for i, r := range rows {
		tags[i] = r.toDomain()
	}
	return tags
}

// difference returns the members of want missing from got, in want order.
func difference(want, got []string) []string {
	var out []string
	for _, s := range want {
		if !slices.Contains(got, s) {
			out = append(out, s)
		}
	}
	return out
}

func mapError(err error, slug string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("tag %s: %w", slug, domain.ErrTagNotFound)
	}
	return postgres.MapEntityError(err, "tag", slug)
}
