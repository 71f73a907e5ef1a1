// Package question implements the Question repository using PostgreSQL.
// Answers live in their own table and repository; this package never reads
// or writes them.
package question

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pawerflow/question-service/internal/adapter/postgres"
	"github.com/pawerflow/question-service/internal/domain"
)

var columns = []string{
	"id", "title", "content", "asker_id", "asker_display_name",
	"created_at", "updated_at", "view_count", "tag_slugs",
	"has_accepted_answer", "votes", "version",
}

type row struct {
	ID                uuid.UUID  `db:"id"`
	Title             string     `db:"title"`
	Content           string     `db:"content"`
	AskerID           string     `db:"asker_id"`
	AskerDisplayName  string     `db:"asker_display_name"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at"`
	ViewCount         int        `db:"view_count"`
	TagSlugs          []string   `db:"tag_slugs"`
	HasAcceptedAnswer bool       `db:"has_accepted_answer"`
	Votes             int        `db:"votes"`
	Version           int        `db:"version"`
}

func (r row) toDomain() *domain.Question {
	return &domain.Question{
		ID:                r.ID,
		Title:             r.Title,
		Content:           r.Content,
		AskerID:           r.AskerID,
		AskerDisplayName:  r.AskerDisplayName,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		ViewCount:         r.ViewCount,
		TagSlugs:          r.TagSlugs,
		HasAcceptedAnswer: r.HasAcceptedAnswer,
		Votes:             r.Votes,
		Version:           r.Version,
	}
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a question without its answers.
// Returns domain.ErrQuestionNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return r.get(ctx, id, "")
}

// GetForShare returns a question and holds a shared lock on its row until
// the surrounding transaction ends. Writers that lock the row with
// GetForUpdate wait for the reader, and the reader waits for them, so reads
// of the question's answers in the same transaction are consistent with it.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if !postgres.InTx(ctx) {
		return nil, errors.New("question: GetForShare called outside a transaction")
	}
	return r.get(ctx, id, "FOR SHARE")
}

// GetForUpdate returns a question and locks its row until the surrounding
// transaction ends. It must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	if !postgres.InTx(ctx) {
		return nil, errors.New("question: GetForUpdate called outside a transaction")
	}
	return r.get(ctx, id, "FOR UPDATE")
}

// get reads one question. lock is an optional row locking clause.
func (r *Repo) get(ctx context.Context, id uuid.UUID, lock string) (*domain.Question, error) {
	b := postgres.Builder().
		Select(columns...).
		From("questions").
		Where(sq.Eq{"id": id})
	if lock != "" {
		b = b.Suffix(lock)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get question query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, mapError(err, id)
	}

	return res.toDomain(), nil
}

// List returns questions newest first, optionally filtered by tag slug.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	b := applyFilter(postgres.Builder().Select(columns...).From("questions"), filter).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list questions query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list questions: %w", err))
	}

	out := make([]*domain.Question, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Count returns the number of questions matching filter, ignoring paging.
func (r *Repo) Count(ctx context.Context, filter domain.QuestionFilter) (int, error) {
	query, args, err := applyFilter(postgres.Builder().Select("count(*)").From("questions"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count questions query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(fmt.Errorf("count questions: %w", err))
	}
	return n, nil
}

func applyFilter(b sq.SelectBuilder, filter domain.QuestionFilter) sq.SelectBuilder {
	if filter.TagSlug != nil {
		b = b.Where(sq.Expr("? = ANY(tag_slugs)", *filter.TagSlug))
	}
	return b
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new question row.
func (r *Repo) Create(ctx context.Context, q *domain.Question) error {
	query, args, err := postgres.Builder().
		Insert("questions").
		Columns(columns...).
		Values(
			q.ID, q.Title, q.Content, q.AskerID, q.AskerDisplayName,
			q.CreatedAt, q.UpdatedAt, q.ViewCount, q.TagSlugs,
			q.HasAcceptedAnswer, q.Votes, q.Version,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert question query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, q.ID)
	}
	return nil
}

// Update writes the editable fields of q if its stored version still equals
// q.Version, then bumps the version. Returns domain.ErrConflict when another
// writer got there first. View and vote counters are never written here.
func (r *Repo) Update(ctx context.Context, q *domain.Question) error {
	query, args, err := postgres.Builder().
		Update("questions").
		Set("title", q.Title).
		Set("content", q.Content).
		Set("tag_slugs", q.TagSlugs).
		Set("updated_at", q.UpdatedAt).
		Set("has_accepted_answer", q.HasAcceptedAnswer).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": q.ID, "version": q.Version}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update question query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, q.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s version %d: %w", q.ID, q.Version, domain.ErrConflict)
	}

	q.Version++
	return nil
}

// Delete removes the question row. Answers must be deleted first by the caller;
// the foreign key cascade only backs that up.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("questions").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete question query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrQuestionNotFound)
	}
	return nil
}

// IncrementViews adds one view atomically and returns the new count.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	return r.addToCounter(ctx, id, "view_count", 1)
}

// AddVotes adds delta to the vote total atomically and returns the new total.
func (r *Repo) AddVotes(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return r.addToCounter(ctx, id, "votes", delta)
}

func (r *Repo) addToCounter(ctx context.Context, id uuid.UUID, column string, delta int) (int, error) {
	query, args, err := postgres.Builder().
		Update("questions").
		Set(column, sq.Expr(column+" + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + column).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s update query: %w", column, err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, mapError(err, id)
	}
	return total, nil
}

func mapError(err error, id uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("question %s: %w", id, domain.ErrQuestionNotFound)
	}
	return postgres.MapEntityError(err, "question", id)
}
