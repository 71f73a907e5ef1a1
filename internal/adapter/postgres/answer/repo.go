// Package answer implements the Answer repository using PostgreSQL.
// Answers are read in insertion order (the identity column seq), which is
// the default display order.
package answer

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
	"id", "question_id", "content", "responder_id", "responder_display_name",
	"created_at", "updated_at", "votes", "is_accepted",
}

type row struct {
	ID                   uuid.UUID  `db:"id"`
	QuestionID           uuid.UUID  `db:"question_id"`
	Content              string     `db:"content"`
	ResponderID          string     `db:"responder_id"`
	ResponderDisplayName string     `db:"responder_display_name"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            *time.Time `db:"updated_at"`
	Votes                int        `db:"votes"`
	IsAccepted           bool       `db:"is_accepted"`
}

func (r row) toDomain() domain.Answer {
	return domain.Answer{
		ID:                   r.ID,
		QuestionID:           r.QuestionID,
		Content:              r.Content,
		ResponderID:          r.ResponderID,
		ResponderDisplayName: r.ResponderDisplayName,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
		Votes:                r.Votes,
		IsAccepted:           r.IsAccepted,
	}
}

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one answer. Returns domain.ErrAnswerNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("answers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get answer query: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, query, args...); err != nil {
		return nil, mapError(err, id)
	}

	a := res.toDomain()
	return &a, nil
}

// ListByQuestionID returns the answers of one question in insertion order.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	return r.list(ctx, sq.Eq{"question_id": questionID})
}

// ListByQuestionIDs returns the answers of several questions (batch for
// DataLoader), grouped by question and in insertion order within each group.
func (r *Repo) ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error) {
	if len(questionIDs) == 0 {
		return []domain.Answer{}, nil
	}
	return r.list(ctx, sq.Expr("question_id = ANY(?)", questionIDs))
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Answer, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("answers").
		Where(where).
		OrderBy("question_id", "seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list answers query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(fmt.Errorf("list answers: %w", err))
	}

	out := make([]domain.Answer, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new answer row.
func (r *Repo) Create(ctx context.Context, a *domain.Answer) error {
	query, args, err := postgres.Builder().
		Insert("answers").
		Columns(columns...).
		Values(
			a.ID, a.QuestionID, a.Content, a.ResponderID, a.ResponderDisplayName,
			a.CreatedAt, a.UpdatedAt, a.Votes, a.IsAccepted,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert answer query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return mapError(err, a.ID)
	}
	return nil
}

// UpdateContent writes the content and update timestamp of an answer.
func (r *Repo) UpdateContent(ctx context.Context, a *domain.Answer) error {
	query, args, err := postgres.Builder().
		Update("answers").
		Set("content", a.Content).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID, "question_id": a.QuestionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update answer query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, a.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", a.ID, domain.ErrAnswerNotFound)
	}
	return nil
}

// SetAccepted makes answerID the only accepted answer of questionID, or
// clears acceptance when answerID is nil. The flag is cleared before it is
// set so the partial unique index never sees two accepted rows.
func (r *Repo) SetAccepted(ctx context.Context, questionID uuid.UUID, answerID *uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	clearSQL, clearArgs, err := postgres.Builder().
		Update("answers").
		Set("is_accepted", false).
		Where(sq.Eq{"question_id": questionID, "is_accepted": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear accepted query: %w", err)
	}
	if _, err := q.Exec(ctx, clearSQL, clearArgs...); err != nil {
		return postgres.MapError(fmt.Errorf("clear accepted answer: %w", err))
	}

	if answerID == nil {
		return nil
	}

	setSQL, setArgs, err := postgres.Builder().
		Update("answers").
		Set("is_accepted", true).
		Where(sq.Eq{"id": *answerID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set accepted query: %w", err)
	}
	tag, err := q.Exec(ctx, setSQL, setArgs...)
	if err != nil {
		return mapError(err, *answerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", *answerID, domain.ErrAnswerNotFound)
	}
	return nil
}

// Delete removes one answer of a question.
func (r *Repo) Delete(ctx context.Context, questionID, answerID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("answers").
		Where(sq.Eq{"id": answerID, "question_id": questionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete answer query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, answerID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("answer %s: %w", answerID, domain.ErrAnswerNotFound)
	}
	return nil
}

// DeleteByQuestionID removes every answer of a question and returns how many
// were deleted.
func (r *Repo) DeleteByQuestionID(ctx context.Context, questionID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Delete("answers").
		Where(sq.Eq{"question_id": questionID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete answers query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(fmt.Errorf("delete answers of question %s: %w", questionID, err))
	}
	return int(tag.RowsAffected()), nil
}

// AddVotes adds delta to the answer's vote total atomically and returns the
// new total.
func (r *Repo) AddVotes(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	query, args, err := postgres.Builder().
		Update("answers").
		Set("votes", sq.Expr("votes + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING votes").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build answer votes query: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, mapError(err, id)
	}
	return total, nil
}

func mapError(err error, id uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("answer %s: %w", id, domain.ErrAnswerNotFound)
	}
	return postgres.MapEntityError(err, "answer", id)
}
