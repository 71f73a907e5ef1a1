// Package vote keeps the running vote totals of questions and answers.
//
// The ledger is a pure counter: up adds one, down subtracts one, there is no
// floor or ceiling, and repeated votes by the same voter are not deduplicated.
package vote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// voteCounter applies a delta atomically and returns the new total.
type voteCounter interface {
	AddVotes(ctx context.Context, id uuid.UUID, delta int) (int, error)
}

// Ledger applies votes to questions and answers.
type Ledger struct {
	questions voteCounter
	answers   voteCounter
	log       *slog.Logger
}

// NewLedger creates a new vote Ledger.
func NewLedger(log *slog.Logger, questions, answers voteCounter) *Ledger {
	return &Ledger{
		questions: questions,
		answers:   answers,
		log:       log.With("service", "vote"),
	}
}

// ApplyVote adds direction's delta to the target's total and returns the new
// total. The update is a single atomic increment, so concurrent votes on the
// same target are never lost. A missing target fails with
// domain.ErrQuestionNotFound or domain.ErrAnswerNotFound.
func (l *Ledger) ApplyVote(
	ctx context.Context,
	target domain.VoteTarget,
	targetID uuid.UUID,
	direction domain.VoteDirection,
	voterID string,
) (int, error) {
	var errs []domain.FieldError
	if !target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "must be question or answer"})
	}
	if targetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "target_id", Message: "required"})
	}
	if !direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be up or down"})
	}
	if voterID == "" {
		errs = append(errs, domain.FieldError{Field: "voter_id", Message: "required"})
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	counter := l.questions
	if target == domain.VoteTargetAnswer {
		counter = l.answers
	}

	total, err := counter.AddVotes(ctx, targetID, direction.Delta())
	if err != nil {
		return 0, fmt.Errorf("apply %s vote: %w", target, err)
	}

	l.log.InfoContext(ctx, "vote applied",
		slog.String("target", target.String()),
		slog.String("target_id", targetID.String()),
		slog.String("direction", direction.String()),
		slog.String("voter_id", voterID),
		slog.Int("total", total),
	)
	return total, nil
}
