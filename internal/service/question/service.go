package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/config"
	"github.com/pawerflow/question-service/internal/domain"
	"github.com/pawerflow/question-service/pkg/ctxutil"
)

type questionRepo interface {
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error)
	Count(ctx context.Context, filter domain.QuestionFilter) (int, error)
	Create(ctx context.Context, q *domain.Question) error
	Update(ctx context.Context, q *domain.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type answerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error)
	ListByQuestionID(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error)
	Create(ctx context.Context, a *domain.Answer) error
	UpdateContent(ctx context.Context, a *domain.Answer) error
	SetAccepted(ctx context.Context, questionID uuid.UUID, answerID *uuid.UUID) error
	Delete(ctx context.Context, questionID, answerID uuid.UUID) error
	DeleteByQuestionID(ctx context.Context, questionID uuid.UUID) (int, error)
}

type tagRegistry interface {
	Resolve(ctx context.Context, slugs []string) ([]domain.Tag, error)
	IncrementUsage(ctx context.Context, slugs []string) error
	DecrementUsage(ctx context.Context, slugs []string) error
}

type voteLedger interface {
	ApplyVote(ctx context.Context, target domain.VoteTarget, targetID uuid.UUID, direction domain.VoteDirection, voterID string) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates questions, answers, tag counters and votes so that
// cross-entity invariants hold after every successful call.
//
// Every mutation of a question runs in one transaction that first locks the
// question with GetForUpdate; that lock is the per-question mutual exclusion
// scope.
type Service struct {
	questions questionRepo
	answers   answerRepo
	tags      tagRegistry
	votes     voteLedger
	tx        txManager
	cfg       config.QuestionsConfig
	log       *slog.Logger
}

// NewService creates a new question Service.
func NewService(
	log *slog.Logger,
	questions questionRepo,
	answers answerRepo,
	tags tagRegistry,
	votes voteLedger,
	tx txManager,
	cfg config.QuestionsConfig,
) *Service {
	return &Service{
		questions: questions,
		answers:   answers,
		tags:      tags,
		votes:     votes,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "question"),
	}
}

// caller returns the authenticated identity or domain.ErrUnauthorized.
func caller(ctx context.Context) (ctxutil.Identity, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ctxutil.Identity{}, domain.ErrUnauthorized
	}
	return id, nil
}

// lockAggregate locks the question and loads its answers. Must run inside
// a transaction.
func (s *Service) lockAggregate(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	q, err := s.questions.GetForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lock question: %w", err)
	}
	answers, err := s.answers.ListByQuestionID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	q.Answers = answers
	return q, nil
}
