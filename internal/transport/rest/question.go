package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
	"github.com/pawerflow/question-service/internal/service/question"
	"github.com/pawerflow/question-service/internal/transport/dataloader"
)

// questionService defines the interface needed by QuestionHandler.
type questionService interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	RecordView(ctx context.Context, id uuid.UUID) (int, error)
	ListQuestions(ctx context.Context, input question.ListQuestionsInput) (*domain.QuestionPage, error)
	EditQuestion(ctx context.Context, input question.EditQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
	AddAnswer(ctx context.Context, input question.AddAnswerInput) (*domain.Answer, error)
	EditAnswer(ctx context.Context, input question.EditAnswerInput) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, questionID, answerID uuid.UUID) error
	AcceptAnswer(ctx context.Context, input question.AcceptAnswerInput) (*domain.Question, error)
	Vote(ctx context.Context, input question.VoteInput) (int, error)
}

// QuestionHandler serves question and answer REST endpoints. Responses
// resolve tag names through the per-request loaders.
type QuestionHandler struct {
	svc questionService
	log *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, log: logger.With("handler", "question")}
}

// List handles GET /api/v1/questions?tag=&limit=&offset=.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListQuery(r)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	page, err := h.svc.ListQuestions(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	loaders := dataloader.FromContext(r.Context())

	// Queue every load before waiting so each loader issues one batch.
	type pending struct {
		tags    func() ([]domain.Tag, []error)
		answers func() ([]domain.Answer, error)
	}
	queued := make([]pending, len(page.Questions))
	for i, q := range page.Questions {
		queued[i] = pending{
			tags:    loaders.TagsBySlug.LoadMany(r.Context(), q.TagSlugs),
			answers: loaders.AnswersByQuestionID.Load(r.Context(), q.ID),
		}
	}

	resp := questionPageResponse{
		Questions: make([]questionResponse, len(page.Questions)),
		Total:     page.Total,
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	for i, q := range page.Questions {
		tags, err := firstError[domain.Tag](queued[i].tags())
		if err != nil {
			writeDomainError(w, r, h.log, fmt.Errorf("load tags: %w", err))
			return
		}
		answers, err := queued[i].answers()
		if err != nil {
			writeDomainError(w, r, h.log, fmt.Errorf("load answers: %w", err))
			return
		}
		resp.Questions[i] = toQuestionResponse(q, tags, answers, false)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/questions/{id}. Every successful read counts as
// one view.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if _, err := h.svc.RecordView(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.writeQuestion(w, r, http.StatusOK, q)
}

// Create handles POST /api/v1/questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), question.CreateQuestionInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/questions/"+q.ID.String())
	h.writeQuestion(w, r, http.StatusCreated, q)
}

// Update handles PUT /api/v1/questions/{id}.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req editQuestionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	q, err := h.svc.EditQuestion(r.Context(), question.EditQuestionInput{
		QuestionID: id,
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.writeQuestion(w, r, http.StatusOK, q)
}

// Delete handles DELETE /api/v1/questions/{id}.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Accept handles POST /api/v1/questions/{id}/accept. A null answerId clears
// the accepted answer.
func (h *QuestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req acceptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := question.AcceptAnswerInput{QuestionID: id}
	if req.AnswerID != nil {
		answerID := uuid.MustParse(*req.AnswerID) // validated by decodeJSON
		input.AnswerID = &answerID
	}

	q, err := h.svc.AcceptAnswer(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	h.writeQuestion(w, r, http.StatusOK, q)
}

// VoteQuestion handles POST /api/v1/questions/{id}/votes.
func (h *QuestionHandler) VoteQuestion(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, domain.VoteTargetQuestion)
}

// VoteAnswer handles POST /api/v1/questions/{id}/answers/{answerId}/votes.
func (h *QuestionHandler) VoteAnswer(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, domain.VoteTargetAnswer)
}

func (h *QuestionHandler) vote(w http.ResponseWriter, r *http.Request, target domain.VoteTarget) {
	input := question.VoteInput{Target: target}

	var err error
	if input.QuestionID, err = pathUUID(r, "id"); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if target == domain.VoteTargetAnswer {
		if input.AnswerID, err = pathUUID(r, "answerId"); err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
	}

	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	input.Direction = domain.VoteDirection(req.Direction)

	votes, err := h.svc.Vote(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{Votes: votes})
}

// AddAnswer handles POST /api/v1/questions/{id}/answers.
func (h *QuestionHandler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	a, err := h.svc.AddAnswer(r.Context(), question.AddAnswerInput{QuestionID: id, Content: req.Content})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnswerResponse(*a))
}

// EditAnswer handles PUT /api/v1/questions/{id}/answers/{answerId}.
func (h *QuestionHandler) EditAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	answerID, err := pathUUID(r, "answerId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	a, err := h.svc.EditAnswer(r.Context(), question.EditAnswerInput{
		QuestionID: id,
		AnswerID:   answerID,
		Content:    req.Content,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnswerResponse(*a))
}

// DeleteAnswer handles DELETE /api/v1/questions/{id}/answers/{answerId}.
func (h *QuestionHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	answerID, err := pathUUID(r, "answerId")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteAnswer(r.Context(), id, answerID); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeQuestion renders a single question with its answers.
func (h *QuestionHandler) writeQuestion(w http.ResponseWriter, r *http.Request, status int, q *domain.Question) {
	tags, err := firstError[domain.Tag](dataloader.FromContext(r.Context()).TagsBySlug.LoadMany(r.Context(), q.TagSlugs)())
	if err != nil {
		writeDomainError(w, r, h.log, fmt.Errorf("load tags: %w", err))
		return
	}

	answers := q.Answers
	if answers == nil {
		answers = []domain.Answer{}
	}
	writeJSON(w, status, toQuestionResponse(q, tags, answers, true))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func parseListQuery(r *http.Request) (question.ListQuestionsInput, error) {
	q := r.URL.Query()
	var (
		input question.ListQuestionsInput
		errs  []domain.FieldError
	)

	if q.Has("tag") {
		tag := q.Get("tag")
		input.Tag = &tag
	}
	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &input.Limit}, {"offset", &input.Offset}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: p.name, Message: "must be an integer"})
			continue
		}
		*p.dst = n
	}

	if len(errs) > 0 {
		return input, domain.NewValidationErrors(errs)
	}
	return input, nil
}

// firstError collapses the per-key errors of a LoadMany call.
func firstError[V any](vals []V, errs []error) ([]V, error) {
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return vals, nil
}
