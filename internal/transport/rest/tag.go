package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pawerflow/question-service/internal/domain"
)

type tagService interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
}

// TagHandler serves the read-only tag registry.
type TagHandler struct {
	svc tagService
	log *slog.Logger
}

// NewTagHandler creates a TagHandler.
func NewTagHandler(svc tagService, logger *slog.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: logger.With("handler", "tag")}
}

type tagListResponse struct {
	Tags []tagResponse `json:"tags"`
}

// List handles GET /api/v1/tags.
func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := tagListResponse{Tags: make([]tagResponse, len(tags))}
	for i, t := range tags {
		resp.Tags[i] = toTagResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/v1/tags/{slug}.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetBySlug(r.Context(), domain.NormalizeSlug(r.PathValue("slug")))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTagResponse(*t))
}
