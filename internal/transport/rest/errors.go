package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pawerflow/question-service/internal/domain"
)

// statusClientClosedRequest is logged when the caller went away mid-request.
const statusClientClosedRequest = 499

// retryAfterSeconds is advertised on 503 responses.
const retryAfterSeconds = 5

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps a service error onto an HTTP status. Unexpected
// errors are logged and hidden behind a generic 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve  *domain.ValidationError
		ute *domain.UnknownTagError
	)

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: ve.Errors})
	case errors.As(err, &ute):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "unknown tag",
			Fields: []domain.FieldError{{Field: "tags", Message: ute.Error()}},
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "question not found")
	case errors.Is(err, domain.ErrAnswerNotFound):
		writeError(w, http.StatusNotFound, "answer not found")
	case errors.Is(err, domain.ErrTagNotFound):
		writeError(w, http.StatusNotFound, "tag not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent modification, retry the request")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrStorageUnavailable), errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeError(w, http.StatusServiceUnavailable, "service temporarily unavailable")
	case errors.Is(err, context.Canceled):
		w.WriteHeader(statusClientClosedRequest)
	default:
		log.ErrorContext(r.Context(), "unexpected error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
