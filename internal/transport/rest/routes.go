package rest

import "net/http"

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health    *HealthHandler
	Tags      *TagHandler
	Questions *QuestionHandler
}

// Register mounts all routes on mux. Authentication is not enforced here:
// operations that need a caller reject anonymous requests themselves.
func (h Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/v1/tags", h.Tags.List)
	mux.HandleFunc("GET /api/v1/tags/{slug}", h.Tags.Get)

	mux.HandleFunc("GET /api/v1/questions", h.Questions.List)
	mux.HandleFunc("POST /api/v1/questions", h.Questions.Create)
	mux.HandleFunc("GET /api/v1/questions/{id}", h.Questions.Get)
	mux.HandleFunc("PUT /api/v1/questions/{id}", h.Questions.Update)
	mux.HandleFunc("DELETE /api/v1/questions/{id}", h.Questions.Delete)
	mux.HandleFunc("POST /api/v1/questions/{id}/votes", h.Questions.VoteQuestion)
	mux.HandleFunc("POST /api/v1/questions/{id}/accept", h.Questions.Accept)

	mux.HandleFunc("POST /api/v1/questions/{id}/answers", h.Questions.AddAnswer)
	mux.HandleFunc("PUT /api/v1/questions/{id}/answers/{answerId}", h.Questions.EditAnswer)
	mux.HandleFunc("DELETE /api/v1/questions/{id}/answers/{answerId}", h.Questions.DeleteAnswer)
	mux.HandleFunc("POST /api/v1/questions/{id}/answers/{answerId}/votes", h.Questions.VoteAnswer)
}
